package cli

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/config"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/dashboard"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/diagnostics"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/handlers"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard views over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	gen := diagnostics.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	service := dashboard.NewService(cfg.DataDir, gen, logger)

	mux := http.NewServeMux()
	handlers.NewDashboardHandler(service, logger).RegisterRoutes(mux)
	handlers.NewHealthHandler(version, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	logger.Info("starting dashboard server",
		zap.String("port", cfg.Port),
		zap.String("data_dir", cfg.DataDir),
		zap.String("version", version))
	return http.ListenAndServe(":"+cfg.Port, handler)
}
