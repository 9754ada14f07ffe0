package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/config"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/seed"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/tabular"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the fixed sample dataset to the tabular store",
	Long: "Writes a fixed sample cooperative (five producers, aggregate rollups,\n" +
		"chat history) to the output directory so the dashboard can be served\n" +
		"without object-store or enrichment access.",
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	store := seed.Store()
	if err := tabular.Save(cfg.OutputDir, store); err != nil {
		return fmt.Errorf("writing tabular store: %w", err)
	}

	logger.Info("sample data written",
		zap.Int("producers", len(store.Producers)),
		zap.String("output", cfg.OutputDir))
	return nil
}
