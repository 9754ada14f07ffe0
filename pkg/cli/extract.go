package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/config"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/extract"
)

// RawDataFile is the filename the extraction phase writes and the
// assembly phase reads.
const RawDataFile = "producer_data.json"

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract raw producer data from the S3 bucket",
	RunE:  runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateExtraction(); err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	ctx := cmd.Context()
	store, err := extract.NewS3Store(ctx, cfg.S3Bucket, cfg.Region)
	if err != nil {
		return fmt.Errorf("connecting to object store: %w", err)
	}

	data, err := extract.New(store, logger).ExtractAll(ctx)
	if err != nil {
		return fmt.Errorf("extracting producer data: %w", err)
	}

	outputPath := filepath.Join(cfg.OutputDir, RawDataFile)
	if err := extract.SaveJSON(data, outputPath); err != nil {
		return fmt.Errorf("saving extracted data: %w", err)
	}

	logger.Info("extraction complete",
		zap.Int("producers", len(data)),
		zap.String("output", outputPath))
	return nil
}
