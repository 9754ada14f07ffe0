package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/assembler"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/config"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/extract"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/llm"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/tabular"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble the tabular dashboard store from extracted data",
	RunE:  runAssemble,
}

func runAssemble(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateAssembly(); err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	inputPath := filepath.Join(cfg.OutputDir, RawDataFile)
	data, err := extract.LoadJSON(inputPath)
	if err != nil {
		return fmt.Errorf("loading extracted data from %s: %w", inputPath, err)
	}

	client, err := llm.NewOpenAIClient(&llm.Config{
		APIKey:  cfg.OpenAIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating enrichment client: %w", err)
	}

	store := assembler.New(client, logger).Assemble(cmd.Context(), data)
	if err := tabular.Save(cfg.OutputDir, store); err != nil {
		return fmt.Errorf("writing tabular store: %w", err)
	}
	if err := assembler.WriteReferenceTables(cfg.OutputDir, data, assembler.Summarize(data)); err != nil {
		return fmt.Errorf("writing reference tables: %w", err)
	}

	logger.Info("assembly complete",
		zap.Int("producers", len(store.Producers)),
		zap.Int("chat_threads", len(store.ChatThreads)),
		zap.String("output", cfg.OutputDir))
	return nil
}
