// Package config loads environment configuration for the extraction,
// assembly, and serving phases. All values come from the environment
// (a .env file, when present, is loaded by the CLI before this runs).
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/apperrors"
)

// Config holds all configuration for dashboard-suppliers. Secrets come
// only from environment variables.
type Config struct {
	// Server configuration
	Port string `env:"PORT" env-default:"5011"`

	// DataDir is where the serving phase reads the tabular store from.
	// Defaults to OutputDir when empty.
	DataDir string `env:"DATA_DIR" env-default:""`

	// OutputDir is where extraction and assembly write their results.
	OutputDir string `env:"OUTPUT_DIR" env-default:"processed_data"`

	// Object store configuration (extraction phase)
	S3Bucket string `env:"S3_BUCKET_NAME" env-default:""`
	Region   string `env:"AWS_REGION" env-default:"us-east-1"`

	// Enrichment service configuration (assembly phase)
	OpenAIKey     string `env:"OPENAI_API_KEY" env-default:""`
	OpenAIModel   string `env:"OPENAI_MODEL" env-default:"gpt-4"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" env-default:""`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = cfg.OutputDir
	}
	return cfg, nil
}

// ValidateAssembly checks the requirements specific to the assembly
// phase. The serving phase can run without any of these.
func (c *Config) ValidateAssembly() error {
	if c.OpenAIKey == "" {
		return apperrors.ErrMissingAPIKey
	}
	return nil
}

// ValidateExtraction checks the requirements specific to the
// extraction phase.
func (c *Config) ValidateExtraction() error {
	if c.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET_NAME is required for extraction")
	}
	return nil
}
