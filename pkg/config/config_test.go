package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/apperrors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5011", cfg.Port)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "processed_data", cfg.OutputDir)
	assert.Equal(t, "processed_data", cfg.DataDir)
	assert.Equal(t, "gpt-4", cfg.OpenAIModel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestValidateAssemblyRequiresKey(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.ValidateAssembly(), apperrors.ErrMissingAPIKey)

	cfg.OpenAIKey = "sk-test"
	assert.NoError(t, cfg.ValidateAssembly())
}

func TestValidateExtractionRequiresBucket(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.ValidateExtraction())

	cfg.S3Bucket = "producer-data"
	assert.NoError(t, cfg.ValidateExtraction())
}
