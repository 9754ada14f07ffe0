package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/tabular"
)

func TestRootRegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"version", "serve", "extract", "assemble", "download-images", "seed"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestSeedWritesSampleStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OUTPUT_DIR", dir)

	require.NoError(t, runSeed(seedCmd, nil))

	store, err := tabular.Load(dir)
	require.NoError(t, err)
	assert.Len(t, store.Producers, 5)
	assert.Equal(t, 150, store.Cooperative.TotalMembers)
	assert.Len(t, store.ChatThreads, 3)
}

func TestExtractRequiresBucket(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "")

	err := runExtract(extractCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET_NAME")
}

func TestAssembleRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	err := runAssemble(assembleCmd, nil)
	require.Error(t, err)
}
