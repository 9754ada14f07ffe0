package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/models"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/tabular"
)

func TestStoreContents(t *testing.T) {
	store := Store()

	assert.Equal(t, "Coopérative Agricole de Côte d'Ivoire", store.Cooperative.Name)
	assert.Equal(t, 150, store.Cooperative.TotalMembers)
	require.Len(t, store.Producers, 5)
	require.Len(t, store.ChatThreads, 3)
	assert.Equal(t, 32, store.Aggregate.DiseaseReports["black_pod"])

	for i, p := range store.Producers {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, []string{}, p.FarmImages)
		assert.NotEmpty(t, p.RecentActivities)
	}
}

func TestStorePersistsAndReloads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, tabular.Save(dir, Store()))

	loaded, err := tabular.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Aboisso, Ivory Coast", loaded.Cooperative.Location)
	assert.Equal(t, []string{"Rainforest Alliance", "UTZ", "Fairtrade"}, loaded.Cooperative.Certification)
	require.Len(t, loaded.Producers, 5)
	assert.Equal(t, "Kouadio Konan", loaded.Producers[0].Name)
	assert.Equal(t, float64(80), loaded.Producers[0].TreeHealth["healthy"])
	assert.InDelta(t, 5300, loaded.Producers[0].YieldHistory["2022"], 0.001)

	require.Len(t, loaded.ChatThreads, 3)
	first := loaded.ChatThreads[0]
	assert.Equal(t, 1, first.ProducerID)
	require.Len(t, first.Messages, 4)
	assert.Equal(t, models.MessageFromFarmer, first.Messages[0].From)
	assert.Equal(t, "2023-06-29", first.Messages[3].Date)

	assert.Equal(t, 11, loaded.Aggregate.DiseaseReports["other"])
	assert.InDelta(t, 93, loaded.Aggregate.TrainingAttendance["sustainable_practices"], 0.001)
}
