// Package diagnostics fabricates the per-tree diagnostic samples shown
// on the dashboard. The records are display-only: regenerated on every
// request and never persisted.
package diagnostics

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/models"
)

// SampleCount is how many diagnostic records each request receives.
const SampleCount = 100

var (
	leafConditions = []string{"Healthy", "Yellowing", "Spots", "Wilting"}

	// Weighted choices: repeats skew the draw, pests are mostly absent
	// and risk is mostly low.
	pestChoices   = []bool{true, false, false, false}
	riskChoices   = []string{"Low", "Medium", "High", "Low", "Low"}
	actionChoices = []string{"None", "Fertilize", "Treat for Pests", "Pruning", "Water", "None"}
)

// Generator produces diagnostic samples from an injectable random
// source, so tests can fix the seed.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a Generator with the given random source. Pass
// rand.New(rand.NewSource(time.Now().UnixNano())) for serving.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, now: time.Now}
}

// Generate returns SampleCount fresh diagnostic records.
func (g *Generator) Generate() []models.Diagnostic {
	samples := make([]models.Diagnostic, 0, SampleCount)
	for i := 0; i < SampleCount; i++ {
		date := g.now().AddDate(0, 0, -(g.rng.Intn(180) + 1))
		samples = append(samples, models.Diagnostic{
			ProducerID:        g.rng.Intn(5) + 1,
			Date:              date.Format("2006-01-02"),
			TreeID:            fmt.Sprintf("TR-%d", g.rng.Intn(900)+100),
			HealthScore:       g.rng.Intn(41) + 60,
			LeafCondition:     leafConditions[g.rng.Intn(len(leafConditions))],
			PestDetected:      pestChoices[g.rng.Intn(len(pestChoices))],
			DiseaseRisk:       riskChoices[g.rng.Intn(len(riskChoices))],
			RecommendedAction: actionChoices[g.rng.Intn(len(actionChoices))],
		})
	}
	return samples
}

// ForProducer filters samples down to one producer's records.
func ForProducer(samples []models.Diagnostic, producerID int) []models.Diagnostic {
	var matched []models.Diagnostic
	for _, d := range samples {
		if d.ProducerID == producerID {
			matched = append(matched, d)
		}
	}
	return matched
}
