// Package dashboard answers the read patterns behind the web views.
// The service is stateless: every call reloads the tabular store from
// disk, so each request sees whatever the last assembly run wrote.
package dashboard

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/apperrors"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/diagnostics"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/jsonutil"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/models"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/tabular"
)

// SummaryStats are the rollup figures shown at the top of the main
// view.
type SummaryStats struct {
	TotalTrees          int     `json:"total_trees"`
	AvgHealth           float64 `json:"avg_health"`
	EstimatedYieldTotal float64 `json:"estimated_yield_total"`
}

// FullView is everything the top-level dashboard renders.
type FullView struct {
	Cooperative models.Cooperative  `json:"cooperative"`
	Producers   []models.Producer   `json:"producers"`
	Aggregate   models.Aggregate    `json:"aggregate"`
	ChatThreads []models.ChatThread `json:"chat_threads"`
	Diagnostics []models.Diagnostic `json:"diagnostics"`
	Stats       SummaryStats        `json:"stats"`
}

// ProducerView is the single-producer detail page payload.
type ProducerView struct {
	Producer    models.Producer     `json:"producer"`
	ChatThread  models.ChatThread   `json:"chat_thread"`
	Diagnostics []models.Diagnostic `json:"diagnostics"`
}

// ActivityView pairs a producer with one of its recent activities.
type ActivityView struct {
	Producer models.Producer `json:"producer"`
	Activity models.Activity `json:"activity"`
}

// Service serves read-only views over the tabular store.
type Service struct {
	dataDir string
	gen     *diagnostics.Generator
	logger  *zap.Logger
}

// NewService creates a dashboard service reading from dataDir.
func NewService(dataDir string, gen *diagnostics.Generator, logger *zap.Logger) *Service {
	return &Service{
		dataDir: dataDir,
		gen:     gen,
		logger:  logger.Named("dashboard"),
	}
}

// FullView loads the whole store and computes the summary statistics.
// A malformed store cell fails the entire call.
func (s *Service) FullView() (*FullView, error) {
	store, err := tabular.Load(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading dashboard data: %w", err)
	}

	return &FullView{
		Cooperative: store.Cooperative,
		Producers:   store.Producers,
		Aggregate:   store.Aggregate,
		ChatThreads: store.ChatThreads,
		Diagnostics: s.gen.Generate(),
		Stats:       computeStats(store.Producers),
	}, nil
}

// Producer returns the detail view for one internal producer id, or
// apperrors.ErrNotFound.
func (s *Service) Producer(id int) (*ProducerView, error) {
	store, err := tabular.Load(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading dashboard data: %w", err)
	}

	producer, ok := findProducer(store.Producers, id)
	if !ok {
		return nil, fmt.Errorf("producer %d: %w", id, apperrors.ErrNotFound)
	}

	thread := models.ChatThread{ProducerID: id}
	for _, t := range store.ChatThreads {
		if t.ProducerID == id {
			thread = t
			break
		}
	}

	return &ProducerView{
		Producer:    producer,
		ChatThread:  thread,
		Diagnostics: diagnostics.ForProducer(s.gen.Generate(), id),
	}, nil
}

// Activity returns one recent-activities entry matched by exact date
// string, or apperrors.ErrActivityNotFound.
func (s *Service) Activity(id int, date string) (*ActivityView, error) {
	store, err := tabular.Load(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading dashboard data: %w", err)
	}

	producer, ok := findProducer(store.Producers, id)
	if !ok {
		return nil, fmt.Errorf("producer %d: %w", id, apperrors.ErrNotFound)
	}

	for _, activity := range producer.RecentActivities {
		if activity.Date == date {
			return &ActivityView{Producer: producer, Activity: activity}, nil
		}
	}
	return nil, fmt.Errorf("producer %d activity on %s: %w", id, date, apperrors.ErrActivityNotFound)
}

func findProducer(producers []models.Producer, id int) (models.Producer, bool) {
	for _, p := range producers {
		if p.ID == id {
			return p, true
		}
	}
	return models.Producer{}, false
}

// computeStats sums trees and yields and averages the healthy share of
// tree_health. Healthy values arrive as numbers or percentage strings;
// producers whose value parses neither way are excluded from the
// average.
func computeStats(producers []models.Producer) SummaryStats {
	var stats SummaryStats
	var healthSum float64
	var healthCount int

	for _, p := range producers {
		stats.TotalTrees += p.NumTrees
		stats.EstimatedYieldTotal += p.EstimatedYield
		if healthy, ok := jsonutil.PercentValue(p.TreeHealth[models.TreeHealthHealthy]); ok {
			healthSum += healthy
			healthCount++
		}
	}
	if healthCount > 0 {
		stats.AvgHealth = healthSum / float64(healthCount)
	}
	return stats
}
