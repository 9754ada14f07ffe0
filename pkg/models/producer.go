// Package models contains the nested record model served by the
// dashboard. These types are reconstructed from the tabular store on
// every request; the store remains the source of truth.
package models

// Activity is a dated entry in a producer's recent activity log.
type Activity struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
}

// Producer is one farm operator. ID is the internal sequential key
// assigned at assembly time; ExternalID is the opaque identifier the
// upstream extraction uses.
//
// TreeHealth and SoilQuality keep their decoded JSON values unchanged:
// stores in the wild hold tree health percentages both as integers (80)
// and as strings ("75%"), and summary statistics must accept either.
type Producer struct {
	ID               int                `json:"id"`
	ExternalID       string             `json:"producer_id"`
	Name             string             `json:"name"`
	Village          string             `json:"village"`
	Age              int                `json:"age"`
	JoinDate         string             `json:"join_date"`
	FarmSizeHectares float64            `json:"farm_size_hectares"`
	NumTrees         int                `json:"num_trees"`
	Phone            string             `json:"phone"`
	FarmImages       []string           `json:"farm_images"`
	YieldHistory     map[string]float64 `json:"yield_history"`
	EstimatedYield   float64            `json:"estimated_yield"`
	RecentActivities []Activity         `json:"recent_activities"`
	TreeHealth       map[string]any     `json:"tree_health"`
	SoilQuality      map[string]any     `json:"soil_quality"`
	LastActive       string             `json:"last_active"`
}

// Tree health map keys.
const (
	TreeHealthHealthy        = "healthy"
	TreeHealthMinorIssues    = "minor_issues"
	TreeHealthNeedsAttention = "needs_attention"
)
