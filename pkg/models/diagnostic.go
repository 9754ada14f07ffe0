package models

// Diagnostic is an ephemeral per-tree diagnostic record generated fresh
// for every request. Never persisted.
type Diagnostic struct {
	ProducerID        int    `json:"producer_id"`
	Date              string `json:"date"`
	TreeID            string `json:"tree_id"`
	HealthScore       int    `json:"health_score"`
	LeafCondition     string `json:"leaf_condition"`
	PestDetected      bool   `json:"pest_detected"`
	DiseaseRisk       string `json:"disease_risk"`
	RecommendedAction string `json:"recommended_action"`
}
