package models

// Aggregate is the single cooperative-wide rollup record. The three map
// fields are persisted as JSON-encoded strings in single tabular cells;
// AIInsights is plain text.
//
// MonthlyYields mixes a "months" entry (twelve short month names) with
// one entry per year mapping to a twelve-length numeric sequence, so it
// stays loosely typed.
type Aggregate struct {
	MonthlyYields      map[string]any     `json:"monthly_yields"`
	DiseaseReports     map[string]int     `json:"disease_reports"`
	TrainingAttendance map[string]float64 `json:"training_attendance"`
	AIInsights         string             `json:"ai_insights"`
}
