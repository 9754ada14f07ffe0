package models

// Cooperative is the single per-deployment cooperative record. Exactly
// one row exists in the cooperative_info table.
type Cooperative struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Established   int      `json:"established"`
	TotalMembers  int      `json:"total_members"`
	ActiveMembers int      `json:"active_members"`
	TotalHectares float64  `json:"total_hectares"`
	Certification []string `json:"certification"`
}
