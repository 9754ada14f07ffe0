// Package tabular converts between the flat CSV persistence format and
// the nested record model. Rows are maps of column name to cell value;
// list- and map-valued fields travel as JSON-encoded strings inside
// single cells.
package tabular

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/models"
)

// Row is one flat record: column name to cell value.
type Row map[string]string

// Producer table columns, in persisted order.
var ProducerColumns = []string{
	"id", "producer_id", "name", "village", "age", "join_date",
	"farm_size_hectares", "num_trees", "phone", "farm_images",
	"yield_history", "estimated_yield", "recent_activities",
	"tree_health", "soil_quality", "last_active",
}

// Cooperative table columns, in persisted order.
var CooperativeColumns = []string{
	"name", "location", "established", "total_members",
	"active_members", "total_hectares", "certification",
}

// Aggregate table columns, in persisted order.
var AggregateColumns = []string{
	"monthly_yields", "disease_reports", "training_attendance", "ai_insights",
}

// Chat history table columns, in persisted order.
var ChatColumns = []string{"producer_id", "date", "from", "message"}

// DecodeProducerRow converts a flat producer row into the nested record.
// The profile_image column is dropped unconditionally and farm_images is
// forced to an empty slice regardless of the stored cell; images are
// stripped from the served model on purpose.
func DecodeProducerRow(row Row) (models.Producer, error) {
	var p models.Producer

	id, err := strconv.Atoi(row["id"])
	if err != nil {
		return p, fmt.Errorf("decode producer row: bad id %q: %w", row["id"], err)
	}

	p.ID = id
	p.ExternalID = row["producer_id"]
	p.Name = row["name"]
	p.Village = row["village"]
	p.Age = atoiOrZero(row["age"])
	p.JoinDate = row["join_date"]
	p.FarmSizeHectares = atofOrZero(row["farm_size_hectares"])
	p.NumTrees = atoiOrZero(row["num_trees"])
	p.Phone = row["phone"]
	p.EstimatedYield = atofOrZero(row["estimated_yield"])
	p.LastActive = row["last_active"]

	if err := decodeCell(row, "yield_history", &p.YieldHistory); err != nil {
		return p, err
	}
	if err := decodeCell(row, "tree_health", &p.TreeHealth); err != nil {
		return p, err
	}
	if err := decodeCell(row, "soil_quality", &p.SoilQuality); err != nil {
		return p, err
	}
	if err := decodeCell(row, "recent_activities", &p.RecentActivities); err != nil {
		return p, err
	}

	p.FarmImages = []string{}
	return p, nil
}

// EncodeProducerRow converts a producer record into a flat row. Mapping
// and sequence fields are serialized to JSON strings.
func EncodeProducerRow(p models.Producer) (Row, error) {
	row := Row{
		"id":                 strconv.Itoa(p.ID),
		"producer_id":        p.ExternalID,
		"name":               p.Name,
		"village":            p.Village,
		"age":                strconv.Itoa(p.Age),
		"join_date":          p.JoinDate,
		"farm_size_hectares": formatFloat(p.FarmSizeHectares),
		"num_trees":          strconv.Itoa(p.NumTrees),
		"phone":              p.Phone,
		"estimated_yield":    formatFloat(p.EstimatedYield),
		"last_active":        p.LastActive,
	}

	images := p.FarmImages
	if images == nil {
		images = []string{}
	}
	if err := encodeCell(row, "farm_images", images); err != nil {
		return nil, err
	}
	if err := encodeCell(row, "yield_history", orEmptyMap(p.YieldHistory)); err != nil {
		return nil, err
	}
	if err := encodeCell(row, "recent_activities", orEmptyActivities(p.RecentActivities)); err != nil {
		return nil, err
	}
	if err := encodeCell(row, "tree_health", orEmptyAny(p.TreeHealth)); err != nil {
		return nil, err
	}
	if err := encodeCell(row, "soil_quality", orEmptyAny(p.SoilQuality)); err != nil {
		return nil, err
	}
	return row, nil
}

// DecodeCooperativeRow converts a flat cooperative row into the record.
func DecodeCooperativeRow(row Row) (models.Cooperative, error) {
	c := models.Cooperative{
		Name:          row["name"],
		Location:      row["location"],
		Established:   atoiOrZero(row["established"]),
		TotalMembers:  atoiOrZero(row["total_members"]),
		ActiveMembers: atoiOrZero(row["active_members"]),
		TotalHectares: atofOrZero(row["total_hectares"]),
	}
	if err := decodeCell(row, "certification", &c.Certification); err != nil {
		return c, err
	}
	return c, nil
}

// EncodeCooperativeRow converts a cooperative record into a flat row.
func EncodeCooperativeRow(c models.Cooperative) (Row, error) {
	row := Row{
		"name":           c.Name,
		"location":       c.Location,
		"established":    strconv.Itoa(c.Established),
		"total_members":  strconv.Itoa(c.TotalMembers),
		"active_members": strconv.Itoa(c.ActiveMembers),
		"total_hectares": formatFloat(c.TotalHectares),
	}
	certs := c.Certification
	if certs == nil {
		certs = []string{}
	}
	if err := encodeCell(row, "certification", certs); err != nil {
		return nil, err
	}
	return row, nil
}

// DecodeAggregateRow converts the single aggregate row into the record.
//
// The aggregate table predates the explicit column schemas used
// elsewhere: a cell is treated as JSON when it starts with "{". The
// sniff is preserved for compatibility with existing stores but is
// fragile, so ai_insights is exempted by name to keep prose that happens
// to open with a brace from misparsing.
func DecodeAggregateRow(row Row) (models.Aggregate, error) {
	var a models.Aggregate
	a.AIInsights = row["ai_insights"]

	for column, target := range map[string]any{
		"monthly_yields":      &a.MonthlyYields,
		"disease_reports":     &a.DiseaseReports,
		"training_attendance": &a.TrainingAttendance,
	} {
		cell := row[column]
		if !strings.HasPrefix(cell, "{") {
			continue
		}
		if err := json.Unmarshal([]byte(cell), target); err != nil {
			return a, fmt.Errorf("decode aggregate row: column %q: %w", column, err)
		}
	}
	return a, nil
}

// EncodeAggregateRow converts the aggregate record into a flat row.
func EncodeAggregateRow(a models.Aggregate) (Row, error) {
	row := Row{"ai_insights": a.AIInsights}
	if err := encodeCell(row, "monthly_yields", orEmptyAny(a.MonthlyYields)); err != nil {
		return nil, err
	}
	if err := encodeCell(row, "disease_reports", orEmptyInts(a.DiseaseReports)); err != nil {
		return nil, err
	}
	if err := encodeCell(row, "training_attendance", orEmptyFloats(a.TrainingAttendance)); err != nil {
		return nil, err
	}
	return row, nil
}

// DecodeChatRow converts a flat chat history row into its producer id
// and message.
func DecodeChatRow(row Row) (int, models.ChatMessage, error) {
	id, err := strconv.Atoi(row["producer_id"])
	if err != nil {
		return 0, models.ChatMessage{}, fmt.Errorf("decode chat row: bad producer_id %q: %w", row["producer_id"], err)
	}
	return id, models.ChatMessage{
		Date:    row["date"],
		From:    row["from"],
		Message: row["message"],
	}, nil
}

// EncodeChatRow converts a producer id and message into a flat row.
func EncodeChatRow(producerID int, msg models.ChatMessage) Row {
	return Row{
		"producer_id": strconv.Itoa(producerID),
		"date":        msg.Date,
		"from":        msg.From,
		"message":     msg.Message,
	}
}

// decodeCell parses a JSON-encoded cell into target. Empty cells leave
// the target untouched; malformed JSON fails the record with the column
// named, and the caller decides whether to skip or abort.
func decodeCell(row Row, column string, target any) error {
	cell := row[column]
	if cell == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(cell), target); err != nil {
		return fmt.Errorf("decode column %q: malformed JSON cell: %w", column, err)
	}
	return nil
}

func encodeCell(row Row, column string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode column %q: %w", column, err)
	}
	row[column] = string(data)
	return nil
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func atofOrZero(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func orEmptyMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}

func orEmptyAny(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func orEmptyInts(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

func orEmptyFloats(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}

func orEmptyActivities(a []models.Activity) []models.Activity {
	if a == nil {
		return []models.Activity{}
	}
	return a
}
