// Package jsonutil handles the loosely typed JSON this system ingests:
// enrichment responses where the model returns numbers as strings (or the
// other way around), and tabular cells where percentages appear either as
// integers or as "75%"-style strings.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleString converts a json.RawMessage to a string, handling cases
// where the enrichment service returns numbers or booleans instead of
// strings. Returns empty string for null/empty.
func FlexibleString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var strVal string
	if err := json.Unmarshal(raw, &strVal); err == nil {
		return strVal
	}

	var numVal float64
	if err := json.Unmarshal(raw, &numVal); err == nil {
		if numVal == float64(int64(numVal)) {
			return fmt.Sprintf("%d", int64(numVal))
		}
		return fmt.Sprintf("%g", numVal)
	}

	var boolVal bool
	if err := json.Unmarshal(raw, &boolVal); err == nil {
		return fmt.Sprintf("%t", boolVal)
	}

	return string(raw)
}

// FlexibleFloat converts a json.RawMessage to a float64, accepting both
// JSON numbers and numeric strings ("5.2", "4,200"). Returns 0 when the
// value cannot be interpreted as a number.
func FlexibleFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return 0
	}

	var numVal float64
	if err := json.Unmarshal(raw, &numVal); err == nil {
		return numVal
	}

	var strVal string
	if err := json.Unmarshal(raw, &strVal); err == nil {
		strVal = strings.ReplaceAll(strings.TrimSpace(strVal), ",", "")
		if parsed, err := strconv.ParseFloat(strVal, 64); err == nil {
			return parsed
		}
	}

	return 0
}

// FlexibleInt is FlexibleFloat truncated to an int.
func FlexibleInt(raw json.RawMessage) int {
	return int(FlexibleFloat(raw))
}

// PercentValue interprets a decoded JSON value as a percentage. Accepts
// numbers (80, 77.5) and strings with an optional trailing percent sign
// ("75", "75%"). The second return is false when the value is neither.
func PercentValue(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(val), "%"))
		f, err := strconv.ParseFloat(trimmed, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
