// Package dates normalizes the inconsistent timestamp formats found in
// extracted producer data (ISO timestamps with "Z" suffixes, explicit
// offsets, bare dates, empty cells) into canonical YYYY-MM-DD strings.
package dates

import (
	"strings"
	"time"
)

// Canonical is the date layout used everywhere in the tabular store.
const Canonical = "2006-01-02"

// layouts tried in order when parsing a normalized timestamp.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02-07:00",
}

// Parse interprets a raw timestamp string and returns the parsed time.
// Empty and unparsable inputs return ok=false; parsing never errors out.
func Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	// "Z" is rewritten to an explicit zero offset, and timestamps
	// carrying no offset at all are assumed UTC. The offset scan skips
	// the date portion so its hyphens are not mistaken for one.
	if strings.HasSuffix(raw, "Z") {
		raw = strings.TrimSuffix(raw, "Z") + "+00:00"
	} else if len(raw) >= 10 && !strings.ContainsAny(raw[10:], "+-") {
		raw = raw + "+00:00"
	} else if len(raw) < 10 {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Normalize converts a raw timestamp into the canonical YYYY-MM-DD form.
// Returns ok=false for empty or unparsable input.
func Normalize(raw string) (string, bool) {
	t, ok := Parse(raw)
	if !ok {
		return "", false
	}
	return t.Format(Canonical), true
}

// MostRecent returns the most recent date among the raw timestamps,
// formatted as YYYY-MM-DD. Unparsable entries are discarded; ok=false
// when nothing parses.
func MostRecent(raws []string) (string, bool) {
	var best time.Time
	found := false
	for _, raw := range raws {
		t, ok := Parse(raw)
		if !ok {
			continue
		}
		if !found || t.After(best) {
			best = t
			found = true
		}
	}
	if !found {
		return "", false
	}
	return best.Format(Canonical), true
}
