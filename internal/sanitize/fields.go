package sanitize

import (
	"math"
	"strconv"
	"strings"

	"daylog/internal/dates"
	"daylog/internal/model"
)

// asMap coerces a raw section to an object, substituting an empty one for
// anything else so field extraction is always possible.
func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// boundedNumber accepts a finite number (or numeric string) within
// [min,max], falling back to def otherwise.
func boundedNumber(v any, min, max, def float64) float64 {
	n, ok := asNumber(v)
	if !ok || n < min || n > max {
		return def
	}
	return n
}

// optionalNumber accepts a finite number >= 0, else nil.
func optionalNumber(v any) *float64 {
	n, ok := asNumber(v)
	if !ok || n < 0 {
		return nil
	}
	return &n
}

// optionalRanged accepts a finite number within [min,max], else nil.
func optionalRanged(v any, min, max float64) *float64 {
	n, ok := asNumber(v)
	if !ok || n < min || n > max {
		return nil
	}
	return &n
}

func trimmedText(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// displayDate returns the value only when it is a valid display date.
func displayDate(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || !dates.IsDisplayDate(s) {
		return "", false
	}
	return s, true
}

// optionalDisplayDate keeps a valid display date and blanks anything else.
func optionalDisplayDate(v any) string {
	if s, ok := displayDate(v); ok {
		return s
	}
	return ""
}

// stringList rebuilds a list of ids: non-arrays become empty, blanks are
// dropped, duplicates collapse to their first occurrence.
func stringList(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s := trimmedText(item)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// keepOrMintID keeps a non-empty string id and mints a fresh one otherwise.
func keepOrMintID(v any) string {
	if s := trimmedText(v); s != "" {
		return s
	}
	return model.NewID()
}

// metaItems rebuilds a lookup list: items need a non-empty trimmed name,
// ids are kept or minted, and duplicate ids keep their first occurrence.
func metaItems(v any) []model.MetaItem {
	raw, ok := v.([]any)
	if !ok {
		return []model.MetaItem{}
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]model.MetaItem, 0, len(raw))
	for _, item := range raw {
		m := asMap(item)
		name := trimmedText(m["name"])
		if name == "" {
			continue
		}
		id := keepOrMintID(m["id"])
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, model.MetaItem{ID: id, Name: name})
	}
	return out
}

// clockTime normalizes free-text clock input to canonical "H:MM AM" form,
// blanking anything that does not parse.
func clockTime(v any) string {
	s := trimmedText(v)
	if s == "" {
		return ""
	}
	minutes, ok := dates.ParseClockTime(s)
	if !ok {
		return ""
	}
	return dates.FormatClockTime(minutes)
}

// activityList rebuilds activity references, dropping items without a meta
// id and defaulting out-of-range minutes to zero.
func activityList(v any) []model.Activity {
	raw, ok := v.([]any)
	if !ok {
		return []model.Activity{}
	}
	out := make([]model.Activity, 0, len(raw))
	for _, item := range raw {
		m := asMap(item)
		metaID := trimmedText(m["metaId"])
		if metaID == "" {
			continue
		}
		out = append(out, model.Activity{
			MetaID:  metaID,
			Minutes: boundedNumber(m["minutes"], 0, model.MaxMinutes, 0),
		})
	}
	return out
}
