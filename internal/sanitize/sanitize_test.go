package sanitize_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"daylog/internal/model"
	"daylog/internal/sanitize"
)

func parseJSON(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("parse test JSON: %v", err)
	}
	return v
}

func TestDocumentIsTotal(t *testing.T) {
	t.Parallel()
	inputs := []any{
		nil,
		"just a string",
		42.0,
		true,
		[]any{1.0, 2.0, 3.0},
		map[string]any{},
		map[string]any{"trackers": "not an object"},
		map[string]any{"settings": []any{}, "meta": 7.0, "trackers": nil},
	}
	for i, in := range inputs {
		doc := sanitize.Document(in)
		if doc == nil {
			t.Fatalf("input %d: got nil document", i)
		}
		if doc.Version != model.SchemaVersion {
			t.Errorf("input %d: version = %q, want %q", i, doc.Version, model.SchemaVersion)
		}
		if doc.Settings.Theme != model.ThemeDark {
			t.Errorf("input %d: theme = %q, want default dark", i, doc.Settings.Theme)
		}
		if doc.Trackers.Weight == nil || doc.Trackers.Substances == nil {
			t.Errorf("input %d: tracker slices must be non-nil", i)
		}
	}
}

func TestDocumentIdempotent(t *testing.T) {
	t.Parallel()
	raw := parseJSON(t, `{
		"version": "3",
		"updatedAt": "2026-05-01T10:00:00Z",
		"settings": {"theme": "light", "startingWeightLbs": 210, "goalWeightLbs": 180, "lossPerWeekLbs": 1.5, "dietStartDate": "01/01/2026"},
		"meta": {"workouts": [{"id": "w1", "name": "Running"}]},
		"trackers": {
			"weight": [{"id": "a", "date": "01/02/2026", "weightLbs": 205.4}],
			"sleep": [{"id": "b", "date": "01/02/2026", "hours": 7.5, "bedTime": "10:30 PM", "wakeTime": "6:00 AM"}],
			"carbs": [{"id": "c", "date": "01/02/2026", "grams": 40, "note": "pizza"}]
		}
	}`)

	once := sanitize.Document(raw)

	b, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	twice := sanitize.Document(parseJSON(t, string(b)))
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("sanitize is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFieldNormalization(t *testing.T) {
	t.Parallel()
	raw := parseJSON(t, `{
		"updatedAt": "not a timestamp",
		"settings": {"theme": "HOTDOG", "startingWeightLbs": -5, "desiredSleepHours": 20, "stepGoal": "12000", "dietStartDate": "2026-01-01"},
		"trackers": {
			"weight": [
				{"id": "a", "date": "01/02/2026", "weightLbs": 99999},
				{"id": "b", "date": "01/03/2026", "weightLbs": "190.5"},
				{"id": "c", "date": "01/04/2026", "weightLbs": "junk"},
				{"id": "d", "date": "01/05/2026", "weightLbs": 3000}
			]
		}
	}`)
	doc := sanitize.Document(raw)

	if doc.UpdatedAt == "not a timestamp" {
		t.Errorf("invalid updatedAt must not be kept")
	}
	if doc.Settings.Theme != model.ThemeDark {
		t.Errorf("theme = %q, want dark fallback", doc.Settings.Theme)
	}
	if doc.Settings.StartingWeightLbs != nil {
		t.Errorf("negative starting weight must clear to nil, got %v", *doc.Settings.StartingWeightLbs)
	}
	if doc.Settings.DesiredSleepHours != nil {
		t.Errorf("out-of-range sleep target must clear to nil, got %v", *doc.Settings.DesiredSleepHours)
	}
	if doc.Settings.StepGoal == nil || *doc.Settings.StepGoal != 12000 {
		t.Errorf("numeric string step goal not parsed: %v", doc.Settings.StepGoal)
	}
	if doc.Settings.DietStartDate != "" {
		t.Errorf("ISO diet start date must be rejected, got %q", doc.Settings.DietStartDate)
	}

	w := doc.Trackers.Weight
	if len(w) != 4 {
		t.Fatalf("weight entries = %d, want 4", len(w))
	}
	// Out-of-range values fall back to the default, they are not clamped.
	if w[0].WeightLbs != 0 {
		t.Errorf("over-max weight = %v, want default 0", w[0].WeightLbs)
	}
	if w[1].WeightLbs != 190.5 {
		t.Errorf("string weight = %v, want 190.5", w[1].WeightLbs)
	}
	if w[2].WeightLbs != 0 {
		t.Errorf("junk weight = %v, want default 0", w[2].WeightLbs)
	}
	if w[3].WeightLbs != model.MaxWeightLbs {
		t.Errorf("at-max weight = %v, want kept", w[3].WeightLbs)
	}
}

func TestEntryBaseRules(t *testing.T) {
	t.Parallel()
	raw := parseJSON(t, `{
		"trackers": {
			"water": [
				{"id": "keep", "date": "03/10/2026", "ounces": 16},
				{"date": "03/11/2026", "ounces": 8},
				{"id": "drop-me", "date": "2026-03-12", "ounces": 8},
				{"id": "drop-too", "ounces": 8}
			]
		}
	}`)
	doc := sanitize.Document(raw)

	w := doc.Trackers.Water
	if len(w) != 2 {
		t.Fatalf("water entries = %d, want 2 (invalid dates dropped)", len(w))
	}
	if w[0].ID != "keep" {
		t.Errorf("existing id must be kept, got %q", w[0].ID)
	}
	if w[1].ID == "" {
		t.Errorf("missing id must be minted")
	}
}

func TestMetaItemRules(t *testing.T) {
	t.Parallel()
	raw := parseJSON(t, `{
		"meta": {
			"chores": [
				{"id": "c1", "name": "Dishes"},
				{"id": "c1", "name": "Laundry"},
				{"name": "Vacuum"},
				{"id": "c2", "name": "   "},
				{"id": "c3"}
			]
		}
	}`)
	doc := sanitize.Document(raw)

	chores := doc.Meta.Chores
	if len(chores) != 2 {
		t.Fatalf("chores = %d, want 2 (dup id and nameless dropped): %+v", len(chores), chores)
	}
	if chores[0].ID != "c1" || chores[0].Name != "Dishes" {
		t.Errorf("first occurrence of duplicate id must win, got %+v", chores[0])
	}
	if chores[1].Name != "Vacuum" || chores[1].ID == "" {
		t.Errorf("nameless id mint failed: %+v", chores[1])
	}
}

func TestLegacyCarbsFallback(t *testing.T) {
	t.Parallel()

	legacy := parseJSON(t, `{
		"trackers": {
			"entertainment": [
				{"id": "a", "date": "01/02/2026", "grams": 30, "note": "bread"}
			]
		}
	}`)
	doc := sanitize.Document(legacy)
	if len(doc.Trackers.Carbs) != 1 || doc.Trackers.Carbs[0].Grams != 30 {
		t.Fatalf("legacy carbs not migrated: %+v", doc.Trackers.Carbs)
	}
	if len(doc.Trackers.Entertainment) != 0 {
		t.Errorf("migrated legacy key must leave entertainment empty, got %+v", doc.Trackers.Entertainment)
	}

	// A modern document keeps both keys as written.
	modern := parseJSON(t, `{
		"trackers": {
			"carbs": [],
			"entertainment": [
				{"id": "a", "date": "01/02/2026", "activities": [{"metaId": "tv", "minutes": 60}]}
			]
		}
	}`)
	doc = sanitize.Document(modern)
	if len(doc.Trackers.Carbs) != 0 {
		t.Errorf("carbs = %+v, want empty", doc.Trackers.Carbs)
	}
	if len(doc.Trackers.Entertainment) != 1 {
		t.Fatalf("entertainment = %+v, want 1 entry", doc.Trackers.Entertainment)
	}

	// Entertainment entries without a grams field are never misread.
	plain := parseJSON(t, `{
		"trackers": {
			"entertainment": [
				{"id": "a", "date": "01/02/2026", "activities": [{"metaId": "tv", "minutes": 60}]}
			]
		}
	}`)
	doc = sanitize.Document(plain)
	if len(doc.Trackers.Carbs) != 0 || len(doc.Trackers.Entertainment) != 1 {
		t.Errorf("activity-shaped entertainment misread: carbs=%+v entertainment=%+v",
			doc.Trackers.Carbs, doc.Trackers.Entertainment)
	}
}

func TestStringListAndClockNormalization(t *testing.T) {
	t.Parallel()
	raw := parseJSON(t, `{
		"trackers": {
			"chores": [{"id": "a", "date": "01/02/2026", "choreIds": ["c1", " c2 ", "c1", "", 9]}],
			"sleep": [{"id": "b", "date": "01/02/2026", "hours": 8, "bedTime": "10:30pm", "wakeTime": "nope"}]
		}
	}`)
	doc := sanitize.Document(raw)

	got := doc.Trackers.Chores[0].ChoreIDs
	want := []string{"c1", "c2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("chore id list (-want +got):\n%s", diff)
	}

	s := doc.Trackers.Sleep[0]
	if s.BedTime != "10:30 PM" {
		t.Errorf("bed time = %q, want canonical 10:30 PM", s.BedTime)
	}
	if s.WakeTime != "" {
		t.Errorf("unparsable wake time = %q, want empty", s.WakeTime)
	}
}
