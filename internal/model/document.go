package model

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// SchemaVersion tags every document this build writes. The sanitization
// pipeline normalizes older documents to this version on load.
const SchemaVersion = "7"

const ThemeDark = "dark"
const ThemeLight = "light"

// Numeric field domains, shared by sanitization and input validation.
const (
	MaxWeightLbs   = 3000
	MaxFastingHrs  = 24
	MaxCarbGrams   = 500
	MaxCalories    = 50000
	MaxSteps       = 200000
	MaxSleepHrs    = 24
	MaxMoodScore   = 10
	MaxWaterOz     = 1000
	MaxMinutes     = 1440
	MinSleepTarget = 3
	MaxSleepTarget = 12
)

// NewID mints a globally-unique opaque id for entries and meta items.
func NewID() string {
	return ulid.Make().String()
}

// NewDocument returns an empty document at the current schema version.
func NewDocument() *Document {
	doc := &Document{
		Version:  SchemaVersion,
		Settings: Settings{Theme: ThemeDark},
		Meta: Meta{
			Workouts:      []MetaItem{},
			Subjects:      []MetaItem{},
			Children:      []MetaItem{},
			Chores:        []MetaItem{},
			Substances:    []MetaItem{},
			Entertainment: []MetaItem{},
		},
		Trackers: Trackers{
			Weight:        []WeightEntry{},
			Fasting:       []FastingEntry{},
			Carbs:         []CarbEntry{},
			Calories:      []CalorieEntry{},
			Steps:         []StepsEntry{},
			Sleep:         []SleepEntry{},
			Mood:          []MoodEntry{},
			Water:         []WaterEntry{},
			Workouts:      []ActivityEntry{},
			Entertainment: []ActivityEntry{},
			Homework:      []HomeworkEntry{},
			Chores:        []ChoreEntry{},
			Substances:    []SubstanceEntry{},
		},
	}
	doc.Stamp()
	return doc
}

// Stamp refreshes the document's updatedAt timestamp.
func (d *Document) Stamp() {
	d.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// EntryCount returns the total number of tracker entries across categories.
func (d *Document) EntryCount() int {
	t := &d.Trackers
	return len(t.Weight) + len(t.Fasting) + len(t.Carbs) + len(t.Calories) +
		len(t.Steps) + len(t.Sleep) + len(t.Mood) + len(t.Water) +
		len(t.Workouts) + len(t.Entertainment) + len(t.Homework) +
		len(t.Chores) + len(t.Substances)
}

// MetaItems returns the named lookup list, or nil for an unknown key.
func (m *Meta) MetaItems(list MetaList) []MetaItem {
	switch list {
	case MetaWorkouts:
		return m.Workouts
	case MetaSubjects:
		return m.Subjects
	case MetaChildren:
		return m.Children
	case MetaChores:
		return m.Chores
	case MetaSubstances:
		return m.Substances
	case MetaEntertainment:
		return m.Entertainment
	}
	return nil
}

// SetMetaItems replaces the named lookup list. Unknown keys are ignored.
func (m *Meta) SetMetaItems(list MetaList, items []MetaItem) {
	switch list {
	case MetaWorkouts:
		m.Workouts = items
	case MetaSubjects:
		m.Subjects = items
	case MetaChildren:
		m.Children = items
	case MetaChores:
		m.Chores = items
	case MetaSubstances:
		m.Substances = items
	case MetaEntertainment:
		m.Entertainment = items
	}
}

// HasMetaItem reports whether the list contains an item with the given id.
func (m *Meta) HasMetaItem(list MetaList, id string) bool {
	for _, item := range m.MetaItems(list) {
		if item.ID == id {
			return true
		}
	}
	return false
}

// MetaName resolves an item id to its display name, falling back to the id
// itself when the list no longer knows it.
func (m *Meta) MetaName(list MetaList, id string) string {
	for _, item := range m.MetaItems(list) {
		if item.ID == id {
			return item.Name
		}
	}
	return id
}

// Clone returns a deep copy. Mutations operate on a clone so the caller's
// document is never modified in place.
func (d *Document) Clone() *Document {
	out := *d
	out.Settings = cloneSettings(d.Settings)
	out.Meta = Meta{
		Workouts:      cloneItems(d.Meta.Workouts),
		Subjects:      cloneItems(d.Meta.Subjects),
		Children:      cloneItems(d.Meta.Children),
		Chores:        cloneItems(d.Meta.Chores),
		Substances:    cloneItems(d.Meta.Substances),
		Entertainment: cloneItems(d.Meta.Entertainment),
	}
	out.Trackers = Trackers{
		Weight:        cloneSlice(d.Trackers.Weight),
		Fasting:       cloneSlice(d.Trackers.Fasting),
		Carbs:         cloneSlice(d.Trackers.Carbs),
		Calories:      cloneSlice(d.Trackers.Calories),
		Steps:         cloneSlice(d.Trackers.Steps),
		Sleep:         cloneSlice(d.Trackers.Sleep),
		Mood:          cloneSlice(d.Trackers.Mood),
		Water:         cloneSlice(d.Trackers.Water),
		Workouts:      cloneActivityEntries(d.Trackers.Workouts),
		Entertainment: cloneActivityEntries(d.Trackers.Entertainment),
		Homework:      cloneSlice(d.Trackers.Homework),
		Chores:        cloneChoreEntries(d.Trackers.Chores),
		Substances:    cloneSubstanceEntries(d.Trackers.Substances),
	}
	return &out
}

func cloneSettings(s Settings) Settings {
	out := s
	out.StartingWeightLbs = clonePtr(s.StartingWeightLbs)
	out.GoalWeightLbs = clonePtr(s.GoalWeightLbs)
	out.LossPerWeekLbs = clonePtr(s.LossPerWeekLbs)
	out.CarbLimitG = clonePtr(s.CarbLimitG)
	out.CalorieLimit = clonePtr(s.CalorieLimit)
	out.StepGoal = clonePtr(s.StepGoal)
	out.DesiredSleepHours = clonePtr(s.DesiredSleepHours)
	out.WaterGoalOz = clonePtr(s.WaterGoalOz)
	return out
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneItems(items []MetaItem) []MetaItem {
	out := make([]MetaItem, len(items))
	copy(out, items)
	return out
}

func cloneSlice[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}

func cloneActivityEntries(list []ActivityEntry) []ActivityEntry {
	out := make([]ActivityEntry, len(list))
	for i, e := range list {
		e.Activities = cloneSlice(e.Activities)
		out[i] = e
	}
	return out
}

func cloneChoreEntries(list []ChoreEntry) []ChoreEntry {
	out := make([]ChoreEntry, len(list))
	for i, e := range list {
		e.ChoreIDs = cloneSlice(e.ChoreIDs)
		out[i] = e
	}
	return out
}

func cloneSubstanceEntries(list []SubstanceEntry) []SubstanceEntry {
	out := make([]SubstanceEntry, len(list))
	for i, e := range list {
		e.SubstanceIDs = cloneSlice(e.SubstanceIDs)
		out[i] = e
	}
	return out
}
