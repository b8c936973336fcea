// Package service implements the mutation and derivation API over the
// document. Every mutation is a pure transform: it deep-copies the input
// document, applies the change, stamps the copy and returns it. The
// caller's document is never modified.
package service

import (
	"fmt"
	"strings"

	"daylog/internal/dates"
	"daylog/internal/model"
)

func validDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if !dates.IsDisplayDate(date) {
		return "", fmt.Errorf("invalid date %q (expected MM/DD/YYYY)", date)
	}
	return date, nil
}

func validRange(name string, value, min, max float64) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %g and %g", name, min, max)
	}
	return nil
}

type WeightInput struct {
	Date      string
	WeightLbs float64
}

func AddWeight(doc *model.Document, in WeightInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	if err := validRange("weight", in.WeightLbs, 0, model.MaxWeightLbs); err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Weight = prepend(out.Trackers.Weight, model.WeightEntry{ID: id, Date: date, WeightLbs: in.WeightLbs})
	out.Stamp()
	return out, id, nil
}

type FastingInput struct {
	Date  string
	Hours float64
}

func AddFasting(doc *model.Document, in FastingInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	if err := validRange("fasting hours", in.Hours, 0, model.MaxFastingHrs); err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Fasting = prepend(out.Trackers.Fasting, model.FastingEntry{ID: id, Date: date, Hours: in.Hours})
	out.Stamp()
	return out, id, nil
}

type CarbInput struct {
	Date  string
	Grams float64
	Note  string
}

func AddCarbs(doc *model.Document, in CarbInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	if err := validRange("carbs", in.Grams, 0, model.MaxCarbGrams); err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Carbs = prepend(out.Trackers.Carbs, model.CarbEntry{ID: id, Date: date, Grams: in.Grams, Note: strings.TrimSpace(in.Note)})
	out.Stamp()
	return out, id, nil
}

type CalorieInput struct {
	Date   string
	Amount float64
	Note   string
}

func AddCalories(doc *model.Document, in CalorieInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	if err := validRange("calories", in.Amount, 0, model.MaxCalories); err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Calories = prepend(out.Trackers.Calories, model.CalorieEntry{ID: id, Date: date, Amount: in.Amount, Note: strings.TrimSpace(in.Note)})
	out.Stamp()
	return out, id, nil
}

type StepsInput struct {
	Date  string
	Count float64
}

func AddSteps(doc *model.Document, in StepsInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	if err := validRange("steps", in.Count, 0, model.MaxSteps); err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Steps = prepend(out.Trackers.Steps, model.StepsEntry{ID: id, Date: date, Count: in.Count})
	out.Stamp()
	return out, id, nil
}

type SleepInput struct {
	Date     string
	Hours    float64
	BedTime  string
	WakeTime string
	Note     string
}

func AddSleep(doc *model.Document, in SleepInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	if err := validRange("sleep hours", in.Hours, 0, model.MaxSleepHrs); err != nil {
		return nil, "", err
	}
	bed, err := normalizeClock("bed time", in.BedTime)
	if err != nil {
		return nil, "", err
	}
	wake, err := normalizeClock("wake time", in.WakeTime)
	if err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Sleep = prepend(out.Trackers.Sleep, model.SleepEntry{
		ID: id, Date: date, Hours: in.Hours,
		BedTime: bed, WakeTime: wake, Note: strings.TrimSpace(in.Note),
	})
	out.Stamp()
	return out, id, nil
}

func normalizeClock(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	minutes, ok := dates.ParseClockTime(value)
	if !ok {
		return "", fmt.Errorf("invalid %s %q (expected e.g. 10:30 PM)", name, value)
	}
	return dates.FormatClockTime(minutes), nil
}

type MoodInput struct {
	Date  string
	Score float64
	Note  string
}

func AddMood(doc *model.Document, in MoodInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	if err := validRange("mood", in.Score, 0, model.MaxMoodScore); err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Mood = prepend(out.Trackers.Mood, model.MoodEntry{ID: id, Date: date, Score: in.Score, Note: strings.TrimSpace(in.Note)})
	out.Stamp()
	return out, id, nil
}

type WaterInput struct {
	Date   string
	Ounces float64
}

func AddWater(doc *model.Document, in WaterInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	if err := validRange("water", in.Ounces, 0, model.MaxWaterOz); err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Water = prepend(out.Trackers.Water, model.WaterEntry{ID: id, Date: date, Ounces: in.Ounces})
	out.Stamp()
	return out, id, nil
}

type ActivityInput struct {
	Date       string
	Activities []model.Activity
	Note       string
}

// AddWorkout records a workout entry. Every referenced activity must name
// an existing workouts meta item at creation time.
func AddWorkout(doc *model.Document, in ActivityInput) (*model.Document, string, error) {
	return addActivityEntry(doc, model.MetaWorkouts, in)
}

// AddEntertainment records an entertainment entry against the
// entertainment meta list.
func AddEntertainment(doc *model.Document, in ActivityInput) (*model.Document, string, error) {
	return addActivityEntry(doc, model.MetaEntertainment, in)
}

func addActivityEntry(doc *model.Document, list model.MetaList, in ActivityInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	if len(in.Activities) == 0 {
		return nil, "", fmt.Errorf("at least one activity is required")
	}
	for _, a := range in.Activities {
		if !doc.Meta.HasMetaItem(list, a.MetaID) {
			return nil, "", fmt.Errorf("unknown %s item %q", list, a.MetaID)
		}
		if err := validRange("minutes", a.Minutes, 0, model.MaxMinutes); err != nil {
			return nil, "", err
		}
	}
	out := doc.Clone()
	id := model.NewID()
	entry := model.ActivityEntry{ID: id, Date: date, Activities: append([]model.Activity(nil), in.Activities...), Note: strings.TrimSpace(in.Note)}
	if list == model.MetaWorkouts {
		out.Trackers.Workouts = prepend(out.Trackers.Workouts, entry)
	} else {
		out.Trackers.Entertainment = prepend(out.Trackers.Entertainment, entry)
	}
	out.Stamp()
	return out, id, nil
}

type HomeworkInput struct {
	Date      string
	ChildID   string
	SubjectID string
	Minutes   float64
	Note      string
}

func AddHomework(doc *model.Document, in HomeworkInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	if !doc.Meta.HasMetaItem(model.MetaChildren, in.ChildID) {
		return nil, "", fmt.Errorf("unknown child %q", in.ChildID)
	}
	if !doc.Meta.HasMetaItem(model.MetaSubjects, in.SubjectID) {
		return nil, "", fmt.Errorf("unknown subject %q", in.SubjectID)
	}
	if err := validRange("minutes", in.Minutes, 0, model.MaxMinutes); err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Homework = prepend(out.Trackers.Homework, model.HomeworkEntry{
		ID: id, Date: date, ChildID: in.ChildID, SubjectID: in.SubjectID,
		Minutes: in.Minutes, Note: strings.TrimSpace(in.Note),
	})
	out.Stamp()
	return out, id, nil
}

type ChoreInput struct {
	Date     string
	ChoreIDs []string
	Note     string
}

func AddChores(doc *model.Document, in ChoreInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	ids, err := checkedIDList(doc, model.MetaChores, in.ChoreIDs)
	if err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Chores = prepend(out.Trackers.Chores, model.ChoreEntry{ID: id, Date: date, ChoreIDs: ids, Note: strings.TrimSpace(in.Note)})
	out.Stamp()
	return out, id, nil
}

type SubstanceInput struct {
	Date         string
	SubstanceIDs []string
	Note         string
}

func AddSubstances(doc *model.Document, in SubstanceInput) (*model.Document, string, error) {
	date, err := validDate(in.Date)
	if err != nil {
		return nil, "", err
	}
	ids, err := checkedIDList(doc, model.MetaSubstances, in.SubstanceIDs)
	if err != nil {
		return nil, "", err
	}
	out := doc.Clone()
	id := model.NewID()
	out.Trackers.Substances = prepend(out.Trackers.Substances, model.SubstanceEntry{ID: id, Date: date, SubstanceIDs: ids, Note: strings.TrimSpace(in.Note)})
	out.Stamp()
	return out, id, nil
}

// checkedIDList trims, de-duplicates and validates references into a meta
// list, requiring at least one surviving id.
func checkedIDList(doc *model.Document, list model.MetaList, ids []string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		if !doc.Meta.HasMetaItem(list, id) {
			return nil, fmt.Errorf("unknown %s item %q", list, id)
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one %s item is required", list)
	}
	return out, nil
}

// New entries are prepended: lists are kept most-recent-first.
func prepend[T any](list []T, entry T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, entry)
	return append(out, list...)
}

// RemoveEntry filters the entry with the given id out of a category.
// When the id is not present the document is returned unchanged and
// unstamped.
func RemoveEntry(doc *model.Document, category model.Category, id string) (*model.Document, bool) {
	out := doc.Clone()
	found := false
	switch category {
	case model.CategoryWeight:
		out.Trackers.Weight, found = removeByID(out.Trackers.Weight, id)
	case model.CategoryFasting:
		out.Trackers.Fasting, found = removeByID(out.Trackers.Fasting, id)
	case model.CategoryCarbs:
		out.Trackers.Carbs, found = removeByID(out.Trackers.Carbs, id)
	case model.CategoryCalories:
		out.Trackers.Calories, found = removeByID(out.Trackers.Calories, id)
	case model.CategorySteps:
		out.Trackers.Steps, found = removeByID(out.Trackers.Steps, id)
	case model.CategorySleep:
		out.Trackers.Sleep, found = removeByID(out.Trackers.Sleep, id)
	case model.CategoryMood:
		out.Trackers.Mood, found = removeByID(out.Trackers.Mood, id)
	case model.CategoryWater:
		out.Trackers.Water, found = removeByID(out.Trackers.Water, id)
	case model.CategoryWorkouts:
		out.Trackers.Workouts, found = removeByID(out.Trackers.Workouts, id)
	case model.CategoryEntertainment:
		out.Trackers.Entertainment, found = removeByID(out.Trackers.Entertainment, id)
	case model.CategoryHomework:
		out.Trackers.Homework, found = removeByID(out.Trackers.Homework, id)
	case model.CategoryChores:
		out.Trackers.Chores, found = removeByID(out.Trackers.Chores, id)
	case model.CategorySubstances:
		out.Trackers.Substances, found = removeByID(out.Trackers.Substances, id)
	}
	if !found {
		return doc, false
	}
	out.Stamp()
	return out, true
}

func removeByID[T model.Entry](list []T, id string) ([]T, bool) {
	out := make([]T, 0, len(list))
	found := false
	for _, e := range list {
		if e.EntryID() == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	return out, found
}

// ClearAllEntries empties every tracker category and reports how many
// entries were removed. An already-empty document is returned unchanged.
func ClearAllEntries(doc *model.Document) (*model.Document, int) {
	removed := doc.EntryCount()
	if removed == 0 {
		return doc, 0
	}
	out := doc.Clone()
	out.Trackers = model.NewDocument().Trackers
	out.Stamp()
	return out, removed
}

// ClearEntriesBefore drops entries strictly earlier than the cutoff
// display date from every category. The cutoff day itself is kept. An
// invalid cutoff is a no-op.
func ClearEntriesBefore(doc *model.Document, cutoff string) (*model.Document, int) {
	cutISO := dates.DisplayToISO(strings.TrimSpace(cutoff))
	if cutISO == "" {
		return doc, 0
	}
	out := doc.Clone()
	removed := 0
	out.Trackers.Weight, removed = keepOnOrAfter(out.Trackers.Weight, cutISO, removed)
	out.Trackers.Fasting, removed = keepOnOrAfter(out.Trackers.Fasting, cutISO, removed)
	out.Trackers.Carbs, removed = keepOnOrAfter(out.Trackers.Carbs, cutISO, removed)
	out.Trackers.Calories, removed = keepOnOrAfter(out.Trackers.Calories, cutISO, removed)
	out.Trackers.Steps, removed = keepOnOrAfter(out.Trackers.Steps, cutISO, removed)
	out.Trackers.Sleep, removed = keepOnOrAfter(out.Trackers.Sleep, cutISO, removed)
	out.Trackers.Mood, removed = keepOnOrAfter(out.Trackers.Mood, cutISO, removed)
	out.Trackers.Water, removed = keepOnOrAfter(out.Trackers.Water, cutISO, removed)
	out.Trackers.Workouts, removed = keepOnOrAfter(out.Trackers.Workouts, cutISO, removed)
	out.Trackers.Entertainment, removed = keepOnOrAfter(out.Trackers.Entertainment, cutISO, removed)
	out.Trackers.Homework, removed = keepOnOrAfter(out.Trackers.Homework, cutISO, removed)
	out.Trackers.Chores, removed = keepOnOrAfter(out.Trackers.Chores, cutISO, removed)
	out.Trackers.Substances, removed = keepOnOrAfter(out.Trackers.Substances, cutISO, removed)
	if removed == 0 {
		return doc, 0
	}
	out.Stamp()
	return out, removed
}

func keepOnOrAfter[T model.Entry](list []T, cutISO string, removed int) ([]T, int) {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if dates.DisplayToISO(e.EntryDate()) >= cutISO {
			out = append(out, e)
		} else {
			removed++
		}
	}
	return out, removed
}

// SnapshotBefore returns a copy of the document holding only the entries
// that ClearEntriesBefore would remove, for backup-then-delete flows. An
// invalid cutoff yields an empty snapshot.
func SnapshotBefore(doc *model.Document, cutoff string) *model.Document {
	cutISO := dates.DisplayToISO(strings.TrimSpace(cutoff))
	out := doc.Clone()
	if cutISO == "" {
		out.Trackers = model.NewDocument().Trackers
		return out
	}
	out.Trackers.Weight = keepBefore(out.Trackers.Weight, cutISO)
	out.Trackers.Fasting = keepBefore(out.Trackers.Fasting, cutISO)
	out.Trackers.Carbs = keepBefore(out.Trackers.Carbs, cutISO)
	out.Trackers.Calories = keepBefore(out.Trackers.Calories, cutISO)
	out.Trackers.Steps = keepBefore(out.Trackers.Steps, cutISO)
	out.Trackers.Sleep = keepBefore(out.Trackers.Sleep, cutISO)
	out.Trackers.Mood = keepBefore(out.Trackers.Mood, cutISO)
	out.Trackers.Water = keepBefore(out.Trackers.Water, cutISO)
	out.Trackers.Workouts = keepBefore(out.Trackers.Workouts, cutISO)
	out.Trackers.Entertainment = keepBefore(out.Trackers.Entertainment, cutISO)
	out.Trackers.Homework = keepBefore(out.Trackers.Homework, cutISO)
	out.Trackers.Chores = keepBefore(out.Trackers.Chores, cutISO)
	out.Trackers.Substances = keepBefore(out.Trackers.Substances, cutISO)
	return out
}

func keepBefore[T model.Entry](list []T, cutISO string) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if iso := dates.DisplayToISO(e.EntryDate()); iso != "" && iso < cutISO {
			out = append(out, e)
		}
	}
	return out
}
