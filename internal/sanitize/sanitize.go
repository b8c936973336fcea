// Package sanitize normalizes arbitrary parsed JSON into a schema-valid
// document. It is total: any input, including nil, scalars and arrays,
// produces a well-formed document without errors.
package sanitize

import (
	"time"

	"daylog/internal/model"
)

// Document rebuilds a valid document from raw parsed JSON. Missing or
// malformed sections collapse to empty objects, malformed fields fall back
// to defaults, and entries whose base shape is invalid are dropped rather
// than failing the whole document.
func Document(raw any) *model.Document {
	root, ok := raw.(map[string]any)
	if !ok {
		return model.NewDocument()
	}

	doc := model.NewDocument()
	doc.Version = model.SchemaVersion
	if stamped := trimmedText(root["updatedAt"]); stamped != "" {
		if _, err := time.Parse(time.RFC3339, stamped); err == nil {
			doc.UpdatedAt = stamped
		}
	}

	doc.Settings = settings(asMap(root["settings"]))
	doc.Meta = meta(asMap(root["meta"]))
	doc.Trackers = trackers(asMap(root["trackers"]))
	return doc
}

func settings(m map[string]any) model.Settings {
	theme := trimmedText(m["theme"])
	if theme != model.ThemeDark && theme != model.ThemeLight {
		theme = model.ThemeDark
	}
	return model.Settings{
		Theme:             theme,
		StartingWeightLbs: optionalNumber(m["startingWeightLbs"]),
		GoalWeightLbs:     optionalNumber(m["goalWeightLbs"]),
		LossPerWeekLbs:    optionalNumber(m["lossPerWeekLbs"]),
		DietStartDate:     optionalDisplayDate(m["dietStartDate"]),
		CarbLimitG:        optionalNumber(m["carbLimitG"]),
		CalorieLimit:      optionalNumber(m["calorieLimit"]),
		StepGoal:          optionalNumber(m["stepGoal"]),
		DesiredSleepHours: optionalRanged(m["desiredSleepHours"], model.MinSleepTarget, model.MaxSleepTarget),
		WaterGoalOz:       optionalNumber(m["waterGoalOz"]),
	}
}

func meta(m map[string]any) model.Meta {
	return model.Meta{
		Workouts:      metaItems(m["workouts"]),
		Subjects:      metaItems(m["subjects"]),
		Children:      metaItems(m["children"]),
		Chores:        metaItems(m["chores"]),
		Substances:    metaItems(m["substances"]),
		Entertainment: metaItems(m["entertainment"]),
	}
}

func trackers(m map[string]any) model.Trackers {
	t := model.Trackers{
		Weight:     entryList(m["weight"], buildWeight),
		Fasting:    entryList(m["fasting"], buildFasting),
		Calories:   entryList(m["calories"], buildCalorie),
		Steps:      entryList(m["steps"], buildSteps),
		Sleep:      entryList(m["sleep"], buildSleep),
		Mood:       entryList(m["mood"], buildMood),
		Water:      entryList(m["water"], buildWater),
		Homework:   entryList(m["homework"], buildHomework),
		Chores:     entryList(m["chores"], buildChore),
		Workouts:   entryList(m["workouts"], buildActivity),
		Substances: entryList(m["substances"], buildSubstance),
	}

	// Schema 5 stored carb entries under the "entertainment" key. The
	// legacy key is consulted only when the current key is entirely absent
	// and the legacy elements actually carry the carb gram field, so a
	// modern document's entertainment entries are never misread.
	_, hasCarbs := m["carbs"]
	if !hasCarbs && looksLikeLegacyCarbs(m["entertainment"]) {
		t.Carbs = entryList(m["entertainment"], buildCarb)
		t.Entertainment = []model.ActivityEntry{}
	} else {
		t.Carbs = entryList(m["carbs"], buildCarb)
		t.Entertainment = entryList(m["entertainment"], buildActivity)
	}
	return t
}

func looksLikeLegacyCarbs(v any) bool {
	raw, ok := v.([]any)
	if !ok {
		return false
	}
	for _, item := range raw {
		if _, ok := asNumber(asMap(item)["grams"]); ok {
			return true
		}
	}
	return false
}

type baseEntry struct {
	id   string
	date string
}

// entryBase applies the shared id/date rules. A missing or malformed date
// is unrecoverable, so the entry is dropped; a missing id is minted fresh.
func entryBase(m map[string]any) (baseEntry, bool) {
	date, ok := displayDate(m["date"])
	if !ok {
		return baseEntry{}, false
	}
	return baseEntry{id: keepOrMintID(m["id"]), date: date}, true
}

// entryList rebuilds one tracker category, filtering out elements whose
// base shape fails so partial corruption never rejects the document.
func entryList[T any](v any, build func(map[string]any) (T, bool)) []T {
	raw, ok := v.([]any)
	if !ok {
		return []T{}
	}
	out := make([]T, 0, len(raw))
	for _, item := range raw {
		if entry, ok := build(asMap(item)); ok {
			out = append(out, entry)
		}
	}
	return out
}

func buildWeight(m map[string]any) (model.WeightEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.WeightEntry{}, false
	}
	return model.WeightEntry{
		ID:        base.id,
		Date:      base.date,
		WeightLbs: boundedNumber(m["weightLbs"], 0, model.MaxWeightLbs, 0),
	}, true
}

func buildFasting(m map[string]any) (model.FastingEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.FastingEntry{}, false
	}
	return model.FastingEntry{
		ID:    base.id,
		Date:  base.date,
		Hours: boundedNumber(m["hours"], 0, model.MaxFastingHrs, 0),
	}, true
}

func buildCarb(m map[string]any) (model.CarbEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.CarbEntry{}, false
	}
	return model.CarbEntry{
		ID:    base.id,
		Date:  base.date,
		Grams: boundedNumber(m["grams"], 0, model.MaxCarbGrams, 0),
		Note:  trimmedText(m["note"]),
	}, true
}

func buildCalorie(m map[string]any) (model.CalorieEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.CalorieEntry{}, false
	}
	return model.CalorieEntry{
		ID:     base.id,
		Date:   base.date,
		Amount: boundedNumber(m["amount"], 0, model.MaxCalories, 0),
		Note:   trimmedText(m["note"]),
	}, true
}

func buildSteps(m map[string]any) (model.StepsEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.StepsEntry{}, false
	}
	return model.StepsEntry{
		ID:    base.id,
		Date:  base.date,
		Count: boundedNumber(m["count"], 0, model.MaxSteps, 0),
	}, true
}

func buildSleep(m map[string]any) (model.SleepEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.SleepEntry{}, false
	}
	return model.SleepEntry{
		ID:       base.id,
		Date:     base.date,
		Hours:    boundedNumber(m["hours"], 0, model.MaxSleepHrs, 0),
		BedTime:  clockTime(m["bedTime"]),
		WakeTime: clockTime(m["wakeTime"]),
		Note:     trimmedText(m["note"]),
	}, true
}

func buildMood(m map[string]any) (model.MoodEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.MoodEntry{}, false
	}
	return model.MoodEntry{
		ID:    base.id,
		Date:  base.date,
		Score: boundedNumber(m["score"], 0, model.MaxMoodScore, 0),
		Note:  trimmedText(m["note"]),
	}, true
}

func buildWater(m map[string]any) (model.WaterEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.WaterEntry{}, false
	}
	return model.WaterEntry{
		ID:     base.id,
		Date:   base.date,
		Ounces: boundedNumber(m["ounces"], 0, model.MaxWaterOz, 0),
	}, true
}

func buildActivity(m map[string]any) (model.ActivityEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.ActivityEntry{}, false
	}
	return model.ActivityEntry{
		ID:         base.id,
		Date:       base.date,
		Activities: activityList(m["activities"]),
		Note:       trimmedText(m["note"]),
	}, true
}

func buildHomework(m map[string]any) (model.HomeworkEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.HomeworkEntry{}, false
	}
	return model.HomeworkEntry{
		ID:        base.id,
		Date:      base.date,
		ChildID:   trimmedText(m["childId"]),
		SubjectID: trimmedText(m["subjectId"]),
		Minutes:   boundedNumber(m["minutes"], 0, model.MaxMinutes, 0),
		Note:      trimmedText(m["note"]),
	}, true
}

func buildChore(m map[string]any) (model.ChoreEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.ChoreEntry{}, false
	}
	return model.ChoreEntry{
		ID:       base.id,
		Date:     base.date,
		ChoreIDs: stringList(m["choreIds"]),
		Note:     trimmedText(m["note"]),
	}, true
}

func buildSubstance(m map[string]any) (model.SubstanceEntry, bool) {
	base, ok := entryBase(m)
	if !ok {
		return model.SubstanceEntry{}, false
	}
	return model.SubstanceEntry{
		ID:           base.id,
		Date:         base.date,
		SubstanceIDs: stringList(m["substanceIds"]),
		Note:         trimmedText(m["note"]),
	}, true
}
