package service

import (
	"fmt"
	"sort"

	"daylog/internal/dates"
	"daylog/internal/model"
)

// DaySegment is one entry's contribution to a day total, retained in entry
// order for stacked-segment rendering.
type DaySegment struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// DayTotal is the summed value for one calendar day plus its segments.
type DayTotal struct {
	Date     string       `json:"date"`
	Total    float64      `json:"total"`
	Segments []DaySegment `json:"segments"`
}

// DailyTotals groups a category's entries by parsed calendar date and sums
// the category's numeric field per day. Differently-formatted but equal
// dates coalesce because the grouping key is the ISO conversion; entries
// whose dates do not convert are dropped.
func DailyTotals(doc *model.Document, category model.Category) ([]DayTotal, error) {
	switch category {
	case model.CategoryCalories:
		return dayTotals(doc.Trackers.Calories, func(e model.CalorieEntry) (float64, string) { return e.Amount, e.Note }), nil
	case model.CategoryCarbs:
		return dayTotals(doc.Trackers.Carbs, func(e model.CarbEntry) (float64, string) { return e.Grams, e.Note }), nil
	case model.CategorySleep:
		return dayTotals(doc.Trackers.Sleep, func(e model.SleepEntry) (float64, string) { return e.Hours, e.Note }), nil
	case model.CategoryWater:
		return dayTotals(doc.Trackers.Water, func(e model.WaterEntry) (float64, string) { return e.Ounces, "" }), nil
	case model.CategorySteps:
		return dayTotals(doc.Trackers.Steps, func(e model.StepsEntry) (float64, string) { return e.Count, "" }), nil
	case model.CategoryHomework:
		return dayTotals(doc.Trackers.Homework, func(e model.HomeworkEntry) (float64, string) { return e.Minutes, e.Note }), nil
	case model.CategoryFasting:
		return dayTotals(doc.Trackers.Fasting, func(e model.FastingEntry) (float64, string) { return e.Hours, "" }), nil
	}
	return nil, fmt.Errorf("category %q has no per-day totals", category)
}

func dayTotals[T model.Entry](entries []T, project func(T) (float64, string)) []DayTotal {
	byDay := make(map[string]*DayTotal)
	order := make([]string, 0)
	for _, e := range entries {
		iso := dates.DisplayToISO(e.EntryDate())
		if iso == "" {
			continue
		}
		value, label := project(e)
		day, ok := byDay[iso]
		if !ok {
			day = &DayTotal{Date: iso}
			byDay[iso] = day
			order = append(order, iso)
		}
		day.Total += value
		day.Segments = append(day.Segments, DaySegment{ID: e.EntryID(), Value: value, Label: label})
	}
	sort.Strings(order)
	out := make([]DayTotal, 0, len(order))
	for _, iso := range order {
		out = append(out, *byDay[iso])
	}
	return out
}
