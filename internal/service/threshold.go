package service

import (
	"fmt"
	"math"

	"daylog/internal/model"
)

// ThresholdClass labels a day's value relative to the configured limit.
type ThresholdClass string

const (
	ThresholdBelow ThresholdClass = "below"
	ThresholdAt    ThresholdClass = "at"
	ThresholdAbove ThresholdClass = "above"
	ThresholdNone  ThresholdClass = ""
)

const thresholdEpsilon = 1e-6

// ThresholdDay is one day's value classified against a threshold.
type ThresholdDay struct {
	Date  string         `json:"date"`
	Value float64        `json:"value"`
	Class ThresholdClass `json:"class,omitempty"`
}

// ThresholdDays compares per-day totals against the limit configured for
// the category (step goal, carb limit, calorie limit, desired sleep,
// water goal). With no configured limit the days come back unclassified.
func ThresholdDays(doc *model.Document, category model.Category) ([]ThresholdDay, error) {
	limit, err := thresholdLimit(doc, category)
	if err != nil {
		return nil, err
	}
	days, err := DailyTotals(doc, category)
	if err != nil {
		return nil, err
	}
	out := make([]ThresholdDay, 0, len(days))
	for _, d := range days {
		out = append(out, ThresholdDay{Date: d.Date, Value: d.Total, Class: classify(d.Total, limit)})
	}
	return out, nil
}

func thresholdLimit(doc *model.Document, category model.Category) (*float64, error) {
	switch category {
	case model.CategorySteps:
		return doc.Settings.StepGoal, nil
	case model.CategoryCarbs:
		return doc.Settings.CarbLimitG, nil
	case model.CategoryCalories:
		return doc.Settings.CalorieLimit, nil
	case model.CategorySleep:
		return doc.Settings.DesiredSleepHours, nil
	case model.CategoryWater:
		return doc.Settings.WaterGoalOz, nil
	}
	return nil, fmt.Errorf("category %q has no threshold setting", category)
}

// classify treats near-equal values as "at" so a day landing on the limit
// is not colored over or under by floating point noise.
func classify(value float64, limit *float64) ThresholdClass {
	if limit == nil {
		return ThresholdNone
	}
	if math.Abs(value-*limit) <= thresholdEpsilon {
		return ThresholdAt
	}
	if value < *limit {
		return ThresholdBelow
	}
	return ThresholdAbove
}
