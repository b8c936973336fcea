package service

import (
	"fmt"
	"strings"

	"daylog/internal/dates"
	"daylog/internal/model"
)

// SettingsPatch is a shallow partial update: nil fields are untouched,
// non-nil fields replace the current value, and names in Clear reset a
// setting to unconfigured.
type SettingsPatch struct {
	Theme             *string
	StartingWeightLbs *float64
	GoalWeightLbs     *float64
	LossPerWeekLbs    *float64
	DietStartDate     *string
	CarbLimitG        *float64
	CalorieLimit      *float64
	StepGoal          *float64
	DesiredSleepHours *float64
	WaterGoalOz       *float64
	Clear             []string
}

// SettingNames lists the clearable setting keys accepted by Clear.
var SettingNames = []string{
	"starting-weight", "goal-weight", "loss-per-week", "diet-start",
	"carb-limit", "calorie-limit", "step-goal", "sleep-hours", "water-goal",
}

// UpdateSettings merges the patch into the document's settings.
func UpdateSettings(doc *model.Document, patch SettingsPatch) (*model.Document, error) {
	out := doc.Clone()
	s := &out.Settings

	if patch.Theme != nil {
		theme := strings.TrimSpace(*patch.Theme)
		if theme != model.ThemeDark && theme != model.ThemeLight {
			return nil, fmt.Errorf("invalid theme %q (use dark or light)", theme)
		}
		s.Theme = theme
	}
	if patch.DietStartDate != nil {
		date := strings.TrimSpace(*patch.DietStartDate)
		if !dates.IsDisplayDate(date) {
			return nil, fmt.Errorf("invalid diet start date %q (expected MM/DD/YYYY)", date)
		}
		s.DietStartDate = date
	}
	if err := setOptional(&s.StartingWeightLbs, patch.StartingWeightLbs, "starting weight"); err != nil {
		return nil, err
	}
	if err := setOptional(&s.GoalWeightLbs, patch.GoalWeightLbs, "goal weight"); err != nil {
		return nil, err
	}
	if err := setOptional(&s.LossPerWeekLbs, patch.LossPerWeekLbs, "loss per week"); err != nil {
		return nil, err
	}
	if err := setOptional(&s.CarbLimitG, patch.CarbLimitG, "carb limit"); err != nil {
		return nil, err
	}
	if err := setOptional(&s.CalorieLimit, patch.CalorieLimit, "calorie limit"); err != nil {
		return nil, err
	}
	if err := setOptional(&s.StepGoal, patch.StepGoal, "step goal"); err != nil {
		return nil, err
	}
	if err := setOptional(&s.WaterGoalOz, patch.WaterGoalOz, "water goal"); err != nil {
		return nil, err
	}
	if patch.DesiredSleepHours != nil {
		v := *patch.DesiredSleepHours
		if v < model.MinSleepTarget || v > model.MaxSleepTarget {
			return nil, fmt.Errorf("sleep hours must be between %d and %d", model.MinSleepTarget, model.MaxSleepTarget)
		}
		s.DesiredSleepHours = &v
	}

	for _, name := range patch.Clear {
		switch strings.TrimSpace(name) {
		case "starting-weight":
			s.StartingWeightLbs = nil
		case "goal-weight":
			s.GoalWeightLbs = nil
		case "loss-per-week":
			s.LossPerWeekLbs = nil
		case "diet-start":
			s.DietStartDate = ""
		case "carb-limit":
			s.CarbLimitG = nil
		case "calorie-limit":
			s.CalorieLimit = nil
		case "step-goal":
			s.StepGoal = nil
		case "sleep-hours":
			s.DesiredSleepHours = nil
		case "water-goal":
			s.WaterGoalOz = nil
		default:
			return nil, fmt.Errorf("unknown setting %q", name)
		}
	}

	out.Stamp()
	return out, nil
}

func setOptional(dst **float64, src *float64, name string) error {
	if src == nil {
		return nil
	}
	if *src < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	v := *src
	*dst = &v
	return nil
}
