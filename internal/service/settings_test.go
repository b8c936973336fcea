package service_test

import (
	"testing"

	"daylog/internal/service"
)

func strPtr(s string) *string { return &s }

func TestUpdateSettingsMergesPatch(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	doc, err := service.UpdateSettings(doc, service.SettingsPatch{
		Theme:             strPtr("light"),
		StartingWeightLbs: floatPtr(210),
		GoalWeightLbs:     floatPtr(180),
		DietStartDate:     strPtr("01/01/2026"),
	})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	s := doc.Settings
	if s.Theme != "light" || s.DietStartDate != "01/01/2026" {
		t.Errorf("scalar settings not applied: %+v", s)
	}
	if s.StartingWeightLbs == nil || *s.StartingWeightLbs != 210 {
		t.Errorf("starting weight not applied: %v", s.StartingWeightLbs)
	}

	// A later patch touching one field leaves the rest alone.
	doc, err = service.UpdateSettings(doc, service.SettingsPatch{LossPerWeekLbs: floatPtr(1.5)})
	if err != nil {
		t.Fatalf("second patch: %v", err)
	}
	if doc.Settings.Theme != "light" || doc.Settings.GoalWeightLbs == nil {
		t.Errorf("untouched fields changed: %+v", doc.Settings)
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	if _, err := service.UpdateSettings(doc, service.SettingsPatch{Theme: strPtr("neon")}); err == nil {
		t.Errorf("unknown theme must be rejected")
	}
	if _, err := service.UpdateSettings(doc, service.SettingsPatch{DietStartDate: strPtr("2026-01-01")}); err == nil {
		t.Errorf("ISO diet start must be rejected")
	}
	if _, err := service.UpdateSettings(doc, service.SettingsPatch{StepGoal: floatPtr(-1)}); err == nil {
		t.Errorf("negative step goal must be rejected")
	}
	if _, err := service.UpdateSettings(doc, service.SettingsPatch{DesiredSleepHours: floatPtr(2)}); err == nil {
		t.Errorf("sleep target below range must be rejected")
	}
	if _, err := service.UpdateSettings(doc, service.SettingsPatch{DesiredSleepHours: floatPtr(13)}); err == nil {
		t.Errorf("sleep target above range must be rejected")
	}
	if _, err := service.UpdateSettings(doc, service.SettingsPatch{Clear: []string{"favorite-color"}}); err == nil {
		t.Errorf("unknown clear name must be rejected")
	}
}

func TestUpdateSettingsClear(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	doc, err := service.UpdateSettings(doc, service.SettingsPatch{
		StartingWeightLbs: floatPtr(210),
		StepGoal:          floatPtr(10000),
		DietStartDate:     strPtr("01/01/2026"),
	})
	if err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	doc, err = service.UpdateSettings(doc, service.SettingsPatch{
		Clear: []string{"starting-weight", "diet-start"},
	})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if doc.Settings.StartingWeightLbs != nil {
		t.Errorf("starting weight not cleared")
	}
	if doc.Settings.DietStartDate != "" {
		t.Errorf("diet start not cleared")
	}
	if doc.Settings.StepGoal == nil || *doc.Settings.StepGoal != 10000 {
		t.Errorf("uncleared setting changed: %v", doc.Settings.StepGoal)
	}
}
