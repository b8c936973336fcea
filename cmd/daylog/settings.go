package daylog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"daylog/internal/service"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change tracker settings",
}

var settingsShowJSON bool

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			if settingsShowJSON {
				b, err := json.MarshalIndent(s.doc.Settings, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal settings: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			out := cmd.OutOrStdout()
			settings := s.doc.Settings
			fmt.Fprintf(out, "Theme: %s\n", settings.Theme)
			printOptional(out, "Starting weight (lbs)", settings.StartingWeightLbs)
			printOptional(out, "Goal weight (lbs)", settings.GoalWeightLbs)
			printOptional(out, "Loss per week (lbs)", settings.LossPerWeekLbs)
			if settings.DietStartDate != "" {
				fmt.Fprintf(out, "Diet start: %s\n", settings.DietStartDate)
			} else {
				fmt.Fprintln(out, "Diet start: not set")
			}
			printOptional(out, "Carb limit (g)", settings.CarbLimitG)
			printOptional(out, "Calorie limit", settings.CalorieLimit)
			printOptional(out, "Step goal", settings.StepGoal)
			printOptional(out, "Desired sleep (hours)", settings.DesiredSleepHours)
			printOptional(out, "Water goal (oz)", settings.WaterGoalOz)
			return nil
		})
	},
}

func printOptional(out io.Writer, label string, v *float64) {
	if v == nil {
		fmt.Fprintf(out, "%s: not set\n", label)
		return
	}
	fmt.Fprintf(out, "%s: %g\n", label, *v)
}

var (
	setTheme         string
	setStartWeight   float64
	setGoalWeight    float64
	setLossPerWeek   float64
	setDietStart     string
	setCarbLimit     float64
	setCalorieLimit  float64
	setStepGoal      float64
	setSleepHours    float64
	setWaterGoal     float64
	setClearSettings []string
)

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings (only changed flags are applied)",
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := service.SettingsPatch{Clear: setClearSettings}
		if cmd.Flags().Changed("theme") {
			patch.Theme = &setTheme
		}
		if cmd.Flags().Changed("starting-weight") {
			patch.StartingWeightLbs = &setStartWeight
		}
		if cmd.Flags().Changed("goal-weight") {
			patch.GoalWeightLbs = &setGoalWeight
		}
		if cmd.Flags().Changed("loss-per-week") {
			patch.LossPerWeekLbs = &setLossPerWeek
		}
		if cmd.Flags().Changed("diet-start") {
			patch.DietStartDate = &setDietStart
		}
		if cmd.Flags().Changed("carb-limit") {
			patch.CarbLimitG = &setCarbLimit
		}
		if cmd.Flags().Changed("calorie-limit") {
			patch.CalorieLimit = &setCalorieLimit
		}
		if cmd.Flags().Changed("step-goal") {
			patch.StepGoal = &setStepGoal
		}
		if cmd.Flags().Changed("sleep-hours") {
			patch.DesiredSleepHours = &setSleepHours
		}
		if cmd.Flags().Changed("water-goal") {
			patch.WaterGoalOz = &setWaterGoal
		}
		if !anySettingChanged(patch) {
			return fmt.Errorf("set at least one flag")
		}
		return withSession(func(s *session) error {
			doc, err := service.UpdateSettings(s.doc, patch)
			if err != nil {
				return err
			}
			s.commit(doc)
			fmt.Fprintln(cmd.OutOrStdout(), "Settings updated")
			return nil
		})
	},
}

func anySettingChanged(p service.SettingsPatch) bool {
	return p.Theme != nil || p.StartingWeightLbs != nil || p.GoalWeightLbs != nil ||
		p.LossPerWeekLbs != nil || p.DietStartDate != nil || p.CarbLimitG != nil ||
		p.CalorieLimit != nil || p.StepGoal != nil || p.DesiredSleepHours != nil ||
		p.WaterGoalOz != nil || len(p.Clear) > 0
}

func init() {
	settingsShowCmd.Flags().BoolVar(&settingsShowJSON, "json", false, "Print as JSON")

	settingsSetCmd.Flags().StringVar(&setTheme, "theme", "", "UI theme (dark or light)")
	settingsSetCmd.Flags().Float64Var(&setStartWeight, "starting-weight", 0, "Starting weight in lbs")
	settingsSetCmd.Flags().Float64Var(&setGoalWeight, "goal-weight", 0, "Goal weight in lbs")
	settingsSetCmd.Flags().Float64Var(&setLossPerWeek, "loss-per-week", 0, "Target loss in lbs/week")
	settingsSetCmd.Flags().StringVar(&setDietStart, "diet-start", "", "Diet start date MM/DD/YYYY")
	settingsSetCmd.Flags().Float64Var(&setCarbLimit, "carb-limit", 0, "Daily carb limit in grams")
	settingsSetCmd.Flags().Float64Var(&setCalorieLimit, "calorie-limit", 0, "Daily calorie limit")
	settingsSetCmd.Flags().Float64Var(&setStepGoal, "step-goal", 0, "Daily step goal")
	settingsSetCmd.Flags().Float64Var(&setSleepHours, "sleep-hours", 0, "Desired sleep hours (3-12)")
	settingsSetCmd.Flags().Float64Var(&setWaterGoal, "water-goal", 0, "Daily water goal in ounces")
	settingsSetCmd.Flags().StringSliceVar(&setClearSettings, "clear", nil, "Setting names to reset (e.g. step-goal)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
