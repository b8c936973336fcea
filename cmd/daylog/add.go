package daylog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"daylog/internal/dates"
	"daylog/internal/model"
	"daylog/internal/service"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a tracker entry",
}

var (
	addDate       string
	addWeightLbs  float64
	addHours      float64
	addGrams      float64
	addAmount     float64
	addCount      float64
	addScore      float64
	addOunces     float64
	addMinutes    float64
	addNote       string
	addBedTime    string
	addWakeTime   string
	addActivities []string
	addChildID    string
	addSubjectID  string
	addChoreIDs   []string
	addSubIDs     []string
)

func entryDate() string {
	if strings.TrimSpace(addDate) == "" {
		return dates.Today()
	}
	return addDate
}

func reportAdded(cmd *cobra.Command, category model.Category, id string) {
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s entry %s\n", category, id)
}

var addWeightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Record a weigh-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddWeight(s.doc, service.WeightInput{Date: entryDate(), WeightLbs: addWeightLbs})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategoryWeight, id)
			return nil
		})
	},
}

var addFastCmd = &cobra.Command{
	Use:   "fast",
	Short: "Record fasting hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddFasting(s.doc, service.FastingInput{Date: entryDate(), Hours: addHours})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategoryFasting, id)
			return nil
		})
	},
}

var addCarbsCmd = &cobra.Command{
	Use:   "carbs",
	Short: "Record carbohydrate grams",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddCarbs(s.doc, service.CarbInput{Date: entryDate(), Grams: addGrams, Note: addNote})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategoryCarbs, id)
			return nil
		})
	},
}

var addCaloriesCmd = &cobra.Command{
	Use:   "calories",
	Short: "Record calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddCalories(s.doc, service.CalorieInput{Date: entryDate(), Amount: addAmount, Note: addNote})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategoryCalories, id)
			return nil
		})
	},
}

var addStepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Record a step count",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddSteps(s.doc, service.StepsInput{Date: entryDate(), Count: addCount})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategorySteps, id)
			return nil
		})
	},
}

var addSleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Record sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddSleep(s.doc, service.SleepInput{
				Date: entryDate(), Hours: addHours,
				BedTime: addBedTime, WakeTime: addWakeTime, Note: addNote,
			})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategorySleep, id)
			return nil
		})
	},
}

var addMoodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Record a mood score (0-10)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddMood(s.doc, service.MoodInput{Date: entryDate(), Score: addScore, Note: addNote})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategoryMood, id)
			return nil
		})
	},
}

var addWaterCmd = &cobra.Command{
	Use:   "water",
	Short: "Record water ounces",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddWater(s.doc, service.WaterInput{Date: entryDate(), Ounces: addOunces})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategoryWater, id)
			return nil
		})
	},
}

var addWorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Record workout activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := parseActivities(addActivities)
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			doc, id, err := service.AddWorkout(s.doc, service.ActivityInput{Date: entryDate(), Activities: activities, Note: addNote})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategoryWorkouts, id)
			return nil
		})
	},
}

var addEntertainmentCmd = &cobra.Command{
	Use:   "entertainment",
	Short: "Record entertainment activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := parseActivities(addActivities)
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			doc, id, err := service.AddEntertainment(s.doc, service.ActivityInput{Date: entryDate(), Activities: activities, Note: addNote})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategoryEntertainment, id)
			return nil
		})
	},
}

var addHomeworkCmd = &cobra.Command{
	Use:   "homework",
	Short: "Record a homework session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddHomework(s.doc, service.HomeworkInput{
				Date: entryDate(), ChildID: addChildID, SubjectID: addSubjectID,
				Minutes: addMinutes, Note: addNote,
			})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategoryHomework, id)
			return nil
		})
	},
}

var addChoreCmd = &cobra.Command{
	Use:   "chore",
	Short: "Record completed chores",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddChores(s.doc, service.ChoreInput{Date: entryDate(), ChoreIDs: addChoreIDs, Note: addNote})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategoryChores, id)
			return nil
		})
	},
}

var addSubstanceCmd = &cobra.Command{
	Use:   "substance",
	Short: "Record substance use",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			doc, id, err := service.AddSubstances(s.doc, service.SubstanceInput{Date: entryDate(), SubstanceIDs: addSubIDs, Note: addNote})
			if err != nil {
				return err
			}
			s.commit(doc)
			reportAdded(cmd, model.CategorySubstances, id)
			return nil
		})
	},
}

// parseActivities parses repeated --activity id:minutes flags.
func parseActivities(specs []string) ([]model.Activity, error) {
	out := make([]model.Activity, 0, len(specs))
	for _, spec := range specs {
		idx := strings.LastIndex(spec, ":")
		if idx <= 0 || idx == len(spec)-1 {
			return nil, fmt.Errorf("invalid --activity %q (expected id:minutes)", spec)
		}
		minutes, err := strconv.ParseFloat(spec[idx+1:], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid minutes in --activity %q", spec)
		}
		out = append(out, model.Activity{MetaID: strings.TrimSpace(spec[:idx]), Minutes: minutes})
	}
	return out, nil
}

func init() {
	for _, c := range []*cobra.Command{
		addWeightCmd, addFastCmd, addCarbsCmd, addCaloriesCmd, addStepsCmd,
		addSleepCmd, addMoodCmd, addWaterCmd, addWorkoutCmd,
		addEntertainmentCmd, addHomeworkCmd, addChoreCmd, addSubstanceCmd,
	} {
		c.Flags().StringVar(&addDate, "date", "", "Entry date MM/DD/YYYY (default today)")
		addCmd.AddCommand(c)
	}

	addWeightCmd.Flags().Float64Var(&addWeightLbs, "lbs", 0, "Weight in pounds")
	_ = addWeightCmd.MarkFlagRequired("lbs")
	addFastCmd.Flags().Float64Var(&addHours, "hours", 0, "Hours fasted")
	_ = addFastCmd.MarkFlagRequired("hours")
	addCarbsCmd.Flags().Float64Var(&addGrams, "grams", 0, "Carbohydrate grams")
	_ = addCarbsCmd.MarkFlagRequired("grams")
	addCarbsCmd.Flags().StringVar(&addNote, "note", "", "Optional note")
	addCaloriesCmd.Flags().Float64Var(&addAmount, "amount", 0, "Calories")
	_ = addCaloriesCmd.MarkFlagRequired("amount")
	addCaloriesCmd.Flags().StringVar(&addNote, "note", "", "Optional note")
	addStepsCmd.Flags().Float64Var(&addCount, "count", 0, "Step count")
	_ = addStepsCmd.MarkFlagRequired("count")
	addSleepCmd.Flags().Float64Var(&addHours, "hours", 0, "Hours slept")
	_ = addSleepCmd.MarkFlagRequired("hours")
	addSleepCmd.Flags().StringVar(&addBedTime, "bed", "", "Bed time (e.g. 10:30 PM)")
	addSleepCmd.Flags().StringVar(&addWakeTime, "wake", "", "Wake time (e.g. 6:45 AM)")
	addSleepCmd.Flags().StringVar(&addNote, "note", "", "Optional note")
	addMoodCmd.Flags().Float64Var(&addScore, "score", 0, "Mood score 0-10")
	_ = addMoodCmd.MarkFlagRequired("score")
	addMoodCmd.Flags().StringVar(&addNote, "note", "", "Optional note")
	addWaterCmd.Flags().Float64Var(&addOunces, "oz", 0, "Water in ounces")
	_ = addWaterCmd.MarkFlagRequired("oz")
	addWorkoutCmd.Flags().StringArrayVar(&addActivities, "activity", nil, "Activity as id:minutes (repeatable)")
	_ = addWorkoutCmd.MarkFlagRequired("activity")
	addWorkoutCmd.Flags().StringVar(&addNote, "note", "", "Optional note")
	addEntertainmentCmd.Flags().StringArrayVar(&addActivities, "activity", nil, "Activity as id:minutes (repeatable)")
	_ = addEntertainmentCmd.MarkFlagRequired("activity")
	addEntertainmentCmd.Flags().StringVar(&addNote, "note", "", "Optional note")
	addHomeworkCmd.Flags().StringVar(&addChildID, "child", "", "Child meta item id")
	_ = addHomeworkCmd.MarkFlagRequired("child")
	addHomeworkCmd.Flags().StringVar(&addSubjectID, "subject", "", "Subject meta item id")
	_ = addHomeworkCmd.MarkFlagRequired("subject")
	addHomeworkCmd.Flags().Float64Var(&addMinutes, "minutes", 0, "Minutes spent")
	addHomeworkCmd.Flags().StringVar(&addNote, "note", "", "Optional note")
	addChoreCmd.Flags().StringArrayVar(&addChoreIDs, "chore", nil, "Chore meta item id (repeatable)")
	_ = addChoreCmd.MarkFlagRequired("chore")
	addChoreCmd.Flags().StringVar(&addNote, "note", "", "Optional note")
	addSubstanceCmd.Flags().StringArrayVar(&addSubIDs, "substance", nil, "Substance meta item id (repeatable)")
	_ = addSubstanceCmd.MarkFlagRequired("substance")
	addSubstanceCmd.Flags().StringVar(&addNote, "note", "", "Optional note")

	rootCmd.AddCommand(addCmd)
}
