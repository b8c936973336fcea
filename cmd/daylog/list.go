package daylog

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"daylog/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "List a category's entries with their ids",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			printEntries(cmd.OutOrStdout(), s.doc, category)
			return nil
		})
	},
}

// printEntries renders one line per entry: id, date, then the category's
// value. The id column feeds `rm --category --id`.
func printEntries(out io.Writer, doc *model.Document, category model.Category) {
	line := func(id, date, value, note string) {
		if note != "" {
			fmt.Fprintf(out, "%s  %s  %s (%s)\n", id, date, value, note)
			return
		}
		fmt.Fprintf(out, "%s  %s  %s\n", id, date, value)
	}
	count := 0
	switch category {
	case model.CategoryWeight:
		for _, e := range doc.Trackers.Weight {
			line(e.ID, e.Date, fmt.Sprintf("%g lbs", e.WeightLbs), "")
		}
		count = len(doc.Trackers.Weight)
	case model.CategoryFasting:
		for _, e := range doc.Trackers.Fasting {
			line(e.ID, e.Date, fmt.Sprintf("%g hours", e.Hours), "")
		}
		count = len(doc.Trackers.Fasting)
	case model.CategoryCarbs:
		for _, e := range doc.Trackers.Carbs {
			line(e.ID, e.Date, fmt.Sprintf("%g g", e.Grams), e.Note)
		}
		count = len(doc.Trackers.Carbs)
	case model.CategoryCalories:
		for _, e := range doc.Trackers.Calories {
			line(e.ID, e.Date, fmt.Sprintf("%g cal", e.Amount), e.Note)
		}
		count = len(doc.Trackers.Calories)
	case model.CategorySteps:
		for _, e := range doc.Trackers.Steps {
			line(e.ID, e.Date, fmt.Sprintf("%g steps", e.Count), "")
		}
		count = len(doc.Trackers.Steps)
	case model.CategorySleep:
		for _, e := range doc.Trackers.Sleep {
			detail := fmt.Sprintf("%g hours", e.Hours)
			if e.BedTime != "" || e.WakeTime != "" {
				detail += fmt.Sprintf(" %s-%s", e.BedTime, e.WakeTime)
			}
			line(e.ID, e.Date, detail, e.Note)
		}
		count = len(doc.Trackers.Sleep)
	case model.CategoryMood:
		for _, e := range doc.Trackers.Mood {
			line(e.ID, e.Date, fmt.Sprintf("%g/10", e.Score), e.Note)
		}
		count = len(doc.Trackers.Mood)
	case model.CategoryWater:
		for _, e := range doc.Trackers.Water {
			line(e.ID, e.Date, fmt.Sprintf("%g oz", e.Ounces), "")
		}
		count = len(doc.Trackers.Water)
	case model.CategoryWorkouts:
		printActivityEntries(out, doc, model.MetaWorkouts, doc.Trackers.Workouts)
		count = len(doc.Trackers.Workouts)
	case model.CategoryEntertainment:
		printActivityEntries(out, doc, model.MetaEntertainment, doc.Trackers.Entertainment)
		count = len(doc.Trackers.Entertainment)
	case model.CategoryHomework:
		for _, e := range doc.Trackers.Homework {
			detail := fmt.Sprintf("%s/%s %g min",
				doc.Meta.MetaName(model.MetaChildren, e.ChildID),
				doc.Meta.MetaName(model.MetaSubjects, e.SubjectID),
				e.Minutes)
			line(e.ID, e.Date, detail, e.Note)
		}
		count = len(doc.Trackers.Homework)
	case model.CategoryChores:
		for _, e := range doc.Trackers.Chores {
			line(e.ID, e.Date, metaNames(doc, model.MetaChores, e.ChoreIDs), e.Note)
		}
		count = len(doc.Trackers.Chores)
	case model.CategorySubstances:
		for _, e := range doc.Trackers.Substances {
			line(e.ID, e.Date, metaNames(doc, model.MetaSubstances, e.SubstanceIDs), e.Note)
		}
		count = len(doc.Trackers.Substances)
	}
	if count == 0 {
		fmt.Fprintf(out, "No %s entries yet\n", category)
	}
}

func printActivityEntries(out io.Writer, doc *model.Document, list model.MetaList, entries []model.ActivityEntry) {
	for _, e := range entries {
		parts := make([]string, 0, len(e.Activities))
		for _, a := range e.Activities {
			parts = append(parts, fmt.Sprintf("%s %g min", doc.Meta.MetaName(list, a.MetaID), a.Minutes))
		}
		detail := strings.Join(parts, ", ")
		if e.Note != "" {
			fmt.Fprintf(out, "%s  %s  %s (%s)\n", e.ID, e.Date, detail, e.Note)
			continue
		}
		fmt.Fprintf(out, "%s  %s  %s\n", e.ID, e.Date, detail)
	}
}

func metaNames(doc *model.Document, list model.MetaList, ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, doc.Meta.MetaName(list, id))
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(listCmd)
}
