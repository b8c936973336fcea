package daylog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"daylog/internal/dates"
	"daylog/internal/service"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Derived charts and summaries",
}

var (
	reportJSON bool
	trendFrom  string
	trendTo    string
	sinceAsOf  string
)

func printJSON(out io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

var reportTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Weight trend: projected, recorded and fitted series",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			report := service.WeightTrend(s.doc)
			if trendFrom != "" || trendTo != "" {
				report.Projected = service.ClipSeries(report.Projected, trendFrom, trendTo)
				report.Actual = service.ClipSeries(report.Actual, trendFrom, trendTo)
				report.Fitted = service.ClipSeries(report.Fitted, trendFrom, trendTo)
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), report)
			}
			out := cmd.OutOrStdout()
			if report.GoalDate != "" {
				fmt.Fprintf(out, "Planned goal date: %s\n", report.GoalDate)
			}
			if report.SlopeLbsPerWeek != nil {
				fmt.Fprintf(out, "Recorded trend: %+.2f lbs/week\n", *report.SlopeLbsPerWeek)
			}
			if report.TrendGoalDate != "" {
				fmt.Fprintf(out, "Trend goal date: %s\n", report.TrendGoalDate)
			}
			for _, p := range report.Actual {
				fmt.Fprintf(out, "%s  %.1f lbs\n", p.Date, p.Weight)
			}
			for _, m := range report.Messages {
				fmt.Fprintf(out, "Note: %s\n", m)
			}
			return nil
		})
	},
}

var reportDailyCmd = &cobra.Command{
	Use:   "daily <category>",
	Short: "Per-day totals with contributing entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			days, err := service.DailyTotals(s.doc, category)
			if err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), days)
			}
			out := cmd.OutOrStdout()
			for _, d := range days {
				fmt.Fprintf(out, "%s  %g (%d entries)\n", d.Date, d.Total, len(d.Segments))
			}
			return nil
		})
	},
}

var reportLimitCmd = &cobra.Command{
	Use:   "limit <category>",
	Short: "Per-day totals classified against the configured limit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			days, err := service.ThresholdDays(s.doc, category)
			if err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), days)
			}
			out := cmd.OutOrStdout()
			for _, d := range days {
				if d.Class == service.ThresholdNone {
					fmt.Fprintf(out, "%s  %g\n", d.Date, d.Value)
					continue
				}
				fmt.Fprintf(out, "%s  %g (%s)\n", d.Date, d.Value, d.Class)
			}
			return nil
		})
	},
}

var reportCompositionCmd = &cobra.Command{
	Use:   "composition <workouts|entertainment>",
	Short: "Minutes per activity as a share of the total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			slices, err := service.Composition(s.doc, category)
			if err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), slices)
			}
			out := cmd.OutOrStdout()
			for _, sl := range slices {
				fmt.Fprintf(out, "%-24s %6.0f min  %5.1f%%\n", sl.Name, sl.Minutes, sl.Percent)
			}
			return nil
		})
	},
}

var reportSubstancesCmd = &cobra.Command{
	Use:   "substances",
	Short: "Substance usage histogram (each substance counted once per day)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			report := service.SubstanceHistogram(s.doc)
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), report)
			}
			out := cmd.OutOrStdout()
			for _, d := range report.Days {
				fmt.Fprintf(out, "%s  %d\n", d.Date, d.Count)
			}
			for _, t := range report.Totals {
				fmt.Fprintf(out, "%-24s %d days\n", t.Name, t.Days)
			}
			return nil
		})
	},
}

var reportSinceCmd = &cobra.Command{
	Use:   "since <list>",
	Short: "Elapsed time since each item was last used",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := parseMetaList(args[0])
		if err != nil {
			return err
		}
		asOf := sinceAsOf
		if asOf == "" {
			asOf = dates.Today()
		}
		return withSession(func(s *session) error {
			uses, err := service.TimeSinceLastUse(s.doc, list, asOf)
			if err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), uses)
			}
			out := cmd.OutOrStdout()
			for _, u := range uses {
				if !u.OK {
					fmt.Fprintf(out, "%-24s never used\n", u.Name)
					continue
				}
				fmt.Fprintf(out, "%-24s %d years %d days (last %s)\n", u.Name, u.Years, u.Days, u.LastDate)
			}
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{
		reportTrendCmd, reportDailyCmd, reportLimitCmd,
		reportCompositionCmd, reportSubstancesCmd, reportSinceCmd,
	} {
		c.Flags().BoolVar(&reportJSON, "json", false, "Print as JSON")
		reportCmd.AddCommand(c)
	}
	reportTrendCmd.Flags().StringVar(&trendFrom, "from", "", "Clip window start (YYYY-MM-DD)")
	reportTrendCmd.Flags().StringVar(&trendTo, "to", "", "Clip window end (YYYY-MM-DD)")
	reportSinceCmd.Flags().StringVar(&sinceAsOf, "as-of", "", "Compute elapsed time as of this MM/DD/YYYY date (default today)")

	rootCmd.AddCommand(reportCmd)
}
