package service

import (
	"math"
	"sort"
	"time"

	"daylog/internal/dates"
	"daylog/internal/model"
)

// TrendPoint is one (ISO date, weight) sample on a trend series.
type TrendPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// TrendReport carries the three weight-trend series. Any series whose
// inputs are missing or degenerate is nil, with an explanatory message
// appended instead.
type TrendReport struct {
	Projected       []TrendPoint `json:"projected,omitempty"`
	Actual          []TrendPoint `json:"actual,omitempty"`
	Fitted          []TrendPoint `json:"fitted,omitempty"`
	GoalDate        string       `json:"goalDate,omitempty"`
	TrendGoalDate   string       `json:"trendGoalDate,omitempty"`
	SlopeLbsPerWeek *float64     `json:"slopeLbsPerWeek,omitempty"`
	Messages        []string     `json:"messages,omitempty"`
}

// WeightTrend derives the projected path from the configured loss rate,
// the literal recorded path anchored at the diet start, and an ordinary
// least-squares fit of the recorded samples extrapolated to a second
// estimated goal date.
func WeightTrend(doc *model.Document) *TrendReport {
	report := &TrendReport{}
	s := doc.Settings

	startDay, haveStartDate := isoDay(dates.DisplayToISO(s.DietStartDate))
	haveStartWeight := s.StartingWeightLbs != nil
	haveGoal := s.GoalWeightLbs != nil

	samples := weightSamples(doc, startDay, haveStartDate)

	report.Actual = actualSeries(samples, startDay, haveStartDate, haveStartWeight, s.StartingWeightLbs)
	if len(report.Actual) == 0 {
		report.Messages = append(report.Messages, "no weigh-ins recorded yet")
	}

	switch {
	case !haveStartDate || !haveStartWeight || !haveGoal || s.LossPerWeekLbs == nil:
		report.Messages = append(report.Messages, "set diet start, starting weight, goal weight and loss per week to project a goal date")
	case *s.LossPerWeekLbs <= 0:
		report.Messages = append(report.Messages, "loss per week must be above zero to project a goal date")
	case *s.GoalWeightLbs >= *s.StartingWeightLbs:
		report.Messages = append(report.Messages, "goal weight must be below starting weight to project a goal date")
	default:
		weeks := (*s.StartingWeightLbs - *s.GoalWeightLbs) / *s.LossPerWeekLbs
		goalDay := startDay + weeks*7
		report.GoalDate = dayToISO(goalDay)
		report.Projected = []TrendPoint{
			{Date: dayToISO(startDay), Weight: *s.StartingWeightLbs},
			{Date: report.GoalDate, Weight: *s.GoalWeightLbs},
		}
	}

	fitTrend(report, samples, haveStartDate, haveGoal, s.GoalWeightLbs)
	return report
}

type weightSample struct {
	day    float64
	weight float64
}

// weightSamples returns recorded weigh-ins with parseable dates, sorted
// ascending, restricted to on/after the diet start when one is set.
func weightSamples(doc *model.Document, startDay float64, haveStart bool) []weightSample {
	samples := make([]weightSample, 0, len(doc.Trackers.Weight))
	for _, e := range doc.Trackers.Weight {
		day, ok := isoDay(dates.DisplayToISO(e.Date))
		if !ok {
			continue
		}
		if haveStart && day < startDay {
			continue
		}
		samples = append(samples, weightSample{day: day, weight: e.WeightLbs})
	}
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].day < samples[j].day })
	return samples
}

func actualSeries(samples []weightSample, startDay float64, haveStartDate, haveStartWeight bool, startWeight *float64) []TrendPoint {
	out := make([]TrendPoint, 0, len(samples)+1)
	if haveStartDate && haveStartWeight {
		out = append(out, TrendPoint{Date: dayToISO(startDay), Weight: *startWeight})
	}
	for _, s := range samples {
		out = append(out, TrendPoint{Date: dayToISO(s.day), Weight: s.weight})
	}
	return out
}

// fitTrend runs ordinary least squares over (weeks since first sample,
// weight) and extrapolates from the latest sample to the goal weight.
func fitTrend(report *TrendReport, samples []weightSample, haveStartDate, haveGoal bool, goal *float64) {
	if !haveStartDate {
		report.Messages = append(report.Messages, "set a diet start date to fit a weight trend")
		return
	}
	if len(samples) < 2 {
		report.Messages = append(report.Messages, "need at least two weigh-ins after the diet start to fit a trend")
		return
	}

	first := samples[0].day
	n := float64(len(samples))
	var sumX, sumY, sumXY, sumX2 float64
	for _, s := range samples {
		x := (s.day - first) / 7
		sumX += x
		sumY += s.weight
		sumXY += x * s.weight
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		report.Messages = append(report.Messages, "weigh-ins span a single day; cannot fit a trend")
		return
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n
	report.SlopeLbsPerWeek = &slope

	if slope >= 0 {
		report.Messages = append(report.Messages, "recorded trend is flat or rising; no trend goal date")
		return
	}
	if !haveGoal {
		report.Messages = append(report.Messages, "set a goal weight to estimate a trend goal date")
		return
	}

	latest := samples[len(samples)-1]
	latestX := (latest.day - first) / 7
	fittedAtLatest := intercept + slope*latestX
	weeksRemaining := (fittedAtLatest - *goal) / -slope
	if weeksRemaining < 0 {
		weeksRemaining = 0
	}
	goalDay := latest.day + weeksRemaining*7
	report.TrendGoalDate = dayToISO(goalDay)
	report.Fitted = []TrendPoint{
		{Date: dayToISO(latest.day), Weight: fittedAtLatest},
		{Date: report.TrendGoalDate, Weight: *goal},
	}
}

// ClipSeries restricts an ascending series to [fromISO, toISO], linearly
// interpolating new boundary points where a segment crosses a window edge
// so partial-segment values are preserved. Empty bounds leave that edge
// unclipped.
func ClipSeries(series []TrendPoint, fromISO, toISO string) []TrendPoint {
	if len(series) == 0 {
		return nil
	}
	fromDay := math.Inf(-1)
	if d, ok := isoDay(fromISO); ok {
		fromDay = d
	}
	toDay := math.Inf(1)
	if d, ok := isoDay(toISO); ok {
		toDay = d
	}
	if fromDay > toDay {
		return nil
	}

	type sample struct {
		day    float64
		weight float64
	}
	points := make([]sample, 0, len(series))
	for _, p := range series {
		if d, ok := isoDay(p.Date); ok {
			points = append(points, sample{day: d, weight: p.Weight})
		}
	}

	out := make([]TrendPoint, 0, len(points))
	push := func(day, weight float64) {
		iso := dayToISO(day)
		if len(out) > 0 && out[len(out)-1].Date == iso && out[len(out)-1].Weight == weight {
			return
		}
		out = append(out, TrendPoint{Date: iso, Weight: weight})
	}
	interp := func(a, b sample, day float64) float64 {
		if b.day == a.day {
			return a.weight
		}
		return a.weight + (b.weight-a.weight)*(day-a.day)/(b.day-a.day)
	}

	for i, p := range points {
		if p.day < fromDay {
			if i+1 < len(points) && points[i+1].day > fromDay {
				push(fromDay, interp(p, points[i+1], fromDay))
			}
			continue
		}
		if p.day > toDay {
			if i > 0 && points[i-1].day < toDay {
				push(toDay, interp(points[i-1], p, toDay))
			}
			break
		}
		push(p.day, p.weight)
	}
	return out
}

// isoDay converts an ISO date to a whole day number since the Unix epoch.
func isoDay(iso string) (float64, bool) {
	t, err := time.Parse(dates.ISOLayout, iso)
	if err != nil {
		return 0, false
	}
	return float64(t.Unix()) / 86400, true
}

func dayToISO(day float64) string {
	return time.Unix(int64(math.Round(day*86400)), 0).UTC().Format(dates.ISOLayout)
}
