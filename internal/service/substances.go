package service

import (
	"sort"

	"daylog/internal/dates"
	"daylog/internal/model"
)

// SubstanceDayCount is the number of distinct substances referenced on one
// calendar day.
type SubstanceDayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SubstanceUsage is the number of distinct days on which one substance was
// referenced.
type SubstanceUsage struct {
	MetaID string `json:"metaId"`
	Name   string `json:"name"`
	Days   int    `json:"days"`
}

// SubstanceReport holds the usage histogram for the substances category.
type SubstanceReport struct {
	Days   []SubstanceDayCount `json:"days"`
	Totals []SubstanceUsage    `json:"totals"`
}

// SubstanceHistogram counts each distinct substance once per day, however
// many same-day entries reference it, so multiple logs of one substance on
// one date never overcount.
func SubstanceHistogram(doc *model.Document) *SubstanceReport {
	perDay := make(map[string]map[string]struct{})
	for _, e := range doc.Trackers.Substances {
		iso := dates.DisplayToISO(e.Date)
		if iso == "" {
			continue
		}
		day, ok := perDay[iso]
		if !ok {
			day = make(map[string]struct{})
			perDay[iso] = day
		}
		for _, id := range e.SubstanceIDs {
			day[id] = struct{}{}
		}
	}

	days := make([]SubstanceDayCount, 0, len(perDay))
	daysPerSubstance := make(map[string]int)
	for iso, used := range perDay {
		days = append(days, SubstanceDayCount{Date: iso, Count: len(used)})
		for id := range used {
			daysPerSubstance[id]++
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	totals := make([]SubstanceUsage, 0, len(daysPerSubstance))
	for id, n := range daysPerSubstance {
		totals = append(totals, SubstanceUsage{
			MetaID: id,
			Name:   doc.Meta.MetaName(model.MetaSubstances, id),
			Days:   n,
		})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Days != totals[j].Days {
			return totals[i].Days > totals[j].Days
		}
		return totals[i].Name < totals[j].Name
	})

	return &SubstanceReport{Days: days, Totals: totals}
}
