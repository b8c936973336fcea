package service

import (
	"fmt"
	"time"

	"daylog/internal/dates"
	"daylog/internal/model"
)

// LastUse reports elapsed calendar time since a meta item was last
// referenced. OK is false when the item has never been used.
type LastUse struct {
	MetaID   string `json:"metaId"`
	Name     string `json:"name"`
	OK       bool   `json:"ok"`
	LastDate string `json:"lastDate,omitempty"`
	Years    int    `json:"years"`
	Days     int    `json:"days"`
}

// TimeSinceLastUse computes, for every item in a meta list, the elapsed
// (years, days) from its most recent reference to asOf (a display date,
// normally today). Whole years are counted by anniversary comparison, then
// remaining days from the most recent anniversary.
func TimeSinceLastUse(doc *model.Document, list model.MetaList, asOf string) ([]LastUse, error) {
	items := doc.Meta.MetaItems(list)
	if items == nil {
		return nil, fmt.Errorf("unknown meta list %q", list)
	}
	now, err := time.Parse(dates.ISOLayout, dates.DisplayToISO(asOf))
	if err != nil {
		return nil, fmt.Errorf("invalid as-of date %q (expected MM/DD/YYYY)", asOf)
	}

	out := make([]LastUse, 0, len(items))
	for _, item := range items {
		use := LastUse{MetaID: item.ID, Name: item.Name}
		if lastISO := lastUseISO(doc, list, item.ID); lastISO != "" {
			if last, err := time.Parse(dates.ISOLayout, lastISO); err == nil && !last.After(now) {
				use.OK = true
				use.LastDate = lastISO
				use.Years, use.Days = elapsedCalendar(last, now)
			}
		}
		out = append(out, use)
	}
	return out, nil
}

// lastUseISO finds the most recent referencing date (by ISO comparison)
// for one meta item, or "" when never referenced.
func lastUseISO(doc *model.Document, list model.MetaList, id string) string {
	latest := ""
	consider := func(date string, referenced bool) {
		if !referenced {
			return
		}
		if iso := dates.DisplayToISO(date); iso > latest {
			latest = iso
		}
	}
	switch list {
	case model.MetaWorkouts, model.MetaEntertainment:
		entries := doc.Trackers.Workouts
		if list == model.MetaEntertainment {
			entries = doc.Trackers.Entertainment
		}
		for _, e := range entries {
			hit := false
			for _, a := range e.Activities {
				if a.MetaID == id {
					hit = true
					break
				}
			}
			consider(e.Date, hit)
		}
	case model.MetaSubjects:
		for _, e := range doc.Trackers.Homework {
			consider(e.Date, e.SubjectID == id)
		}
	case model.MetaChildren:
		for _, e := range doc.Trackers.Homework {
			consider(e.Date, e.ChildID == id)
		}
	case model.MetaChores:
		for _, e := range doc.Trackers.Chores {
			consider(e.Date, containsID(e.ChoreIDs, id))
		}
	case model.MetaSubstances:
		for _, e := range doc.Trackers.Substances {
			consider(e.Date, containsID(e.SubstanceIDs, id))
		}
	}
	return latest
}

// elapsedCalendar counts whole years by anniversary-date comparison, then
// remaining days from the most recent anniversary. This is calendar
// subtraction, not day-count division, so leap years come out right.
func elapsedCalendar(from, to time.Time) (years, days int) {
	years = to.Year() - from.Year()
	anniversary := from.AddDate(years, 0, 0)
	if anniversary.After(to) {
		years--
		anniversary = from.AddDate(years, 0, 0)
	}
	days = int(to.Sub(anniversary).Hours() / 24)
	return years, days
}
