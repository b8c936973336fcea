package service

import (
	"fmt"
	"sort"

	"daylog/internal/model"
)

// CompositionSlice is one meta item's share of total recorded minutes.
type CompositionSlice struct {
	MetaID  string  `json:"metaId"`
	Name    string  `json:"name"`
	Minutes float64 `json:"minutes"`
	Percent float64 `json:"percent"`
}

// Composition sums minutes per referenced meta item across a
// multi-select category's entries and computes each item's percentage of
// the grand total. Slices are ordered by descending total with ties broken
// by name, so the result is deterministic.
func Composition(doc *model.Document, category model.Category) ([]CompositionSlice, error) {
	var entries []model.ActivityEntry
	var list model.MetaList
	switch category {
	case model.CategoryWorkouts:
		entries, list = doc.Trackers.Workouts, model.MetaWorkouts
	case model.CategoryEntertainment:
		entries, list = doc.Trackers.Entertainment, model.MetaEntertainment
	default:
		return nil, fmt.Errorf("category %q has no composition chart", category)
	}

	minutes := make(map[string]float64)
	for _, e := range entries {
		for _, a := range e.Activities {
			minutes[a.MetaID] += a.Minutes
		}
	}
	grand := 0.0
	for _, m := range minutes {
		grand += m
	}
	if grand == 0 {
		return []CompositionSlice{}, nil
	}

	out := make([]CompositionSlice, 0, len(minutes))
	for id, m := range minutes {
		out = append(out, CompositionSlice{
			MetaID:  id,
			Name:    doc.Meta.MetaName(list, id),
			Minutes: m,
			Percent: m / grand * 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
