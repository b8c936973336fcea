package service

import (
	"daylog/internal/model"
)

// UsageCount reports how many tracker entries reference a meta item
// through the field appropriate to its list. It is a plain scan recomputed
// on demand; the document is small enough that caching would not pay.
func UsageCount(doc *model.Document, list model.MetaList, id string) int {
	count := 0
	switch list {
	case model.MetaWorkouts:
		count = countActivityRefs(doc.Trackers.Workouts, id)
	case model.MetaEntertainment:
		count = countActivityRefs(doc.Trackers.Entertainment, id)
	case model.MetaSubjects:
		for _, e := range doc.Trackers.Homework {
			if e.SubjectID == id {
				count++
			}
		}
	case model.MetaChildren:
		for _, e := range doc.Trackers.Homework {
			if e.ChildID == id {
				count++
			}
		}
	case model.MetaChores:
		for _, e := range doc.Trackers.Chores {
			if containsID(e.ChoreIDs, id) {
				count++
			}
		}
	case model.MetaSubstances:
		for _, e := range doc.Trackers.Substances {
			if containsID(e.SubstanceIDs, id) {
				count++
			}
		}
	}
	return count
}

func countActivityRefs(entries []model.ActivityEntry, id string) int {
	count := 0
	for _, e := range entries {
		for _, a := range e.Activities {
			if a.MetaID == id {
				count++
				break
			}
		}
	}
	return count
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
