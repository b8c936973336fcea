package service_test

import (
	"daylog/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

// testDoc seeds a document with the meta items the scenario tests
// reference.
func testDoc() *model.Document {
	doc := model.NewDocument()
	doc.Meta.Workouts = []model.MetaItem{
		{ID: "run", Name: "Running"},
		{ID: "swim", Name: "Swimming"},
		{ID: "yoga", Name: "Yoga"},
	}
	doc.Meta.Entertainment = []model.MetaItem{
		{ID: "tv", Name: "Television"},
		{ID: "games", Name: "Video Games"},
	}
	doc.Meta.Children = []model.MetaItem{{ID: "kid1", Name: "Sam"}}
	doc.Meta.Subjects = []model.MetaItem{{ID: "math", Name: "Math"}}
	doc.Meta.Chores = []model.MetaItem{
		{ID: "dishes", Name: "Dishes"},
		{ID: "laundry", Name: "Laundry"},
	}
	doc.Meta.Substances = []model.MetaItem{
		{ID: "caffeine", Name: "Caffeine"},
		{ID: "alcohol", Name: "Alcohol"},
	}
	return doc
}
