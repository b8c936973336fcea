package service_test

import (
	"strings"
	"testing"

	"daylog/internal/model"
	"daylog/internal/service"
)

func TestAddWeightThenRemove(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	doc2, id, err := service.AddWeight(doc, service.WeightInput{Date: "01/02/2026", WeightLbs: 201.5})
	if err != nil {
		t.Fatalf("add weight: %v", err)
	}
	if id == "" {
		t.Fatalf("add weight returned empty id")
	}
	if len(doc.Trackers.Weight) != 0 {
		t.Errorf("input document was mutated: %d weight entries", len(doc.Trackers.Weight))
	}
	if len(doc2.Trackers.Weight) != 1 || doc2.Trackers.Weight[0].ID != id {
		t.Fatalf("entry not recorded: %+v", doc2.Trackers.Weight)
	}
	if doc2.UpdatedAt == "" {
		t.Errorf("mutated document must be stamped")
	}

	doc3, found := service.RemoveEntry(doc2, model.CategoryWeight, id)
	if !found {
		t.Fatalf("remove did not find entry %q", id)
	}
	if len(doc3.Trackers.Weight) != 0 {
		t.Errorf("entry survived removal: %+v", doc3.Trackers.Weight)
	}

	same, found := service.RemoveEntry(doc3, model.CategoryWeight, "nope")
	if found {
		t.Errorf("remove reported success for unknown id")
	}
	if same != doc3 {
		t.Errorf("failed removal must return the document unchanged")
	}
}

func TestAddEntryValidation(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	if _, _, err := service.AddWeight(doc, service.WeightInput{Date: "2026-01-02", WeightLbs: 200}); err == nil {
		t.Errorf("ISO date must be rejected")
	}
	if _, _, err := service.AddWeight(doc, service.WeightInput{Date: "01/02/2026", WeightLbs: -1}); err == nil {
		t.Errorf("negative weight must be rejected")
	}
	if _, _, err := service.AddMood(doc, service.MoodInput{Date: "01/02/2026", Score: 11}); err == nil {
		t.Errorf("mood above max must be rejected")
	}
	if _, _, err := service.AddSleep(doc, service.SleepInput{Date: "01/02/2026", Hours: 8, BedTime: "25pm"}); err == nil {
		t.Errorf("unparsable bed time must be rejected")
	}
}

func TestEntriesPrependNewestFirst(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	doc, id1, err := service.AddWater(doc, service.WaterInput{Date: "01/01/2026", Ounces: 8})
	if err != nil {
		t.Fatalf("add water 1: %v", err)
	}
	doc, id2, err := service.AddWater(doc, service.WaterInput{Date: "01/02/2026", Ounces: 16})
	if err != nil {
		t.Fatalf("add water 2: %v", err)
	}
	w := doc.Trackers.Water
	if len(w) != 2 || w[0].ID != id2 || w[1].ID != id1 {
		t.Fatalf("entries not newest-first: %+v", w)
	}
}

func TestAddSleepNormalizesClockTimes(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	doc, _, err := service.AddSleep(doc, service.SleepInput{
		Date: "01/02/2026", Hours: 7.5, BedTime: "10:30pm", WakeTime: "6 a.m.",
	})
	if err != nil {
		t.Fatalf("add sleep: %v", err)
	}
	s := doc.Trackers.Sleep[0]
	if s.BedTime != "10:30 PM" || s.WakeTime != "6:00 AM" {
		t.Errorf("clock times not canonical: bed=%q wake=%q", s.BedTime, s.WakeTime)
	}
}

func TestActivityEntriesRequireKnownMetaItems(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	_, _, err := service.AddWorkout(doc, service.ActivityInput{
		Date:       "01/02/2026",
		Activities: []model.Activity{{MetaID: "skydiving", Minutes: 30}},
	})
	if err == nil || !strings.Contains(err.Error(), "skydiving") {
		t.Errorf("unknown workout item must be rejected, got %v", err)
	}

	if _, _, err := service.AddWorkout(doc, service.ActivityInput{Date: "01/02/2026"}); err == nil {
		t.Errorf("empty activity list must be rejected")
	}

	doc, id, err := service.AddWorkout(doc, service.ActivityInput{
		Date:       "01/02/2026",
		Activities: []model.Activity{{MetaID: "run", Minutes: 45}},
	})
	if err != nil {
		t.Fatalf("add workout: %v", err)
	}
	if doc.Trackers.Workouts[0].ID != id {
		t.Errorf("workout not recorded")
	}
}

func TestAddHomeworkValidatesReferences(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	if _, _, err := service.AddHomework(doc, service.HomeworkInput{
		Date: "01/02/2026", ChildID: "stranger", SubjectID: "math", Minutes: 30,
	}); err == nil {
		t.Errorf("unknown child must be rejected")
	}
	if _, _, err := service.AddHomework(doc, service.HomeworkInput{
		Date: "01/02/2026", ChildID: "kid1", SubjectID: "art", Minutes: 30,
	}); err == nil {
		t.Errorf("unknown subject must be rejected")
	}
	doc, _, err := service.AddHomework(doc, service.HomeworkInput{
		Date: "01/02/2026", ChildID: "kid1", SubjectID: "math", Minutes: 30, Note: " reading ",
	})
	if err != nil {
		t.Fatalf("add homework: %v", err)
	}
	if doc.Trackers.Homework[0].Note != "reading" {
		t.Errorf("note not trimmed: %q", doc.Trackers.Homework[0].Note)
	}
}

func TestAddSubstancesDeDupesIDs(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	doc, _, err := service.AddSubstances(doc, service.SubstanceInput{
		Date:         "01/02/2026",
		SubstanceIDs: []string{"caffeine", " caffeine ", "alcohol", ""},
	})
	if err != nil {
		t.Fatalf("add substances: %v", err)
	}
	got := doc.Trackers.Substances[0].SubstanceIDs
	if len(got) != 2 || got[0] != "caffeine" || got[1] != "alcohol" {
		t.Errorf("ids not de-duplicated: %v", got)
	}

	if _, _, err := service.AddSubstances(doc, service.SubstanceInput{
		Date:         "01/02/2026",
		SubstanceIDs: []string{"", "  "},
	}); err == nil {
		t.Errorf("all-blank id list must be rejected")
	}
}

func seedClearDoc(t *testing.T) *model.Document {
	t.Helper()
	doc := testDoc()
	var err error
	for _, in := range []service.WaterInput{
		{Date: "01/01/2026", Ounces: 8},
		{Date: "01/15/2026", Ounces: 8},
		{Date: "02/01/2026", Ounces: 8},
	} {
		if doc, _, err = service.AddWater(doc, in); err != nil {
			t.Fatalf("seed water %s: %v", in.Date, err)
		}
	}
	if doc, _, err = service.AddMood(doc, service.MoodInput{Date: "01/10/2026", Score: 7}); err != nil {
		t.Fatalf("seed mood: %v", err)
	}
	return doc
}

func TestClearEntriesBeforeKeepsCutoffDay(t *testing.T) {
	t.Parallel()
	doc := seedClearDoc(t)

	out, removed := service.ClearEntriesBefore(doc, "01/15/2026")
	if removed != 2 {
		t.Fatalf("removed = %d, want 2 (01/01 water and 01/10 mood)", removed)
	}
	if len(out.Trackers.Water) != 2 {
		t.Errorf("water = %+v, want the 01/15 and 02/01 entries", out.Trackers.Water)
	}
	keptCutoffDay := false
	for _, e := range out.Trackers.Water {
		if e.Date == "01/01/2026" {
			t.Errorf("entry before cutoff survived")
		}
		if e.Date == "01/15/2026" {
			keptCutoffDay = true
		}
	}
	if !keptCutoffDay {
		t.Errorf("cutoff-day entry must be kept")
	}
}

func TestClearEntriesBeforeInvalidCutoffIsNoOp(t *testing.T) {
	t.Parallel()
	doc := seedClearDoc(t)
	out, removed := service.ClearEntriesBefore(doc, "garbage")
	if removed != 0 || out != doc {
		t.Errorf("invalid cutoff must leave the document untouched (removed=%d)", removed)
	}
}

func TestClearAllEntries(t *testing.T) {
	t.Parallel()
	doc := seedClearDoc(t)

	out, removed := service.ClearAllEntries(doc)
	if removed != 4 {
		t.Fatalf("removed = %d, want 4", removed)
	}
	if out.EntryCount() != 0 {
		t.Errorf("entries remain after clear: %d", out.EntryCount())
	}
	if len(out.Meta.Substances) != len(doc.Meta.Substances) {
		t.Errorf("clear must not touch meta lists")
	}

	again, removed := service.ClearAllEntries(out)
	if removed != 0 || again != out {
		t.Errorf("clearing an empty document must be a no-op")
	}
}

func TestSnapshotBeforeComplementsClear(t *testing.T) {
	t.Parallel()
	doc := seedClearDoc(t)

	snapshot := service.SnapshotBefore(doc, "01/15/2026")
	kept, removed := service.ClearEntriesBefore(doc, "01/15/2026")

	if snapshot.EntryCount() != removed {
		t.Errorf("snapshot holds %d entries, clear removed %d", snapshot.EntryCount(), removed)
	}
	if snapshot.EntryCount()+kept.EntryCount() != doc.EntryCount() {
		t.Errorf("snapshot + kept = %d + %d, want %d",
			snapshot.EntryCount(), kept.EntryCount(), doc.EntryCount())
	}
}
