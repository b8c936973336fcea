package service_test

import (
	"errors"
	"testing"

	"daylog/internal/model"
	"daylog/internal/service"
)

func TestAddMetaItemRejectsDuplicateNames(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	doc, id, err := service.AddMetaItem(doc, model.MetaChores, "  Mow Lawn  ")
	if err != nil {
		t.Fatalf("add meta item: %v", err)
	}
	items := doc.Meta.Chores
	if items[len(items)-1].Name != "Mow Lawn" || items[len(items)-1].ID != id {
		t.Fatalf("item not appended trimmed: %+v", items)
	}

	if _, _, err := service.AddMetaItem(doc, model.MetaChores, "mow lawn"); err == nil {
		t.Errorf("case-insensitive duplicate name must be rejected")
	}
	if _, _, err := service.AddMetaItem(doc, model.MetaChores, "   "); err == nil {
		t.Errorf("blank name must be rejected")
	}
	if _, _, err := service.AddMetaItem(doc, model.MetaList("pets"), "Rex"); err == nil {
		t.Errorf("unknown list must be rejected")
	}
}

func TestRenameMetaItem(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	out, err := service.RenameMetaItem(doc, model.MetaChores, "dishes", "Wash Dishes")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if out.Meta.Chores[0].Name != "Wash Dishes" {
		t.Errorf("rename not applied: %+v", out.Meta.Chores)
	}
	if doc.Meta.Chores[0].Name != "Dishes" {
		t.Errorf("input document was mutated")
	}

	same, err := service.RenameMetaItem(out, model.MetaChores, "dishes", "Wash Dishes")
	if err != nil {
		t.Fatalf("no-op rename: %v", err)
	}
	if same != out {
		t.Errorf("renaming to the current name must return the document unchanged")
	}

	if _, err := service.RenameMetaItem(out, model.MetaChores, "dishes", "laundry"); err == nil {
		t.Errorf("rename onto another item's name must be rejected")
	}
	if _, err := service.RenameMetaItem(out, model.MetaChores, "missing", "X"); err == nil {
		t.Errorf("rename of unknown id must be rejected")
	}
}

func TestRemoveMetaItemGatedByUsage(t *testing.T) {
	t.Parallel()
	doc := testDoc()

	doc, entryID, err := service.AddChores(doc, service.ChoreInput{
		Date: "01/02/2026", ChoreIDs: []string{"dishes"},
	})
	if err != nil {
		t.Fatalf("add chore entry: %v", err)
	}

	_, err = service.RemoveMetaItem(doc, model.MetaChores, "dishes")
	if !errors.Is(err, service.ErrMetaInUse) {
		t.Fatalf("removal of referenced item: err = %v, want ErrMetaInUse", err)
	}

	doc, found := service.RemoveEntry(doc, model.CategoryChores, entryID)
	if !found {
		t.Fatalf("remove chore entry")
	}
	doc, err = service.RemoveMetaItem(doc, model.MetaChores, "dishes")
	if err != nil {
		t.Fatalf("removal after last reference gone: %v", err)
	}
	if doc.Meta.HasMetaItem(model.MetaChores, "dishes") {
		t.Errorf("item still present after removal")
	}
}

func TestUsageCountPerList(t *testing.T) {
	t.Parallel()
	doc := testDoc()
	var err error

	if doc, _, err = service.AddWorkout(doc, service.ActivityInput{
		Date:       "01/02/2026",
		Activities: []model.Activity{{MetaID: "run", Minutes: 30}, {MetaID: "run", Minutes: 15}},
	}); err != nil {
		t.Fatalf("add workout: %v", err)
	}
	if doc, _, err = service.AddHomework(doc, service.HomeworkInput{
		Date: "01/02/2026", ChildID: "kid1", SubjectID: "math", Minutes: 20,
	}); err != nil {
		t.Fatalf("add homework: %v", err)
	}
	if doc, _, err = service.AddSubstances(doc, service.SubstanceInput{
		Date: "01/02/2026", SubstanceIDs: []string{"caffeine"},
	}); err != nil {
		t.Fatalf("add substances: %v", err)
	}

	// An entry referencing one item twice counts once.
	if n := service.UsageCount(doc, model.MetaWorkouts, "run"); n != 1 {
		t.Errorf("workout usage = %d, want 1", n)
	}
	if n := service.UsageCount(doc, model.MetaChildren, "kid1"); n != 1 {
		t.Errorf("child usage = %d, want 1", n)
	}
	if n := service.UsageCount(doc, model.MetaSubjects, "math"); n != 1 {
		t.Errorf("subject usage = %d, want 1", n)
	}
	if n := service.UsageCount(doc, model.MetaSubstances, "caffeine"); n != 1 {
		t.Errorf("substance usage = %d, want 1", n)
	}
	if n := service.UsageCount(doc, model.MetaSubstances, "alcohol"); n != 0 {
		t.Errorf("unreferenced substance usage = %d, want 0", n)
	}
}
