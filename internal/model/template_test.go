package model

import (
	"testing"
)

func templateProject() Project {
	p := NewProject()
	p.Width = 12.0
	p.Height = 9.0
	p.RoomCount = 5
	p.Seed = 7
	p.Settings.MinRoomArea = 5.0
	p.RoomTypes = []RoomTypeSpec{
		{Type: RoomKitchen, MinArea: 8, MaxArea: 16, Required: true, Priority: 1},
	}
	return p
}

func TestNewPlanTemplate(t *testing.T) {
	tmpl := NewPlanTemplate("Cottage", "Five room cottage", templateProject())

	if tmpl.Name != "Cottage" {
		t.Errorf("expected name 'Cottage', got %q", tmpl.Name)
	}
	if tmpl.Description != "Five room cottage" {
		t.Errorf("expected description 'Five room cottage', got %q", tmpl.Description)
	}
	if tmpl.ID == "" {
		t.Error("expected non-empty ID")
	}
	if tmpl.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if tmpl.Width != 12.0 || tmpl.Height != 9.0 || tmpl.RoomCount != 5 {
		t.Errorf("footprint not captured: %gx%g, %d rooms", tmpl.Width, tmpl.Height, tmpl.RoomCount)
	}
	if tmpl.Seed != 7 {
		t.Errorf("expected seed 7, got %d", tmpl.Seed)
	}
	if len(tmpl.RoomTypes) != 1 {
		t.Errorf("expected 1 room type spec, got %d", len(tmpl.RoomTypes))
	}
}

func TestPlanTemplate_ToProject(t *testing.T) {
	tmpl := NewPlanTemplate("Test", "desc", templateProject())
	proj := tmpl.ToProject("My House")

	if proj.Name != "My House" {
		t.Errorf("expected project name 'My House', got %q", proj.Name)
	}
	if proj.Seed != 7 {
		t.Errorf("expected seed carried over, got %d", proj.Seed)
	}
	if proj.Settings.MinRoomArea != 5.0 {
		t.Errorf("expected settings carried over, got MinRoomArea=%g", proj.Settings.MinRoomArea)
	}
	if proj.Plan != nil {
		t.Error("template should never carry a generated plan")
	}

	// The room type table must be an independent copy.
	proj.RoomTypes[0].MinArea = 999
	if tmpl.RoomTypes[0].MinArea == 999 {
		t.Error("mutating the project table must not affect the template")
	}
}

func TestTemplateStore(t *testing.T) {
	store := NewTemplateStore()
	if len(store.Templates) != 0 {
		t.Fatalf("new store should be empty, got %d", len(store.Templates))
	}

	a := NewPlanTemplate("A", "", templateProject())
	b := NewPlanTemplate("B", "", templateProject())
	store.Add(a)
	store.Add(b)

	if len(store.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(store.Templates))
	}
	if found := store.FindByID(a.ID); found == nil || found.Name != "A" {
		t.Error("FindByID failed for template A")
	}
	if found := store.FindByName("B"); found == nil || found.ID != b.ID {
		t.Error("FindByName failed for template B")
	}

	names := store.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("unexpected names %v", names)
	}

	if !store.Remove(a.ID) {
		t.Error("Remove should report success for existing template")
	}
	if store.Remove("missing") {
		t.Error("Remove should report failure for unknown ID")
	}
	if len(store.Templates) != 1 || store.Templates[0].Name != "B" {
		t.Errorf("unexpected store contents after removal: %v", store.Names())
	}
}
