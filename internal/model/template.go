package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanTemplate represents a reusable generation recipe that captures the
// footprint, seed, settings and room type table but not the generated plan.
type PlanTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	Width       float64        `json:"width"`  // m
	Height      float64        `json:"height"` // m
	RoomCount   int            `json:"room_count"`
	Seed        int64          `json:"seed"`
	Settings    PlanSettings   `json:"settings"`
	RoomTypes   []RoomTypeSpec `json:"room_types,omitempty"`
}

// NewPlanTemplate creates a new template from the given project.
// It copies the generation inputs but intentionally excludes the result.
func NewPlanTemplate(name, description string, p Project) PlanTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return PlanTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Width:       p.Width,
		Height:      p.Height,
		RoomCount:   p.RoomCount,
		Seed:        p.Seed,
		Settings:    p.Settings,
		RoomTypes:   copyRoomTypes(p.RoomTypes),
	}
}

// ToProject creates a new Project from this template. Regenerating from the
// template's seed reproduces the original plan exactly.
func (t PlanTemplate) ToProject(projectName string) Project {
	return Project{
		Name:      projectName,
		Width:     t.Width,
		Height:    t.Height,
		RoomCount: t.RoomCount,
		Seed:      t.Seed,
		Settings:  t.Settings,
		RoomTypes: copyRoomTypes(t.RoomTypes),
	}
}

// TemplateStore holds a collection of plan templates.
type TemplateStore struct {
	Templates []PlanTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []PlanTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t PlanTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *PlanTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for selection lists.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *PlanTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// copyRoomTypes creates a copy of a room type table.
func copyRoomTypes(types []RoomTypeSpec) []RoomTypeSpec {
	if types == nil {
		return nil
	}
	cp := make([]RoomTypeSpec, len(types))
	copy(cp, types)
	return cp
}
