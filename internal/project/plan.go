// Package project persists PlanCut data as JSON: generated floor plans in
// the interchange format, projects, application configuration, room type
// tables, the opening/footprint library and plan templates.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/PlanCut/internal/model"
)

// ErrVersionMismatch marks a plan document whose version field is missing or
// not supported. Callers test for it with errors.Is.
var ErrVersionMismatch = errors.New("unsupported plan version")

// EncodePlan serializes a floor plan to the interchange JSON format. The
// output is stable: encoding the same plan twice yields identical bytes.
func EncodePlan(plan model.FloorPlan) ([]byte, error) {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}
	return data, nil
}

// DecodePlan parses a floor plan from interchange JSON. A missing or
// unrecognized version field is an error and no partial plan is returned.
func DecodePlan(data []byte) (model.FloorPlan, error) {
	var plan model.FloorPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return model.FloorPlan{}, fmt.Errorf("failed to parse plan: %w", err)
	}
	if plan.Version == "" {
		return model.FloorPlan{}, fmt.Errorf("%w: missing version field", ErrVersionMismatch)
	}
	if plan.Version != model.PlanVersion {
		return model.FloorPlan{}, fmt.Errorf("%w: got %q, supported %q", ErrVersionMismatch, plan.Version, model.PlanVersion)
	}
	normalizePlan(&plan)
	return plan, nil
}

// normalizePlan replaces nil slices with empty ones so a decoded plan
// compares equal to the plan that produced it.
func normalizePlan(plan *model.FloorPlan) {
	if plan.Rooms == nil {
		plan.Rooms = []model.Room{}
	}
	if plan.Connections == nil {
		plan.Connections = []model.Connection{}
	}
	for i := range plan.Rooms {
		if plan.Rooms[i].Doors == nil {
			plan.Rooms[i].Doors = []model.Door{}
		}
		if plan.Rooms[i].Windows == nil {
			plan.Rooms[i].Windows = []model.Window{}
		}
	}
}

// SavePlan writes a plan to the given path, creating parent directories as
// needed.
func SavePlan(path string, plan model.FloorPlan) error {
	data, err := EncodePlan(plan)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

// LoadPlan reads a plan from the given path.
func LoadPlan(path string) (model.FloorPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FloorPlan{}, fmt.Errorf("failed to read plan file: %w", err)
	}
	return DecodePlan(data)
}
