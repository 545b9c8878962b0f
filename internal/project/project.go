package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/PlanCut/internal/model"
)

// SaveProject writes a project (generation request plus optional result) to
// the given path as JSON.
func SaveProject(path string, p model.Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// LoadProject reads a project from the given path. An embedded plan, if
// present, goes through the same version check as a standalone plan file.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Plan != nil {
		if p.Plan.Version == "" {
			return model.Project{}, fmt.Errorf("%w: embedded plan has no version field", ErrVersionMismatch)
		}
		if p.Plan.Version != model.PlanVersion {
			return model.Project{}, fmt.Errorf("%w: embedded plan version %q, supported %q",
				ErrVersionMismatch, p.Plan.Version, model.PlanVersion)
		}
		normalizePlan(p.Plan)
	}
	return p, nil
}
