package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/PlanCut/internal/model"
)

// DefaultLibraryPath returns the default file path for the library file.
// This is located at ~/.plancut/library.json.
func DefaultLibraryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".plancut", "library.json"), nil
}

// SaveLibrary writes the library to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveLibrary(path string, lib model.Library) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLibrary reads the library from the specified JSON file.
// If the file does not exist, it returns the default library and saves it.
func LoadLibrary(path string) (model.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lib := model.DefaultLibrary()
			if saveErr := SaveLibrary(path, lib); saveErr != nil {
				return lib, saveErr
			}
			return lib, nil
		}
		return model.Library{}, err
	}
	var lib model.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return model.Library{}, err
	}
	return lib, nil
}

// LoadOrCreateLibrary loads the library from the default path.
// If the file does not exist, it creates one with default entries.
func LoadOrCreateLibrary() (model.Library, string, error) {
	path, err := DefaultLibraryPath()
	if err != nil {
		return model.DefaultLibrary(), "", err
	}
	lib, err := LoadLibrary(path)
	return lib, path, err
}

// ExportLibrary exports the library to a user-specified JSON file.
func ExportLibrary(path string, lib model.Library) error {
	return SaveLibrary(path, lib)
}

// ImportLibrary imports a library from a user-specified JSON file,
// merging it with the existing library. Duplicate IDs are skipped.
func ImportLibrary(path string, existing model.Library) (model.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Library
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	// Build sets of existing IDs for deduplication
	openingIDs := make(map[string]bool, len(existing.Openings))
	for _, op := range existing.Openings {
		openingIDs[op.ID] = true
	}
	footprintIDs := make(map[string]bool, len(existing.Footprints))
	for _, fp := range existing.Footprints {
		footprintIDs[fp.ID] = true
	}

	// Merge opening profiles
	for _, op := range imported.Openings {
		if !openingIDs[op.ID] {
			existing.Openings = append(existing.Openings, op)
			openingIDs[op.ID] = true
		}
	}

	// Merge footprint presets
	for _, fp := range imported.Footprints {
		if !footprintIDs[fp.ID] {
			existing.Footprints = append(existing.Footprints, fp)
			footprintIDs[fp.ID] = true
		}
	}

	return existing, nil
}
