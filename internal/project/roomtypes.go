package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/PlanCut/internal/model"
)

// DefaultRoomTypesPath returns the default file path for custom room type
// specs. This is located at ~/.plancut/roomtypes.json.
func DefaultRoomTypesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".plancut", "roomtypes.json"), nil
}

// SaveCustomRoomTypes saves custom room type specs to a JSON file. Only the
// user's overrides are stored; the built-in table never touches disk.
func SaveCustomRoomTypes(path string, specs []model.RoomTypeSpec) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(specs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomRoomTypes loads custom room type specs from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomRoomTypes(path string) ([]model.RoomTypeSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.RoomTypeSpec{}, nil
		}
		return nil, err
	}

	var specs []model.RoomTypeSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// LoadRoomTypeTable loads the custom specs from the given path and overlays
// them onto the built-in table. An empty path yields the built-ins.
func LoadRoomTypeTable(path string) ([]model.RoomTypeSpec, error) {
	if path == "" {
		return model.DefaultRoomTypeTable(), nil
	}
	custom, err := LoadCustomRoomTypes(path)
	if err != nil {
		return nil, err
	}
	return model.MergeRoomTypeTables(model.DefaultRoomTypeTable(), custom), nil
}

// LoadCustomRoomTypesFromDefault loads custom specs from the default path.
func LoadCustomRoomTypesFromDefault() ([]model.RoomTypeSpec, error) {
	path, err := DefaultRoomTypesPath()
	if err != nil {
		return nil, err
	}
	return LoadCustomRoomTypes(path)
}

// SaveCustomRoomTypesToDefault saves custom specs to the default path.
func SaveCustomRoomTypesToDefault(specs []model.RoomTypeSpec) error {
	path, err := DefaultRoomTypesPath()
	if err != nil {
		return err
	}
	return SaveCustomRoomTypes(path, specs)
}

// ExportRoomTypeSpec exports a single room type spec to a JSON file (for sharing).
func ExportRoomTypeSpec(path string, spec model.RoomTypeSpec) error {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportRoomTypeSpec imports a single room type spec from a JSON file.
func ImportRoomTypeSpec(path string) (model.RoomTypeSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RoomTypeSpec{}, err
	}

	var spec model.RoomTypeSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return model.RoomTypeSpec{}, err
	}

	if spec.Type == "" {
		return model.RoomTypeSpec{}, errors.New("imported room type spec has no type name")
	}
	return spec, nil
}
