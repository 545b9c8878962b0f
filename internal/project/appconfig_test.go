package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PlanCut/internal/model"
)

func TestSaveLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	config := model.DefaultAppConfig()
	config.DefaultMaxDepth = 6
	config.DefaultDoorWidth = 0.8
	config.AddRecentPlan("/tmp/a.json")
	config.AddRecentPlan("/tmp/b.json")

	require.NoError(t, SaveAppConfig(path, config))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
	assert.Equal(t, []string{"/tmp/b.json", "/tmp/a.json"}, loaded.RecentPlans)
}

func TestLoadAppConfig_MissingFileReturnsDefaults(t *testing.T) {
	loaded, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), loaded)
}

func TestLoadAppConfig_NilRecentPlansNormalized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default_max_depth": 5}`), 0644))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.NotNil(t, loaded.RecentPlans)
	assert.Equal(t, 5, loaded.DefaultMaxDepth)
}

func TestLoadAppConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{{"), 0644))

	_, err := LoadAppConfig(path)
	require.Error(t, err)
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	assert.True(t, strings.HasSuffix(path, filepath.Join(".plancut", "config.json")))
}
