package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

// Helper function for testing config loading
func loadConfigFromFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// TestConfigLoading tests configuration file loading
func TestConfigLoading(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
list_id: "browser-search"
cache_dir: "/tmp/recents-test"
query: "docs"
immediate: true
verbose: false
`

	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	config, err := loadConfigFromFile(configPath)
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "browser-search", config.ListID)
	assert.Equal(t, "/tmp/recents-test", config.CacheDir)
	assert.Equal(t, "docs", config.Query)
	assert.True(t, config.Immediate)
	assert.False(t, config.Verbose)
}

func TestDefaultConfig(t *testing.T) {
	defaults := DefaultConfig()
	assert.Equal(t, "default", defaults.ListID)
	assert.Empty(t, defaults.CacheDir)
	assert.False(t, defaults.Immediate)
	assert.False(t, defaults.Verbose)
}

func TestValidateConfigFileKeys(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// valid keys pass
	require.NoError(t, os.WriteFile(configPath, []byte("list_id: x\nimmediate: true\n"), 0644))
	assert.NoError(t, validateConfigFileKeys(configPath))

	// camelCase variants pass
	require.NoError(t, os.WriteFile(configPath, []byte("listId: x\ncacheDir: /tmp\n"), 0644))
	assert.NoError(t, validateConfigFileKeys(configPath))

	// unknown keys are rejected
	require.NoError(t, os.WriteFile(configPath, []byte("list_id: x\nbogus: true\n"), 0644))
	assert.Error(t, validateConfigFileKeys(configPath))

	// mixing naming styles for the same key is rejected
	require.NoError(t, os.WriteFile(configPath, []byte("list_id: x\nlistId: y\n"), 0644))
	assert.Error(t, validateConfigFileKeys(configPath))

	// empty path and empty file are fine
	assert.NoError(t, validateConfigFileKeys(""))
	require.NoError(t, os.WriteFile(configPath, []byte(""), 0644))
	assert.NoError(t, validateConfigFileKeys(configPath))
}

func TestKeyStyle(t *testing.T) {
	assert.Equal(t, "snake_case", keyStyle("list_id"))
	assert.Equal(t, "camelCase", keyStyle("listId"))
	assert.Equal(t, "kebab-case", keyStyle("list-id"))
}
