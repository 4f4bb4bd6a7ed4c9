package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hamidzr/recents/constant"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// flagsByKey maps config keys to the CLI flags that override them.
var flagsByKey = map[string]string{
	"list_id":   "list-id",
	"cache_dir": "cache-dir",
	"query":     "query",
	"immediate": "immediate",
	"verbose":   "verbose",
}

// getConfigPaths returns the config directory paths in priority order
// prefers ~/.config over macos application support dir
func getConfigPaths(listID string) []string {
	var paths []string

	// when a list ID is provided, prioritize namespaced configs
	if listID != "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(homeDir, ".config", constant.ProjectName, listID))
		}
		if configDir, err := os.UserConfigDir(); err == nil {
			paths = append(paths, filepath.Join(configDir, constant.ProjectName, listID))
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constant.ProjectName))
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constant.ProjectName))
	}
	paths = append(paths, ".")

	return paths
}

// getPreferredConfigDir returns the preferred config directory for writing
func getPreferredConfigDir(listID string) (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil {
		if listID != "" {
			return filepath.Join(homeDir, ".config", constant.ProjectName, listID), nil
		}
		return filepath.Join(homeDir, ".config", constant.ProjectName), nil
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		if listID != "" {
			return filepath.Join(userConfigDir, constant.ProjectName, listID), nil
		}
		return filepath.Join(userConfigDir, constant.ProjectName), nil
	}

	return "", fmt.Errorf("unable to determine config directory")
}

// InitConfig initializes Viper configuration with proper priority:
// 1. CLI flags (highest priority)
// 2. Environment variables
// 3. Config file (lowest priority)
func InitConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// list ID from flags decides the config namespace
	listID, _ := cmd.Flags().GetString("list-id")

	for _, path := range getConfigPaths(listID) {
		v.AddConfigPath(path)
	}

	SetViperEnvSettings(v)
	SetViperDefaults(v)
	registerConfigKeyAliases(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// config file not found is ok, we'll use defaults + env vars + flags
	}

	if err := validateConfigFileKeys(v.ConfigFileUsed()); err != nil {
		return nil, err
	}

	// bind CLI flags to viper (highest priority)
	for key, flag := range flagsByKey {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// InitConfigFile generates and saves a default config file to the appropriate location
func InitConfigFile(listID string) (string, error) {
	configDir, err := getPreferredConfigDir(listID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	defaults := DefaultConfig()
	defaults.ListID = listID

	yamlData, err := yaml.Marshal(defaults)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	header := `# recents configuration file
# Generated automatically - customize as needed
#
# cache_dir: where history files live; empty means ~/.cache/recents
# immediate: record piped queries without debouncing
#

`

	finalContent := header + string(yamlData)

	if err := os.WriteFile(configPath, []byte(finalContent), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return configPath, nil
}
