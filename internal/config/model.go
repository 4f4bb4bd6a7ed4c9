package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// ListID namespaces the history so independent frontends keep separate
	// recent-search lists.
	ListID   string `mapstructure:"list_id" yaml:"list_id"`
	CacheDir string `mapstructure:"cache_dir" yaml:"cache_dir"`
	// Query filters the printed history.
	Query string `mapstructure:"query" yaml:"query"`
	// Immediate bypasses debouncing when recording piped queries.
	Immediate bool `mapstructure:"immediate" yaml:"immediate"`
	Verbose   bool `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		ListID:    "default",
		CacheDir:  "", // resolved to ~/.cache/recents when empty
		Query:     "",
		Immediate: false,
		Verbose:   false,
	}
}

// BindFlags binds CLI flags to the cobra command
func BindFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()

	cmd.PersistentFlags().StringP("list-id", "l", defaults.ListID, "History list ID")
	cmd.PersistentFlags().String("cache-dir", defaults.CacheDir, "Directory for persisted history files")
	cmd.PersistentFlags().StringP("query", "q", defaults.Query, "Fuzzy filter applied when printing the history")
	cmd.PersistentFlags().Bool("immediate", defaults.Immediate, "Record queries without debouncing")
	cmd.PersistentFlags().BoolP("verbose", "v", defaults.Verbose, "Log swallowed store errors")
	cmd.PersistentFlags().Bool("init-config", false, "Generate and save default config file")
}

// SetViperDefaults sets default values in viper configuration
func SetViperDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("list_id", defaults.ListID)
	v.SetDefault("cache_dir", defaults.CacheDir)
	v.SetDefault("query", defaults.Query)
	v.SetDefault("immediate", defaults.Immediate)
	v.SetDefault("verbose", defaults.Verbose)
}

// SetViperEnvSettings configures environment variable handling
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix("RECENTS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}
