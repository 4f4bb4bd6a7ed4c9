package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/hamidzr/recents/core"
	"github.com/hamidzr/recents/internal/config"
	"github.com/hamidzr/recents/internal/logger"
	"github.com/hamidzr/recents/model"
	"github.com/hamidzr/recents/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readQueries collects candidate queries from stdin when input is piped.
func readQueries() []string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	var queries []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		queries = append(queries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logrus.Error("error reading standard input:", err)
		os.Exit(1)
	}
	return queries
}

func InitCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "recents",
		Short: "recents records and recalls recent search queries for menu frontends",
		RunE: func(cmd *cobra.Command, args []string) error {
			// check if user wants to initialize config
			initConfig, _ := cmd.Flags().GetBool("init-config")
			if initConfig {
				listID, _ := cmd.Flags().GetString("list-id")
				configPath, err := config.InitConfigFile(listID)
				if err != nil {
					return fmt.Errorf("failed to initialize config: %w", err)
				}
				fmt.Printf("Config file created at: %s\n", configPath)
				return nil
			}

			cfg, err := config.InitConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			logger.SetupLogger(cfg.Verbose)

			return run(cfg)
		},
	}

	config.BindFlags(rootCmd)
	rootCmd.AddCommand(listCmd(), clearCmd())

	return rootCmd
}

func newRecents(cfg *config.Config) (*core.Recents, error) {
	dir := cfg.CacheDir
	if dir == "" {
		dir = store.CacheDir()
	}
	kv, err := store.NewFileStore(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	return core.NewRecents(store.NewHistory(kv), cfg.ListID), nil
}

// run records piped queries, then prints the resulting history. Each line is
// treated as a typing burst: recorded debounced, except the final line which
// commits immediately the way an accepted search does.
func run(cfg *config.Config) error {
	recents, err := newRecents(cfg)
	if err != nil {
		return err
	}

	queries := readQueries()
	for i, query := range queries {
		accepted := i == len(queries)-1
		recents.Append(query, accepted || cfg.Immediate)
	}
	// commit pending debounced writes before reading the list back
	recents.Close()

	entries := core.FilterEntries(loadEntries(cfg), cfg.Query)
	printEntries(entries)
	return nil
}

func loadEntries(cfg *config.Config) []model.RecentEntry {
	dir := cfg.CacheDir
	if dir == "" {
		dir = store.CacheDir()
	}
	kv, err := store.NewFileStore(dir)
	if err != nil {
		return nil
	}
	return store.NewHistory(kv).Load(cfg.ListID)
}

func printEntries(entries []model.RecentEntry) {
	for _, entry := range entries {
		fmt.Printf("%s\t%s\n", entry.Timestamp.Format("2006-01-02 15:04"), entry.Text)
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the recent-search history for the list ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			logger.SetupLogger(cfg.Verbose)

			printEntries(core.FilterEntries(loadEntries(cfg), cfg.Query))
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Wipe the recent-search history for the list ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			logger.SetupLogger(cfg.Verbose)

			recents, err := newRecents(cfg)
			if err != nil {
				return err
			}
			defer recents.Close()

			recents.ClearAll(nil)
			return nil
		},
	}
}
