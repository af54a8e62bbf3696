package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartkids/internal/config"
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smartkids",
		Short: "Trivia quiz for kids",
		Long:  "Smart Kids Quiz: a terminal trivia game with six categories and saved high scores.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, "")
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("store", "", "High score backend: "+strings.Join(config.Backends, ", ")+" (overrides SMARTKIDS_STORE)")
	flags.String("db", "", "Path to SQLite database file (overrides SMARTKIDS_DB)")
	flags.String("data-dir", "", "Directory for data files (overrides SMARTKIDS_DATA_DIR)")
	flags.String("redis-addr", "", "Redis address for the redis store (overrides SMARTKIDS_REDIS_ADDR)")
	flags.String("log-file", "", `Log file path, "-" for stderr (overrides SMARTKIDS_LOG_FILE)`)
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides SMARTKIDS_LOG_LEVEL)")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig reads the environment and applies flags on top. Flags have the
// highest priority, then SMARTKIDS_* variables, then defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	overrides := map[string]*string{
		"store":      &cfg.Store,
		"db":         &cfg.DBPath,
		"data-dir":   &cfg.DataDir,
		"redis-addr": &cfg.RedisAddr,
		"log-file":   &cfg.LogFile,
		"log-level":  &cfg.LogLevel,
	}
	for name, dst := range overrides {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return config.Config{}, fmt.Errorf("read --%s: %w", name, err)
		}
		*dst = v
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
