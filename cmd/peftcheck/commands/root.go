package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	settingsPath string
	verbose      bool
	jsonOutput   bool

	// settings loaded from the optional settings file
	settings = defaultSettings()
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "peftcheck",
		Short: "Format checker for parameter-efficient fine-tuning submissions",
		Long: `peftcheck validates the format of coursework submission files for the
parameter-efficient fine-tuning exercise.

It checks two files in a submission folder:
  - peft config.txt / peft_config.txt: seven non-negative integer variables,
    with r, P, and d_a required to be even
  - peft.txt: vector b (length 4) and matrices A (2x1), B (1x4), Wprime (2x4)

Only the format is checked: presence, types, shapes, and parity. The
numeric values themselves are never graded by this tool.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if settingsPath != "" {
				loaded, err := loadSettings(settingsPath)
				if err != nil {
					return fmt.Errorf("failed to load settings: %w", err)
				}
				settings = loaded
			}
			applyLogSettings()
			return nil
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "", "settings file path (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Add subcommands
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newHistoryCommand())

	return rootCmd
}

// applyLogSettings combines the settings file log level with the verbose
// flag; the flag wins.
func applyLogSettings() {
	switch settings.Log.Level {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// useJSON reports whether output should be rendered as JSON.
func useJSON() bool {
	return jsonOutput || settings.Output == "json"
}
