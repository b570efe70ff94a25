package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/peftcheck/peftcheck/pkg/checker"
	"github.com/peftcheck/peftcheck/pkg/history"
)

// errFormatIssues is returned when any checked file has format errors.
// It maps to a non-zero exit code in main.
var errFormatIssues = fmt.Errorf("formatting issues detected")

func newCheckCommand() *cobra.Command {
	var historyDB string

	cmd := &cobra.Command{
		Use:   "check [folder]",
		Short: "Check submission files in a folder",
		Long: `Check the submission files in a folder for format errors.

The folder must contain:
  - peft config.txt or peft_config.txt (first existing one wins)
  - peft.txt

The exit code is non-zero if any file is missing or has format errors.`,
		Example: `  # Check files in the current directory
  peftcheck check

  # Check a specific folder, machine-readable output
  peftcheck check --json ./submission

  # Record the result in a history database
  peftcheck check --history-db checks.db ./submission`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			log.Debug().Str("dir", dir).Msg("Checking submission files")

			rep := checker.CheckDir(dir)
			if err := renderReport(rep); err != nil {
				return err
			}

			if db := historyPath(historyDB); db != "" {
				if err := recordRun(cmd.Context(), db, rep); err != nil {
					log.Error().Err(err).Str("db", db).Msg("Failed to record check run")
				}
			}

			if !rep.OK() {
				return errFormatIssues
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&historyDB, "history-db", "", "record results to a SQLite history database")

	return cmd
}

func renderReport(rep *checker.Report) error {
	if useJSON() {
		return rep.WriteJSON(os.Stdout)
	}
	return rep.WriteText(os.Stdout)
}

// historyPath resolves the history database path from the flag and the
// settings file; the flag wins.
func historyPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return settings.History.Path
}

// recordRun stores a report in the history database.
func recordRun(ctx context.Context, dbPath string, rep *checker.Report) error {
	store, err := history.NewStore(history.Config{Path: dbPath})
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	runID, err := store.RecordReport(ctx, rep)
	if err != nil {
		return err
	}

	log.Debug().Str("run_id", runID).Str("db", dbPath).Msg("Recorded check run")
	return nil
}
