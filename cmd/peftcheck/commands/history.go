package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/peftcheck/peftcheck/pkg/history"
)

func newHistoryCommand() *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded check runs",
		Long: `List check runs recorded with --history-db, most recent first.

Each line shows the run ID, when the check started, the checked folder,
the outcome, and the number of errors.`,
		Example: `  # Show the last 20 runs
  peftcheck history --db checks.db

  # Show more runs, machine-readable
  peftcheck history --db checks.db --limit 100 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := historyPath(dbPath)
			if path == "" {
				return fmt.Errorf("no history database configured (use --db or the settings file)")
			}

			store, err := history.NewStore(history.Config{Path: path})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := store.Init(ctx); err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			if err := store.Migrate(ctx); err != nil {
				return err
			}

			runs, err := store.ListRuns(ctx, limit, 0)
			if err != nil {
				return err
			}

			if useJSON() {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}

			if len(runs) == 0 {
				fmt.Println("No recorded runs.")
				return nil
			}
			for _, run := range runs {
				fmt.Printf("%s  %s  %-40s %-6s errors=%d\n",
					run.ID,
					run.StartedAt.Format("2006-01-02 15:04:05"),
					run.Directory,
					run.Status,
					run.ErrorCount,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "history database path")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")

	return cmd
}
