package commands

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/peftcheck/peftcheck/pkg/checker"
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [folder]",
		Short: "Re-check submission files whenever they change",
		Long: `Watch a submission folder and re-run the format checks whenever one of
the submission files is created, written, renamed, or removed. Useful
while editing the files: the report refreshes on every save.

Runs until interrupted.`,
		Example: `  # Watch the current directory
  peftcheck watch

  # Watch a specific folder
  peftcheck watch ./submission`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return watchDir(cmd, dir)
		},
	}

	return cmd
}

func watchDir(cmd *cobra.Command, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	logger := log.With().Str("component", "watch").Str("dir", dir).Logger()
	logger.Info().Msg("Watching submission folder")

	// Initial check before the first change arrives.
	if err := renderReport(checker.CheckDir(dir)); err != nil {
		return err
	}

	// Debounce re-checks: editors often emit several events per save.
	var recheckTimer *time.Timer
	recheckDelay := 500 * time.Millisecond

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Stopped watching")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSubmissionFile(event.Name) {
				continue
			}

			logger.Debug().
				Str("file", event.Name).
				Str("op", event.Op.String()).
				Msg("Submission file changed")

			if recheckTimer != nil {
				recheckTimer.Stop()
			}
			recheckTimer = time.AfterFunc(recheckDelay, func() {
				if err := renderReport(checker.CheckDir(dir)); err != nil {
					logger.Error().Err(err).Msg("Failed to render report")
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("Watcher error")
		}
	}
}

// isSubmissionFile reports whether a changed path is one of the files the
// checker looks at.
func isSubmissionFile(path string) bool {
	base := filepath.Base(path)
	if base == checker.DataFileName {
		return true
	}
	for _, cand := range checker.ConfigFileCandidates {
		if base == cand {
			return true
		}
	}
	return false
}
