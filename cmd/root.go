package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/misterclayt0n/barbell/internal/config"
	"github.com/misterclayt0n/barbell/internal/logging"
	"github.com/misterclayt0n/barbell/internal/storage"
	"github.com/misterclayt0n/barbell/internal/tracker"
	"github.com/misterclayt0n/barbell/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "barbell",
	Short:        "Training log built from workout text pasted out of a spreadsheet",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}
		cfg = c

		logging.Setup(logging.LoggerSetupParams{
			LogLevel:      cfg.Log.Level,
			LogFileName:   cfg.Log.File,
			LogToStdout:   cfg.Log.ToStdout,
			LogFormatJSON: cfg.Log.JSON,
		})
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// app is an open database with the tracker loaded on top of it.
type app struct {
	st *storage.Storage
	tr *tracker.Tracker
}

// openApp opens the configured database, loads the program and picks up an
// undo left behind by the previous command.
func openApp(ctx context.Context) (*app, error) {
	st, err := storage.NewStorage(cfg.DB.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("Failed to open database: %w", err)
	}

	tr := tracker.New(ctx, st,
		tracker.WithLogger(logrus.WithField("db", st.Driver())),
		tracker.WithUndoWindow(cfg.Tracker.UndoWindow.Duration),
		tracker.WithDefaultBaseline(cfg.Consistency.DefaultBaseline),
	)

	if utils.UndoStateExists() {
		entry, err := utils.LoadUndoState()
		if err != nil {
			logrus.WithError(err).Warn("Ignoring unreadable undo state")
		} else {
			tr.RestoreUndo(entry)
		}
	}

	return &app{st: st, tr: tr}, nil
}

// Close hands the pending undo to the next command and closes the database.
func (a *app) Close() {
	if entry := a.tr.PendingUndo(); entry != nil {
		if err := utils.SaveUndoState(entry); err != nil {
			logrus.WithError(err).Warn("Failed to save undo state")
		}
	} else if err := utils.ClearUndoState(); err != nil {
		logrus.WithError(err).Warn("Failed to clear undo state")
	}

	if err := a.st.Close(); err != nil {
		logrus.WithError(err).Warn("Failed to close database")
	}
}

// parseIndex turns a 1-based command line index into a zero-based one.
func parseIndex(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("Invalid %s index %q (should be 1-based)", what, arg)
	}
	return n - 1, nil
}

// weekArg maps the 1-based --week flag to a tracker week, 0 meaning current.
func weekArg(week int) int {
	if week <= 0 {
		return -1
	}
	return week - 1
}

// dayArg maps the 1-based --day flag to a zero-based day.
func dayArg(day int) (int, error) {
	if day < 1 {
		return 0, fmt.Errorf("Invalid day %d (should be 1-based)", day)
	}
	return day - 1, nil
}
