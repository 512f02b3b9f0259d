package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wegbereiter/internal/app"
)

// runApp resolves configuration, opens the history store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.log.Sync() //nolint:errcheck

	opts := app.Options{
		Catalog: e.catalog,
		Logger:  e.log,
	}

	if e.cfg.History {
		st, err := e.openStore()
		if err != nil {
			// Play works without history.
			e.log.Warn("history unavailable", zap.Error(err))
			fmt.Fprintln(os.Stderr, "Verlauf nicht verfügbar:", err)
		} else {
			defer st.Close()
			opts.EventRepo = st.EventRepo()
		}
	}

	e.log.Info("starting", zap.Bool("history", opts.EventRepo != nil))
	return app.Run(opts)
}
