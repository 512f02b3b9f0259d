package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errResetNotConfirmed = errors.New("reset deletes all results; rerun with --yes to confirm")

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errResetNotConfirmed
		}
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		st, err := e.openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EventRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset history: %w", err)
		}
		e.log.Info("history reset", zap.String("db", e.cfg.DBPath))
		fmt.Fprintln(cmd.OutOrStdout(), "Verlauf gelöscht.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting all results")
}
