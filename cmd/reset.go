package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete custom PAO data",
	Long:  "Delete custom PAO data. With --all the account and onboarding state are cleared too, so the next start begins fresh.",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		ctx := ctxOf(cmd)

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		n := e.custom.Count()
		if err := e.custom.Clear(ctx); err != nil {
			return err
		}
		if all {
			if err := e.store.ClearUser(ctx); err != nil {
				return fmt.Errorf("clear user: %w", err)
			}
			if err := e.store.SetOnboardingDone(ctx, false); err != nil {
				return fmt.Errorf("reset onboarding: %w", err)
			}
			if err := e.store.SetWelcomeSeen(ctx, false); err != nil {
				return fmt.Errorf("reset welcome: %w", err)
			}
		}
		e.log.Info("reset", zap.Int("items", n), zap.Bool("all", all))

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d custom items.\n", n)
		if all {
			fmt.Fprintln(cmd.OutOrStdout(), "Account and onboarding state cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also clear the account, onboarding and welcome flags")
}
