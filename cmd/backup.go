package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "Write a snapshot of all app data (gzip when the name ends in .gz)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		snap, err := backup.Capture(ctxOf(cmd), e.store, time.Now())
		if err != nil {
			return err
		}
		if err := backup.WriteFile(args[0], snap); err != nil {
			return err
		}
		e.log.Info("backup written", zap.String("path", args[0]), zap.String("id", snap.ID), zap.Int("items", len(snap.Items)))
		fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d custom items to %s\n", len(snap.Items), args[0])
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace all app data with a snapshot written by backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := backup.ReadFile(args[0])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := backup.Restore(ctxOf(cmd), e.store, snap); err != nil {
			return err
		}
		e.log.Info("backup restored", zap.String("path", args[0]), zap.String("id", snap.ID), zap.String("version", snap.Version))
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d custom items from %s (taken %s)\n",
			len(snap.Items), args[0], snap.CreatedAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}
