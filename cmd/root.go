package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/config"
	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/logging"
	"github.com/abhisek/paomind/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "paomind",
	Short: "Practice the Person-Action-Object memory system",
	Long: "paomind maps the numbers 00-99 to Person-Action-Object triples and drills you on them\n" +
		"with flashcards, quizzes, sequence challenges and speed training.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PAOMIND_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: config.yaml in ./ or $XDG_CONFIG_HOME/paomind)")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured db_path (which PAOMIND_DB feeds), then the default XDG
// path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// env is what every command needs: settings, a logger, the open store and
// the custom collection loaded from it.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *store.Store
	custom *custom.Store
}

func openEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	log, err := logging.New(cfg.Log, dbPath)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	st, err := store.Open(dbPath, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	items, err := st.LoadCustomItems(ctxOf(cmd))
	if err != nil {
		st.Close()
		_ = log.Sync()
		return nil, fmt.Errorf("load custom items: %w", err)
	}

	log.Info("starting", zap.String("command", cmd.Name()), zap.String("db", dbPath))
	return &env{cfg: cfg, log: log, store: st, custom: custom.NewStore(items, st)}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", zap.Error(err))
	}
	_ = e.log.Sync()
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
