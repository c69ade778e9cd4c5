package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/aigen"
	"github.com/abhisek/paomind/internal/app"
	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/llm"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/practice"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := ctxOf(cmd)
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	state, err := loadState(ctx, e)
	if err != nil {
		return err
	}

	deps := screen.Deps{
		Table:    pao.Default(),
		Custom:   e.custom,
		Rand:     practice.NewRand(),
		Practice: e.cfg.Practice,
		Copy:     clipboard.WriteAll,
		Log:      e.log,
		Now:      time.Now,
	}

	gen, err := newGenerator(ctx, e)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI generation will be unavailable.")
	}
	deps.Generator = gen

	return app.Run(ctx, app.Options{Deps: deps, State: state, Persist: e.store})
}

// loadState reads the flags and records the flow controller starts from.
// The configured theme applies until one is chosen in the app.
func loadState(ctx context.Context, e *env) (flow.State, error) {
	var st flow.State
	var err error
	if st.OnboardingDone, err = e.store.OnboardingDone(ctx); err != nil {
		return st, fmt.Errorf("read onboarding flag: %w", err)
	}
	if st.WelcomeSeen, err = e.store.WelcomeSeen(ctx); err != nil {
		return st, fmt.Errorf("read welcome flag: %w", err)
	}
	if st.User, err = e.store.User(ctx); err != nil {
		return st, fmt.Errorf("read user: %w", err)
	}
	t, ok, err := e.store.Theme(ctx)
	if err != nil {
		return st, fmt.Errorf("read theme: %w", err)
	}
	if !ok {
		t = store.Theme(e.cfg.Theme)
	}
	st.Theme = t
	return st, nil
}

// newGenerator wires the configured LLM provider. It returns nil without an
// error when no provider is configured at all.
func newGenerator(ctx context.Context, e *env) (*aigen.Generator, error) {
	cfg, ok := llm.FromSettings(e.cfg.LLM)
	if !ok {
		e.log.Info("no LLM provider configured")
		return nil, nil
	}
	provider, err := llm.NewProvider(ctx, cfg, e.log)
	if err != nil {
		e.log.Warn("LLM provider unavailable", zap.String("provider", cfg.Provider), zap.Error(err))
		return nil, err
	}
	return aigen.New(provider, cfg.MaxTokens, cfg.Timeout), nil
}
