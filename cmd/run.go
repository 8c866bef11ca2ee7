package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fbarrientos/autoeval/internal/app"
	"github.com/fbarrientos/autoeval/internal/llm"
	"github.com/fbarrientos/autoeval/internal/plan"
	"github.com/fbarrientos/autoeval/internal/session"
	"github.com/fbarrientos/autoeval/internal/state"
	"github.com/fbarrientos/autoeval/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var plans *plan.Service
	provider, _, err := llm.NewProviderFromEnv(ctx, st.RequestLog())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "La generación de planes no estará disponible.")
	}
	if provider != nil {
		plans = plan.NewService(provider, plan.DefaultConfig())
	}

	sess, err := session.Load(ctx, state.New(st.KV()), plans)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := sess.Start(ctx, time.Now()); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	return app.Run(app.Options{Session: sess})
}
