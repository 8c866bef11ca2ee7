package cmd

import (
	"context"
	"fmt"

	"github.com/fbarrientos/autoeval/internal/export"
	"github.com/fbarrientos/autoeval/internal/scoring"
	"github.com/fbarrientos/autoeval/internal/state"
	"github.com/fbarrientos/autoeval/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Exportar resultados y plan a un documento HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := export.DefaultFileName
		if len(args) == 1 {
			path = args[0]
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		states := state.New(st.KV())

		answers, err := states.Answers(ctx)
		if err != nil {
			return fmt.Errorf("load answers: %w", err)
		}
		if len(answers) == 0 {
			return fmt.Errorf("no hay respuestas que exportar")
		}
		plan, err := states.Plan(ctx)
		if err != nil {
			return fmt.Errorf("load plan: %w", err)
		}

		doc := export.Document{
			Results: scoring.Results(answers),
			Plan:    plan,
		}
		if err := doc.WriteFile(path); err != nil {
			return err
		}
		fmt.Println("Exportado a", path)
		return nil
	},
}
