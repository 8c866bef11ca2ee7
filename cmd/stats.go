package cmd

import (
	"context"
	"fmt"

	"github.com/fbarrientos/autoeval/internal/llm"
	"github.com/fbarrientos/autoeval/internal/scoring"
	"github.com/fbarrientos/autoeval/internal/state"
	"github.com/fbarrientos/autoeval/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Resumen del progreso y del uso de la API",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		streak, err := states.Streak(ctx)
		if err != nil {
			return fmt.Errorf("load streak: %w", err)
		}
		earned, err := states.EarnedBadges(ctx)
		if err != nil {
			return fmt.Errorf("load badges: %w", err)
		}

		fmt.Printf("Progreso:   %d%% (%d de 24 preguntas)\n", scoring.Progress(answers), len(answers))
		results := scoring.Results(answers)
		overall := scoring.OverallScore(results)
		if overall > 0 {
			fmt.Printf("Nivel:      %s (%.2f / 5)\n", scoring.TierForScore(overall).Label(), overall)
		}
		for _, r := range results {
			if r.Answered == 0 {
				fmt.Printf("  %-45s —\n", r.Area.Title)
				continue
			}
			fmt.Printf("  %-45s %-10s %.2f (%d/%d)\n",
				r.Area.Title, r.Tier.Label(), r.Score, r.Answered, r.Total)
		}
		fmt.Printf("Racha:      %d días\n", streak.Count)
		fmt.Printf("Logros:     %d de 8\n", len(earned))

		sum, err := st.RequestLog().Summary(ctx)
		if err != nil {
			return fmt.Errorf("request summary: %w", err)
		}
		fmt.Printf("\nSolicitudes LLM: %d (%d fallidas)\n", sum.TotalRequests, sum.Failures)
		fmt.Printf("Tokens:          %d entrada / %d salida\n", sum.InputTokens, sum.OutputTokens)

		usage, err := st.RequestLog().UsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("model usage: %w", err)
		}
		var total float64
		for _, u := range usage {
			cost := llm.LookupCost(u.Model)
			if cost == nil {
				continue
			}
			total += cost.Cost(u.InputTokens, u.OutputTokens)
		}
		if total > 0 {
			fmt.Printf("Costo estimado:  $%.4f USD\n", total)
		}
		return nil
	},
}
