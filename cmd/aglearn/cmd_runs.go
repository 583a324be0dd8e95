package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/store"
)

func newRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List saved evaluation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			runStore, err := store.NewRunStore(root)
			if err != nil {
				return fmt.Errorf("opening run store: %w", err)
			}
			defer runStore.Close()

			runs, err := runStore.ListRuns(cmd.Context())
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				type runOut struct {
					ID        string `json:"id"`
					CreatedAt string `json:"created_at"`
					Results   any    `json:"results"`
				}
				out := make([]runOut, len(runs))
				for i, r := range runs {
					out[i] = runOut{
						ID:        r.ID,
						CreatedAt: r.CreatedAt.Format(time.RFC3339),
						Results:   r.Results,
					}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{"runs": out})
			}

			w := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(w, "no saved runs")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(w, "%s  %s\n", r.CreatedAt.Format(time.RFC3339), r.ID)
				for _, res := range r.Results {
					fmt.Fprintf(w, "  %-14s spearman %7.4f  agreement %7.4f  excluded %d/%d\n",
						res.Judge, res.Spearman, res.Agreement, res.Excluded, res.Items)
				}
			}
			return nil
		},
	}
}
