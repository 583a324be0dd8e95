package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/judges"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/logging"
)

func newJudgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "judge",
		Short: "Score the test items with one baseline judge",
		Long: `Train a single grammar-blind judge on the exposure stream and print
its ranked scores over the test items.

Ties rank in sequence order so output is fully deterministic.

Example:
  aglearn judge --judge transitional`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			g, err := cfg.Grammar.ToGrammar()
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("judge")
			j, err := judges.ByName(name, g.Alphabet())
			if err != nil {
				return err
			}

			exposurePath, _ := cmd.Flags().GetString("exposure")
			exposed, err := loadExposure(exposurePath, g)
			if err != nil {
				return err
			}
			testPath, _ := cmd.Flags().GetString("test")
			items, err := loadTestItems(testPath, g)
			if err != nil {
				return err
			}

			logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)
			logger.Debug("judging test items",
				"judge", j.Name(), "exposure_lines", len(exposed), "items", len(items))

			stats := exposure.NewStats(exposed)
			ranked := judges.Rank(judges.ScoreAll(j, items, stats))

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				type entry struct {
					Sequence string  `json:"sequence"`
					Score    float64 `json:"score"`
				}
				out := make([]entry, len(ranked))
				for i, jm := range ranked {
					out[i] = entry{Sequence: jm.Sequence.String(), Score: jm.Score}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"judge":    j.Name(),
					"rankings": out,
				})
			}
			for _, jm := range ranked {
				fmt.Fprintf(cmd.OutOrStdout(), "%.6f  %s\n", jm.Score, jm.Sequence)
			}
			return nil
		},
	}
	cmd.Flags().String("judge", "transitional", "Judge to run: transitional, positional, chunk, or cooccurrence")
	cmd.Flags().String("exposure", "", "Exposure stream file (default: embedded study stream)")
	cmd.Flags().String("test", "", "Test items file (default: embedded study items)")
	return cmd
}
