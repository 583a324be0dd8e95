package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/evaluate"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/judges"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/logging"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/store"
)

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compare every baseline judge against truth and human data",
		Long: `Run all baseline judges over the test items and report, per judge,
the Spearman correlation with published human accuracy, the agreement
with true grammaticality, and the number of test items excluded because
the accuracy table has no entry for them.

With --save, the per-judge results are appended to the run history at
<root>/.aglearn/aglearn.db.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			g, err := cfg.Grammar.ToGrammar()
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
			accuracyPath, _ := cmd.Flags().GetString("accuracy")
			ref, err := loadAccuracy(accuracyPath)
			if err != nil {
				return err
			}

			root, _ := cmd.Flags().GetString("root")
			logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)
			judgments := logging.NewJudgmentLogger(filepath.Join(root, ".aglearn"), cfg.Logging.Level)
			defer judgments.Close()

			stats := exposure.NewStats(exposed)
			all := judges.All(g.Alphabet())
			for _, j := range all {
				for _, jm := range judges.ScoreAll(j, items, stats) {
					judgments.Judgment(j.Name(), jm.Sequence.String(), jm.Score)
				}
			}
			results := evaluate.EvaluateAll(all, items, stats, g, ref)

			saveRun, _ := cmd.Flags().GetBool("save")
			var runID string
			if saveRun {
				runStore, err := store.NewRunStore(root)
				if err != nil {
					return fmt.Errorf("opening run store: %w", err)
				}
				defer runStore.Close()
				saved, err := runStore.SaveRun(cmd.Context(), results)
				if err != nil {
					return fmt.Errorf("saving run: %w", err)
				}
				runID = saved.ID
				logger.Info("saved evaluation run", "run_id", runID)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				payload := map[string]any{"results": results}
				if runID != "" {
					payload["run_id"] = runID
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(payload)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-14s %8s %9s %10s %10s %8s\n",
				"JUDGE", "ITEMS", "EXCLUDED", "SPEARMAN", "AGREEMENT", "SEP")
			for _, r := range results {
				fmt.Fprintf(w, "%-14s %8d %9d %10.4f %10.4f %8.4f\n",
					r.Judge, r.Items, r.Excluded, r.Spearman, r.Agreement,
					r.GrammaticalMean-r.UngrammaticalMean)
			}
			if runID != "" {
				fmt.Fprintf(w, "\nsaved as run %s\n", runID)
			}
			return nil
		},
	}
	cmd.Flags().String("exposure", "", "Exposure stream file (default: embedded study stream)")
	cmd.Flags().String("test", "", "Test items file (default: embedded study items)")
	cmd.Flags().String("accuracy", "", "Human accuracy YAML file (default: embedded published table)")
	cmd.Flags().Bool("save", false, "Persist results to the run history")
	return cmd
}
