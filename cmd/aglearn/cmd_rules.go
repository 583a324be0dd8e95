package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/rules"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Report co-occurrence rules learned from the exposure stream",
		Long: `Learn requires/excludes rules between categories from the exposure
stream and print them, one per line.

"x requires y" means x never appeared in a sequence without y;
"x excludes y" means x never appeared in a sequence with y.`,
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

			learned := rules.Learn(exposure.NewStats(exposed), g.Alphabet())

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"rules": learned,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), rules.Report(learned))
			return nil
		},
	}
	cmd.Flags().String("exposure", "", "Exposure stream file (default: embedded study stream)")
	return cmd
}
