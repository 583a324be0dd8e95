package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/enumerate"
)

func newEnumerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "List every grammatical sequence up to the length bound",
		Long: `Enumerate all legal sequences of the configured grammar.

The full set covers lengths up to lengths.full; --short restricts it to
lengths.short. Output order is deterministic and matches the oracle
fixture files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			g, err := cfg.Grammar.ToGrammar()
			if err != nil {
				return err
			}

			maxLen, _ := cmd.Flags().GetInt("max-length")
			if maxLen == 0 {
				maxLen = cfg.Lengths.Full
			}
			short, _ := cmd.Flags().GetBool("short")

			set := enumerate.New(g).All(maxLen)
			if short {
				set = set.Truncate(cfg.Lengths.Short)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				lines := make([]string, 0, set.Len())
				for _, seq := range set.Sequences() {
					lines = append(lines, seq.String())
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"max_length": maxLen,
					"count":      set.Len(),
					"sequences":  lines,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), set.Lines())
			return nil
		},
	}
	cmd.Flags().Int("max-length", 0, "Maximum sequence length (default: lengths.full from config)")
	cmd.Flags().Bool("short", false, "Restrict to the truncated set (lengths.short)")
	return cmd
}
