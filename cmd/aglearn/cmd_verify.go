package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/enumerate"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/fixtures"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the enumerator against the oracle fixture files",
		Long: `Verify that enumerating the study grammar reproduces the fixed
oracle sequence lists exactly.

A mismatch means the grammar definition and the enumerator have
diverged; it is reported in full and the command exits non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := fixtures.Grammar()
			if err := fixtures.VerifyAll(enumerate.New(g)); err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"status":     "ok",
					"full_set":   len(fixtures.FullSequences()),
					"short_set":  len(fixtures.ShortSequences()),
					"max_length": fixtures.FullLength,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d sequences (full, length <= %d), %d sequences (short, length <= %d)\n",
				len(fixtures.FullSequences()), fixtures.FullLength,
				len(fixtures.ShortSequences()), fixtures.ShortLength)
			return nil
		},
	}
}
