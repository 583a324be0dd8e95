package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aglearn",
		Short: "Baseline strategies for artificial grammar learning",
		Long: `aglearn simulates and scores grammar-blind baseline strategies
against an artificial language learning experiment.

It enumerates every legal sequence of the study grammar, trains simple
frequency-based judges on an exposure stream, and compares their
judgments against true grammaticality and published human accuracy.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("root", ".", "Project root directory")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (defaults to the study setup)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newEnumerateCmd(),
		newVerifyCmd(),
		newJudgeCmd(),
		newEvaluateCmd(),
		newRulesCmd(),
		newRunsCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "aglearn version %s\n", version)
			}
		},
	}
}
