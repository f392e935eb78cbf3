package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/overthinkhq/ponder/internal/cli"
)

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <question>",
		Short: "Analyze a single decision question",
		Long: `Classify a decision question, extract its constraints, and print a
balanced analysis.

Examples:
  ponder analyze "Should I take the bus or Uber to work?"
  ponder analyze "Should I buy this expensive watch worth 50000 rupees?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	analyzer, err := buildAnalyzer()
	if err != nil {
		return err
	}

	report, err := analyzer.Analyze(cmd.Context(), question)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	fmt.Println(cli.RenderReport(report))
	return nil
}
