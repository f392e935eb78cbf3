package main

import (
	"github.com/spf13/cobra"

	"github.com/overthinkhq/ponder/internal/tui"
)

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask",
		Short: "Interactive question session",
		Long:  `Start an interactive session: type decision questions, get analyses.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			analyzer, err := buildAnalyzer()
			if err != nil {
				return err
			}
			return tui.Run(analyzer)
		},
	}
}
