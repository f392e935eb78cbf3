package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/overthinkhq/ponder/internal/classify"
	"github.com/overthinkhq/ponder/internal/cli"
	"github.com/overthinkhq/ponder/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the decision categories",
		Long:  `List every decision category and the size of its signal tables.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(cli.TitleStyle.Render("Decision categories"))

			for _, def := range classify.DefaultDefinitions() {
				fmt.Printf("  %-16s %d verbs, %d nouns, %d phrases\n",
					def.Category, len(def.Verbs), len(def.Nouns), len(def.Phrases))
			}
			fmt.Printf("  %-16s fallback when nothing matches\n", model.CategoryGeneral)

			return nil
		},
	}
}
