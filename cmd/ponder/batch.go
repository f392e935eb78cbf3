package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/overthinkhq/ponder/internal/cli"
	"github.com/overthinkhq/ponder/internal/config"
	"github.com/overthinkhq/ponder/internal/model"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Classify a file of questions",
		Long: `Classify every question in a file, one per line, and print a category
summary. Blank lines and lines starting with # are skipped.

Examples:
  ponder batch questions.txt
  ponder batch questions.txt --show-each`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().Bool("show-each", false, "Print each question's category as it is classified")
	_ = viper.BindPFlag("batch.show_each", cmd.Flags().Lookup("show-each"))

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	showEach := viper.GetBool("batch.show_each")

	file, err := os.Open(config.ExpandPath(args[0]))
	if err != nil {
		return fmt.Errorf("failed to open questions file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var questions []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		questions = append(questions, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read questions file: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("no questions found in %s", args[0])
	}

	analyzer, err := buildAnalyzer()
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(questions),
		progressbar.OptionSetDescription("Classifying"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	counts := make(map[model.Category]int)
	failures := 0

	for _, question := range questions {
		report, analyzeErr := analyzer.Analyze(ctx, question)
		_ = bar.Add(1)

		if analyzeErr != nil {
			failures++
			if showEach {
				fmt.Printf("%s  %s\n", cli.ErrorStyle.Render("error"), question)
			}
			continue
		}

		counts[report.Category]++
		if showEach {
			fmt.Printf("%-16s %.2f  %s\n", report.Category, report.Confidence, question)
		}
	}

	fmt.Println(cli.TitleStyle.Render("Batch summary"))
	for _, category := range append(model.Categories(), model.CategoryGeneral) {
		if counts[category] > 0 {
			fmt.Printf("  %-16s %d\n", category, counts[category])
		}
	}
	if failures > 0 {
		fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf("  failed          %d", failures)))
	}

	return nil
}
