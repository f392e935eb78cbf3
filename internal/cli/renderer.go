package cli

import (
	"fmt"
	"strings"

	"github.com/overthinkhq/ponder/internal/analysis"
	"github.com/overthinkhq/ponder/internal/model"
)

// confidentThreshold separates confident styling from hedged styling.
const confidentThreshold = 0.7

// RenderReport formats an analysis report for the terminal.
func RenderReport(report *analysis.Report) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Decision Analysis"))
	b.WriteString("\n")

	categoryLine := fmt.Sprintf("Category: %s (%.0f%% confident)", report.Category, report.Confidence*100)
	if report.Confidence >= confidentThreshold {
		b.WriteString(SuccessStyle.Render(categoryLine))
	} else {
		b.WriteString(WarningStyle.Render(categoryLine))
	}
	b.WriteString("\n")

	if len(report.Entities) > 0 {
		b.WriteString(SubtleStyle.Render("Detected: " + strings.Join(report.Entities, ", ")))
		b.WriteString("\n")
	}

	if report.Constraints != nil {
		b.WriteString(renderConstraints(report.Constraints))
	}

	b.WriteString("\n")
	b.WriteString(BoldStyle.Render("Things to consider:"))
	b.WriteString("\n")
	for i, consideration := range report.Considerations {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, consideration))
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(report.Suggestion))
	b.WriteString("\n")

	return b.String()
}

func renderConstraints(constraints *model.ConstraintSet) string {
	var lines []string

	if constraints.TimeSensitive {
		lines = append(lines, "time pressure (urgency: "+string(constraints.UrgencyLevel)+")")
	}
	if constraints.BudgetConscious {
		lines = append(lines, "budget conscious")
	}
	if constraints.QualityFocused {
		lines = append(lines, "quality focused")
	}
	if constraints.ConvenienceFocused {
		lines = append(lines, "convenience focused")
	}
	if constraints.BudgetAmount != "" {
		lines = append(lines, "budget mentioned: "+constraints.BudgetAmount)
	}
	if constraints.TimeConstraint != "" {
		lines = append(lines, "time mentioned: "+constraints.TimeConstraint)
	}

	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(SubtleStyle.Render("Constraints: " + strings.Join(lines, "; ")))
	b.WriteString("\n")
	if constraints.PrimaryConcern != "" {
		b.WriteString(SubtleStyle.Render("Primary concern: " + string(constraints.PrimaryConcern)))
		b.WriteString("\n")
	}
	return b.String()
}
