// Package constraint implements situational constraint extraction from
// annotated questions.
package constraint

import (
	"strings"

	"github.com/overthinkhq/ponder/internal/model"
)

// Extractor scans questions for constraint keyword families and monetary or
// temporal entities. It is immutable after construction and safe for
// concurrent use.
type Extractor struct {
	families []compiledFamily
}

type compiledFamily struct {
	name     model.ConstraintFamily
	keywords []string
}

// NewExtractor builds an extractor over the given families, evaluated in
// order. Ties in keyword-hit counts resolve to the earliest family.
func NewExtractor(families []Family) *Extractor {
	compiled := make([]compiledFamily, 0, len(families))
	for _, f := range families {
		cf := compiledFamily{name: f.Name, keywords: make([]string, 0, len(f.Keywords))}
		for _, kw := range f.Keywords {
			cf.keywords = append(cf.keywords, strings.ToLower(kw))
		}
		compiled = append(compiled, cf)
	}
	return &Extractor{families: compiled}
}

// NewDefaultExtractor builds an extractor over the built-in families.
func NewDefaultExtractor() *Extractor {
	return NewExtractor(DefaultFamilies())
}

// Extract derives the constraint set for a question. Absence of any signal
// yields the zero-value defaults; there are no failure modes.
func (e *Extractor) Extract(annotated *model.AnnotatedText, text string) model.ConstraintSet {
	constraints := model.ConstraintSet{
		UrgencyLevel: model.UrgencyNormal,
	}

	textLower := strings.ToLower(text)

	bestScore := 0
	for _, family := range e.families {
		score := 0
		for _, keyword := range family.keywords {
			if strings.Contains(textLower, keyword) {
				score++
			}
		}
		if score == 0 {
			continue
		}

		switch family.name {
		case model.FamilyTimeSensitive:
			constraints.TimeSensitive = true
			constraints.UrgencyLevel = model.UrgencyHigh
		case model.FamilyBudgetConscious:
			constraints.BudgetConscious = true
		case model.FamilyQualityFocused:
			constraints.QualityFocused = true
		case model.FamilyConvenience:
			constraints.ConvenienceFocused = true
		}

		// Strictly greater, so equal counts keep the earlier family.
		if score > bestScore {
			bestScore = score
			constraints.PrimaryConcern = family.name
		}
	}

	if annotated != nil {
		if money := annotated.FirstEntity(model.EntityMoney); money != nil {
			constraints.BudgetAmount = money.Text
		}
		if when := annotated.FirstEntity(model.EntityTime, model.EntityDate); when != nil {
			constraints.TimeConstraint = when.Text
		}
	}

	return constraints
}
