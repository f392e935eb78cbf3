package constraint

import "github.com/overthinkhq/ponder/internal/model"

// Family pairs a constraint family with the keyword list that triggers it.
// Keywords are matched as lowercase substrings of the question.
type Family struct {
	Name     model.ConstraintFamily
	Keywords []string
}

// DefaultFamilies returns the built-in constraint families in declaration
// order. The order breaks primary-concern ties, so it must stay stable.
func DefaultFamilies() []Family {
	return []Family{
		{
			Name: model.FamilyTimeSensitive,
			Keywords: []string{
				"urgent", "quick", "fast", "asap", "immediately",
				"hurry", "rush", "quickly", "soon", "right now",
			},
		},
		{
			Name: model.FamilyBudgetConscious,
			Keywords: []string{
				"cheap", "affordable", "budget", "save money",
				"economical", "inexpensive", "low cost", "under",
			},
		},
		{
			Name: model.FamilyQualityFocused,
			Keywords: []string{
				"best", "quality", "premium", "reliable", "durable",
				"long-term", "high quality", "top rated", "excellent",
			},
		},
		{
			Name: model.FamilyConvenience,
			Keywords: []string{
				"easy", "convenient", "simple", "hassle free",
				"comfortable", "effortless",
			},
		},
	}
}
