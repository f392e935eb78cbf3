package analysis

import "github.com/overthinkhq/ponder/internal/model"

// Consideration lists are fixed per category so reports stay deterministic
// for identical input.
var considerations = map[model.Category][]string{
	model.CategoryTransportation: {
		"Time efficiency vs. cost savings",
		"Environmental impact of your choice",
		"Health benefits of more active options",
	},
	model.CategoryPurchase: {
		"Evaluate your actual need versus want for this item",
		"Consider the long-term value and durability",
		"Research alternative options and compare prices",
		"Think about the opportunity cost of the money",
	},
	model.CategoryFood: {
		"Cooking at home is usually cheaper and healthier",
		"Ordering saves time but adds delivery cost",
		"Consider what ingredients you already have",
	},
	model.CategoryCareer: {
		"Weigh growth opportunities against current stability",
		"Compare total compensation, not just salary",
		"Think about where you want to be in five years",
	},
	model.CategoryHealth: {
		"Small consistent habits beat drastic changes",
		"When in doubt about symptoms, see a professional",
		"Factor in what you can sustain long-term",
	},
	model.CategoryRelationship: {
		"Honest communication resolves most uncertainty",
		"Consider the other person's perspective",
		"Time pressure rarely improves these decisions",
	},
	model.CategoryGeneral: {
		"Practical perspective: what's the most efficient solution?",
		"Financial perspective: what makes the most economic sense?",
		"Long-term perspective: how will this decision affect your future?",
	},
}

func considerationsFor(category model.Category) []string {
	if lines, ok := considerations[category]; ok {
		return lines
	}
	return considerations[model.CategoryGeneral]
}

// suggestionFor picks the closing suggestion from the category and the
// extracted constraints. Time pressure wins over budget pressure when both
// are present.
func suggestionFor(category model.Category, constraints *model.ConstraintSet) string {
	if constraints != nil {
		switch {
		case constraints.TimeSensitive:
			return "Since time seems important, favor the fastest option even if it costs a bit more."
		case constraints.BudgetConscious:
			return "For cost-effective options, trade some convenience for savings."
		case constraints.QualityFocused:
			return "Since quality matters to you, spending more now often saves money long-term."
		case constraints.ConvenienceFocused:
			return "Favor the option with the least friction; your time and energy count too."
		}
	}

	switch category {
	case model.CategoryTransportation:
		return "For a balanced approach, decide which factor matters most: time, cost, or comfort."
	case model.CategoryPurchase:
		return "Check whether this purchase aligns with your budget and financial goals."
	case model.CategoryFood:
		return "Pick whichever option you won't regret in an hour."
	case model.CategoryCareer:
		return "Sleep on it; career moves reward deliberation over speed."
	case model.CategoryHealth:
		return "Start with the smallest step you can take today."
	case model.CategoryRelationship:
		return "Talk it through before deciding anything permanent."
	default:
		return "Weigh these perspectives based on your current priorities."
	}
}
