package classify

import "github.com/overthinkhq/ponder/internal/model"

// Definition describes the weighted signal sets for one category. All fields
// are matched lowercase. This is static configuration, never mutated at
// runtime.
type Definition struct {
	Category model.Category
	// Verbs are lemma strings matched against the annotated actions.
	Verbs []string
	// Nouns are surface strings matched against annotated nouns and entities.
	Nouns []string
	// Phrases are multi-word substrings; the longest present phrase wins.
	Phrases []string
	// EntityLabels are annotation entity labels that count as evidence.
	EntityLabels []model.EntityLabel
	// Modifiers are qualifier words worth a small bonus each.
	Modifiers []string
}

// DefaultDefinitions returns the built-in signal tables in category
// declaration order.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Category: model.CategoryTransportation,
			Verbs: []string{
				"go", "travel", "commute", "drive", "ride", "walk", "bike",
				"fly", "reach", "arrive", "move", "head", "navigate", "drop",
			},
			Nouns: []string{
				"bus", "car", "train", "taxi", "uber", "ola", "bike", "plane",
				"metro", "auto", "transport", "rickshaw", "scooter", "cab",
				"airport", "station", "office", "work", "rapido", "vehicle",
				"cabs", "commute",
			},
			Phrases: []string{
				"get to", "how to reach", "way to", "going to", "travel to",
				"commute to", "best route", "fastest way", "or uber", "vs uber",
				"or ola", "vs ola", "or cab", "vs cab", "vs metro", "or metro",
				"vs bus", "or bus", "take the", "airport drop",
			},
			EntityLabels: []model.EntityLabel{
				model.EntityGeopolitical, model.EntityLocation, model.EntityFacility,
			},
		},
		{
			Category: model.CategoryPurchase,
			Verbs: []string{
				"buy", "purchase", "get", "acquire", "order", "shop", "invest",
				"upgrade", "replace", "spend", "repair",
			},
			Nouns: []string{
				"phone", "laptop", "product", "item", "gadget", "device",
				"clothes", "watch", "tv", "camera", "headphones", "shoes",
				"iphone", "samsung", "macbook", "airpods",
			},
			Phrases: []string{
				"should i buy", "worth buying", "repair or replace",
				"new vs old", "buy or wait", "worth getting", "or repair",
				"new phone", "new laptop", "buy new",
			},
			Modifiers: []string{"new", "old", "expensive", "cheap", "affordable"},
		},
		{
			Category: model.CategoryFood,
			Verbs:    []string{"eat", "cook", "order", "dine", "prepare", "make", "bake"},
			Nouns: []string{
				"food", "restaurant", "meal", "dinner", "lunch", "breakfast",
				"snack", "swiggy", "zomato", "kitchen", "recipe", "delivery",
			},
			Phrases: []string{
				"cook or order", "eat out", "home cooked", "order food",
				"dine out", "food delivery", "make food", "cook at home",
				"or order", "or cook", "swiggy delivery", "zomato delivery",
			},
		},
		{
			Category: model.CategoryCareer,
			Verbs: []string{
				"work", "join", "switch", "apply", "resign", "accept",
				"quit", "leave", "change", "ask",
			},
			Nouns: []string{
				"job", "career", "company", "offer", "salary", "position",
				"role", "promotion", "boss", "workplace", "office", "raise",
				"hike",
			},
			Phrases: []string{
				"job offer", "change job", "new job", "career move",
				"switch companies", "leave job", "job switch", "ask for raise",
				"look elsewhere", "remote position",
			},
		},
		{
			Category: model.CategoryHealth,
			Verbs: []string{
				"exercise", "sleep", "rest", "workout", "diet", "run", "jog",
				"see", "join",
			},
			Nouns: []string{
				"health", "gym", "doctor", "medicine", "fitness", "sleep",
				"hospital", "clinic", "workout", "yoga", "specialist",
				"physician", "checkup",
			},
			Phrases: []string{
				"see a doctor", "go to gym", "health concern", "feel sick",
				"start exercising", "workout routine", "join gym", "at home",
				"or gym", "yoga class", "health checkup", "see specialist",
			},
		},
		{
			Category: model.CategoryRelationship,
			Verbs: []string{
				"date", "marry", "propose", "breakup", "meet", "talk",
				"ask", "apologize",
			},
			Nouns: []string{
				"relationship", "girlfriend", "boyfriend", "partner", "friend",
				"family", "marriage", "date", "her", "him",
			},
			Phrases: []string{
				"ask out", "break up", "get married", "in love", "ask her",
				"ask him", "apologize first", "should i ask",
			},
		},
	}
}
