// Package model defines the core domain models used throughout the application.
package model

// Category identifies one of the fixed decision domains a question can fall into.
type Category string

// The closed set of decision categories.
const (
	// CategoryTransportation covers "how do I get there" decisions.
	CategoryTransportation Category = "transportation"
	// CategoryPurchase covers buying, upgrading, and repair-or-replace decisions.
	CategoryPurchase Category = "purchase"
	// CategoryFood covers cooking, ordering, and dining decisions.
	CategoryFood Category = "food"
	// CategoryCareer covers job, offer, and workplace decisions.
	CategoryCareer Category = "career"
	// CategoryHealth covers fitness, sleep, and medical decisions.
	CategoryHealth Category = "health"
	// CategoryRelationship covers interpersonal decisions.
	CategoryRelationship Category = "relationship"
	// CategoryGeneral is the fallback when no category accumulates any signal.
	CategoryGeneral Category = "general"
)

// Categories returns the classifiable categories in declaration order.
// The order is load-bearing: equal scores resolve to the first declared,
// so it must stay stable across releases.
func Categories() []Category {
	return []Category{
		CategoryTransportation,
		CategoryPurchase,
		CategoryFood,
		CategoryCareer,
		CategoryHealth,
		CategoryRelationship,
	}
}

// Valid reports whether c is a known category, including the general fallback.
func (c Category) Valid() bool {
	switch c {
	case CategoryTransportation, CategoryPurchase, CategoryFood,
		CategoryCareer, CategoryHealth, CategoryRelationship, CategoryGeneral:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
