package model

// UrgencyLevel indicates how time-pressured a decision is.
type UrgencyLevel string

// Urgency levels. High is derived from the time_sensitive family; there is
// no independent scale.
const (
	UrgencyNormal UrgencyLevel = "normal"
	UrgencyHigh   UrgencyLevel = "high"
)

// ConstraintFamily names one of the situational pressures detected via
// keyword presence.
type ConstraintFamily string

// The constraint families, in declaration order. Equal keyword-hit counts
// resolve the primary concern to the first declared family.
const (
	FamilyTimeSensitive   ConstraintFamily = "time_sensitive"
	FamilyBudgetConscious ConstraintFamily = "budget_conscious"
	FamilyQualityFocused  ConstraintFamily = "quality_focused"
	FamilyConvenience     ConstraintFamily = "convenience"
)

// ConstraintSet captures the situational constraints extracted from a
// question. Zero values are the designed defaults, not failures.
type ConstraintSet struct {
	TimeSensitive      bool             `json:"time_sensitive"`
	BudgetConscious    bool             `json:"budget_conscious"`
	QualityFocused     bool             `json:"quality_focused"`
	ConvenienceFocused bool             `json:"convenience_focused"`
	UrgencyLevel       UrgencyLevel     `json:"urgency_level"`
	BudgetAmount       string           `json:"budget_amount,omitempty"`
	PrimaryConcern     ConstraintFamily `json:"primary_concern,omitempty"`
	TimeConstraint     string           `json:"time_constraint,omitempty"`
}

// Any reports whether at least one constraint family triggered.
func (c *ConstraintSet) Any() bool {
	return c.TimeSensitive || c.BudgetConscious || c.QualityFocused || c.ConvenienceFocused
}
