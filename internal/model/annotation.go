package model

// EntityLabel is an entity category assigned by the linguistic annotation
// provider. The taxonomy is owned by the provider; labels outside this set
// are tolerated and simply contribute no signal.
type EntityLabel string

// Entity labels the classifier and extractor know how to use.
const (
	EntityPerson       EntityLabel = "PERSON"
	EntityOrganization EntityLabel = "ORG"
	EntityGeopolitical EntityLabel = "GPE"
	EntityLocation     EntityLabel = "LOC"
	EntityFacility     EntityLabel = "FAC"
	EntityMoney        EntityLabel = "MONEY"
	EntityTime         EntityLabel = "TIME"
	EntityDate         EntityLabel = "DATE"
)

// Entity is a named entity found in the question text. Entities may overlap
// or repeat; no deduplication is performed.
type Entity struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
	Start int         `json:"start"`
	End   int         `json:"end"`
}

// AnnotatedText is the linguistic annotation of a question, produced by the
// external annotation provider and consumed read-only by every component.
type AnnotatedText struct {
	// RawText is the original question.
	RawText string `json:"raw_text"`
	// Tokens are the surface token strings in order.
	Tokens []string `json:"tokens"`
	// Actions are the lemmatized verb forms, verbs only.
	Actions []string `json:"actions"`
	// Nouns are the surface noun strings in order.
	Nouns []string `json:"nouns"`
	// Entities are the named entities in order of appearance.
	Entities []Entity `json:"entities"`
	// Sentiment is the polarity score in [-1, 1].
	Sentiment float64 `json:"sentiment"`
	// RiskScore is an optional risk estimate in [0, 1].
	RiskScore float64 `json:"risk_score"`
}

// FirstEntity returns the first entity carrying one of the given labels,
// or nil if none exists.
func (a *AnnotatedText) FirstEntity(labels ...EntityLabel) *Entity {
	for i := range a.Entities {
		for _, label := range labels {
			if a.Entities[i].Label == label {
				return &a.Entities[i]
			}
		}
	}
	return nil
}

// Normalize clamps the provider's numeric fields into their documented
// ranges. Out-of-range values are a provider bug the core tolerates.
func (a *AnnotatedText) Normalize() {
	a.Sentiment = clampFloat(a.Sentiment, -1.0, 1.0)
	a.RiskScore = clampFloat(a.RiskScore, 0.0, 1.0)
}

func clampFloat(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
