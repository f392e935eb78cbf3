// Package classify implements the multi-signal intent classification engine.
package classify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/overthinkhq/ponder/internal/model"
)

// Signal weights. Phrases carry the most weight because a multi-word match
// is the most specific evidence available.
const (
	weightVerb     = 4
	weightNoun     = 3
	weightPhrase   = 6
	weightEntity   = 3
	weightModifier = 2
	weightFallback = 2
)

// Confidence calibration constants.
const (
	scoreDivisor = 12.0
	gapDivisor   = 20.0
	// strongScore marks a very strong match that earns an extra boost.
	strongScore = 15
	strongBoost = 1.2
	// floorConfidence is returned when no category accumulates any signal.
	// We have nothing to go on but must still answer something.
	floorConfidence = 0.3
)

// compiledDefinition holds a definition with its signal sets preprocessed
// for constant-time membership checks.
type compiledDefinition struct {
	category     model.Category
	verbs        map[string]struct{}
	nouns        map[string]struct{}
	nounList     []string // original order, for the raw-text fallback scan
	phrases      []string // sorted by descending length
	entityLabels map[model.EntityLabel]struct{}
	modifiers    []string
}

// Classifier scores questions against the category signal tables. It is
// immutable after construction and safe for concurrent use.
type Classifier struct {
	definitions []compiledDefinition
}

// NewClassifier builds a classifier from the given definitions. Definitions
// are evaluated in the order given; that order breaks score ties. A
// definition with no signal sets at all is a configuration error.
func NewClassifier(definitions []Definition) (*Classifier, error) {
	if len(definitions) == 0 {
		return nil, fmt.Errorf("at least one category definition is required")
	}

	compiled := make([]compiledDefinition, 0, len(definitions))
	seen := make(map[model.Category]bool)

	for _, def := range definitions {
		if !def.Category.Valid() || def.Category == model.CategoryGeneral {
			return nil, fmt.Errorf("invalid category %q in definition", def.Category)
		}
		if seen[def.Category] {
			return nil, fmt.Errorf("duplicate definition for category %q", def.Category)
		}
		seen[def.Category] = true

		if len(def.Verbs) == 0 && len(def.Nouns) == 0 && len(def.Phrases) == 0 &&
			len(def.EntityLabels) == 0 && len(def.Modifiers) == 0 {
			return nil, fmt.Errorf("definition for category %q has no signal sets", def.Category)
		}

		compiled = append(compiled, compileDefinition(def))
	}

	return &Classifier{definitions: compiled}, nil
}

// NewDefaultClassifier builds a classifier over the built-in signal tables.
func NewDefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultDefinitions())
	if err != nil {
		// The built-in tables are validated by tests; this cannot happen.
		panic(fmt.Sprintf("default definitions invalid: %v", err))
	}
	return c
}

func compileDefinition(def Definition) compiledDefinition {
	cd := compiledDefinition{
		category:     def.Category,
		verbs:        make(map[string]struct{}, len(def.Verbs)),
		nouns:        make(map[string]struct{}, len(def.Nouns)),
		nounList:     make([]string, 0, len(def.Nouns)),
		phrases:      make([]string, len(def.Phrases)),
		entityLabels: make(map[model.EntityLabel]struct{}, len(def.EntityLabels)),
		modifiers:    make([]string, 0, len(def.Modifiers)),
	}

	for _, v := range def.Verbs {
		cd.verbs[strings.ToLower(v)] = struct{}{}
	}
	for _, n := range def.Nouns {
		lower := strings.ToLower(n)
		cd.nouns[lower] = struct{}{}
		cd.nounList = append(cd.nounList, lower)
	}
	for i, p := range def.Phrases {
		cd.phrases[i] = strings.ToLower(p)
	}
	// Longer phrases first so a short phrase cannot pre-empt a more
	// specific longer one.
	sort.SliceStable(cd.phrases, func(i, j int) bool {
		return len(cd.phrases[i]) > len(cd.phrases[j])
	})
	for _, label := range def.EntityLabels {
		cd.entityLabels[label] = struct{}{}
	}
	for _, m := range def.Modifiers {
		cd.modifiers = append(cd.modifiers, strings.ToLower(m))
	}

	return cd
}

// Classify scores every category against the question and returns the best
// one with a calibrated confidence in [0, 1]. It is a pure function of its
// inputs: no state is read or written, so identical input yields identical
// output.
func (c *Classifier) Classify(text string, annotated *model.AnnotatedText) model.ClassificationResult {
	textLower := strings.ToLower(text)

	var tokens, actions, nouns []string
	var entities []model.Entity
	if annotated != nil {
		tokens = annotated.Tokens
		actions = annotated.Actions
		nouns = annotated.Nouns
		entities = annotated.Entities
	}

	tokensLower := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		tokensLower[strings.ToLower(token)] = struct{}{}
	}

	scores := make(model.CategoryScores, 0, len(c.definitions))
	for i := range c.definitions {
		scores = append(scores, model.CategoryScore{
			Category: c.definitions[i].category,
			Score:    c.definitions[i].score(textLower, actions, nouns, entities, tokensLower),
		})
	}

	if scores.AllZero() {
		return model.ClassificationResult{
			Category:   model.CategoryGeneral,
			Confidence: floorConfidence,
		}
	}

	best := scores.Best()
	max := scores[best].Score
	second := scores.RunnerUp(best)

	return model.ClassificationResult{
		Category:   scores[best].Category,
		Confidence: calibrate(max, second),
	}
}

// score runs the six weighted signals for one category.
func (d *compiledDefinition) score(textLower string, actions, nouns []string, entities []model.Entity, tokensLower map[string]struct{}) int {
	score := 0

	// Signal A: lemmatized verbs from the annotation.
	for _, action := range actions {
		if _, ok := d.verbs[strings.ToLower(action)]; ok {
			score += weightVerb
		}
	}

	// Signal B: surface nouns from the annotation.
	for _, noun := range nouns {
		if _, ok := d.nouns[strings.ToLower(noun)]; ok {
			score += weightNoun
		}
	}

	// Signal C: at most one phrase bonus, longest match wins.
	for _, phrase := range d.phrases {
		if strings.Contains(textLower, phrase) {
			score += weightPhrase
			break
		}
	}

	// Signal D: entity text and entity label, scored additively.
	for _, entity := range entities {
		if _, ok := d.nouns[strings.ToLower(entity.Text)]; ok {
			score += weightEntity
		}
		if _, ok := d.entityLabels[entity.Label]; ok {
			score += weightEntity
		}
	}

	// Signal E: modifier words, one bonus per distinct modifier present.
	for _, modifier := range d.modifiers {
		if strings.Contains(textLower, modifier) {
			score += weightModifier
		}
	}

	// Signal F: nouns present in the raw text but missing from the token
	// list. Catches compounds and surface forms the annotation provider
	// failed to tokenize.
	for _, noun := range d.nounList {
		if strings.Contains(textLower, noun) {
			if _, ok := tokensLower[noun]; !ok {
				score += weightFallback
			}
		}
	}

	return score
}

// calibrate converts the winning and runner-up scores into a confidence
// value. Confidence rewards both absolute signal strength and separation
// from the runner-up.
func calibrate(max, second int) float64 {
	var confidence float64
	if second == 0 {
		confidence = minFloat(float64(max)/scoreDivisor, 1.0)
	} else {
		gap := float64(max - second)
		confidence = minFloat(float64(max)/scoreDivisor+gap/gapDivisor, 1.0)
	}

	if max >= strongScore {
		confidence = minFloat(confidence*strongBoost, 1.0)
	}

	return confidence
}

// minFloat returns the smaller of two float64 values.
func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
