package annotate

import (
	"strings"

	"github.com/overthinkhq/ponder/internal/model"
)

// riskWeights maps risk indicator terms to their base scores.
var riskWeights = map[string]float64{
	"danger": 0.8,
	"risk":   0.7,
	"harm":   0.6,
	"poison": 0.9,
	"toxic":  0.85,
	"kill":   0.95,
	"death":  0.9,
}

// AssessRisk estimates a risk level in [0, 1] from the annotation. The
// strongest indicator found among tokens and verb lemmas sets the base
// score, scaled up slightly per recognized entity.
func AssessRisk(annotated *model.AnnotatedText) float64 {
	if annotated == nil {
		return 0.0
	}

	maxRisk := 0.0
	scan := func(words []string) {
		for _, word := range words {
			if weight, ok := riskWeights[strings.ToLower(word)]; ok && weight > maxRisk {
				maxRisk = weight
			}
		}
	}
	scan(annotated.Tokens)
	scan(annotated.Actions)

	if maxRisk == 0.0 {
		return 0.0
	}

	scaled := maxRisk * (1.0 + 0.1*float64(len(annotated.Entities)))
	if scaled > 1.0 {
		return 1.0
	}
	return scaled
}
