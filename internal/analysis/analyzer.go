// Package analysis turns classified questions into structured decision reports.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/overthinkhq/ponder/internal/common"
	"github.com/overthinkhq/ponder/internal/model"
	"github.com/overthinkhq/ponder/internal/service"
)

// DefaultThreshold is the minimum classification confidence required before
// constraints are attached to a report.
const DefaultThreshold = 0.4

// Report is the full analysis of one decision question.
type Report struct {
	Question       string               `json:"question"`
	Category       model.Category       `json:"category"`
	Confidence     float64              `json:"confidence"`
	Sentiment      float64              `json:"sentiment"`
	RiskScore      float64              `json:"risk_score"`
	Constraints    *model.ConstraintSet `json:"constraints,omitempty"`
	Entities       []string             `json:"entities,omitempty"`
	Considerations []string             `json:"considerations"`
	Suggestion     string               `json:"suggestion"`
	ProcessingTime time.Duration        `json:"processing_time"`
}

// Analyzer wires annotation, classification, and constraint extraction into
// a single analysis pipeline.
type Analyzer struct {
	annotator  service.Annotator
	classifier service.Classifier
	extractor  service.Extractor
	threshold  float64
}

// NewAnalyzer creates an analyzer. A non-positive threshold falls back to
// DefaultThreshold.
func NewAnalyzer(annotator service.Annotator, classifier service.Classifier, extractor service.Extractor, threshold float64) *Analyzer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Analyzer{
		annotator:  annotator,
		classifier: classifier,
		extractor:  extractor,
		threshold:  threshold,
	}
}

// Analyze runs the full pipeline for one question. Constraints are only
// attached when the classification confidence clears the threshold.
func (a *Analyzer) Analyze(ctx context.Context, question string) (*Report, error) {
	if strings.TrimSpace(question) == "" {
		return nil, common.ErrEmptyQuestion
	}

	start := time.Now()

	annotated, err := a.annotator.Annotate(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate question: %w", err)
	}

	result := a.classifier.Classify(question, annotated)

	var constraints *model.ConstraintSet
	if result.Confidence >= a.threshold {
		extracted := a.extractor.Extract(annotated, question)
		constraints = &extracted
	}

	report := &Report{
		Question:       question,
		Category:       result.Category,
		Confidence:     result.Confidence,
		Sentiment:      annotated.Sentiment,
		RiskScore:      annotated.RiskScore,
		Constraints:    constraints,
		Entities:       entityTexts(annotated),
		Considerations: considerationsFor(result.Category),
		Suggestion:     suggestionFor(result.Category, constraints),
		ProcessingTime: time.Since(start),
	}

	slog.Debug("Analyzed question",
		"category", report.Category,
		"confidence", report.Confidence,
		"constraints", constraints != nil,
		"duration", report.ProcessingTime)

	return report, nil
}

func entityTexts(annotated *model.AnnotatedText) []string {
	if len(annotated.Entities) == 0 {
		return nil
	}
	texts := make([]string, 0, len(annotated.Entities))
	for _, entity := range annotated.Entities {
		texts = append(texts, entity.Text)
	}
	return texts
}
