// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/overthinkhq/ponder/internal/model"
)

// Annotator provides linguistic annotation for raw question text. The
// reference implementation is an HTTP client for the annotation sidecar;
// tests substitute canned annotators.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*model.AnnotatedText, error)
}

// Classifier maps an annotated question to its best decision category.
// Implementations must be pure: identical input yields identical output.
type Classifier interface {
	Classify(text string, annotated *model.AnnotatedText) model.ClassificationResult
}

// Extractor derives situational constraints from an annotated question.
type Extractor interface {
	Extract(annotated *model.AnnotatedText, text string) model.ConstraintSet
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
