// Package testutil provides test utilities shared across packages.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/overthinkhq/ponder/internal/model"
)

// CannedAnnotator is an in-memory Annotator backed by preset annotations.
// Unknown text falls back to a naive whitespace annotation, so tests never
// need a running sidecar.
type CannedAnnotator struct {
	Annotations map[string]*model.AnnotatedText
	// Err, when set, is returned for every call.
	Err error

	calls atomic.Int64
}

// NewCannedAnnotator creates an annotator with the given preset records.
func NewCannedAnnotator(annotations map[string]*model.AnnotatedText) *CannedAnnotator {
	if annotations == nil {
		annotations = make(map[string]*model.AnnotatedText)
	}
	return &CannedAnnotator{Annotations: annotations}
}

// Annotate returns the preset annotation for text, or a naive whitespace
// split when none is registered.
func (a *CannedAnnotator) Annotate(_ context.Context, text string) (*model.AnnotatedText, error) {
	a.calls.Add(1)

	if a.Err != nil {
		return nil, fmt.Errorf("canned annotator: %w", a.Err)
	}

	if annotated, ok := a.Annotations[text]; ok {
		return annotated, nil
	}

	return &model.AnnotatedText{
		RawText: text,
		Tokens:  strings.Fields(text),
	}, nil
}

// Calls returns how many times Annotate has been invoked.
func (a *CannedAnnotator) Calls() int {
	return int(a.calls.Load())
}
