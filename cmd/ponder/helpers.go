package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/overthinkhq/ponder/internal/analysis"
	"github.com/overthinkhq/ponder/internal/annotate"
	"github.com/overthinkhq/ponder/internal/classify"
	"github.com/overthinkhq/ponder/internal/constraint"
	"github.com/overthinkhq/ponder/internal/service"
)

// buildAnalyzer wires the full pipeline from the active configuration:
// HTTP annotation client, LRU memo cache, classifier, and extractor.
func buildAnalyzer() (*analysis.Analyzer, error) {
	client, err := annotate.NewClient(annotate.Config{
		BaseURL: viper.GetString("annotator.url"),
		Timeout: viper.GetDuration("annotator.timeout"),
		Retry: service.RetryOptions{
			MaxAttempts: 3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create annotation client: %w", err)
	}

	cached, err := annotate.NewCached(client, viper.GetInt("cache.size"))
	if err != nil {
		return nil, fmt.Errorf("failed to create annotation cache: %w", err)
	}

	return analysis.NewAnalyzer(
		cached,
		classify.NewDefaultClassifier(),
		constraint.NewDefaultExtractor(),
		viper.GetFloat64("classification.threshold"),
	), nil
}
