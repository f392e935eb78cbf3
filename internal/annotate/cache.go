package annotate

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/overthinkhq/ponder/internal/model"
	"github.com/overthinkhq/ponder/internal/service"
)

// defaultCacheSize bounds the memo cache. Annotation is a pure function of
// the text, so entries never need invalidation; the bound only caps memory.
const defaultCacheSize = 512

// Cached memoizes an Annotator by raw text. Identical input yields the
// identical cached record, byte for byte. Safe for concurrent use.
type Cached struct {
	inner service.Annotator
	cache *lru.Cache[string, *model.AnnotatedText]
}

// NewCached wraps an annotator with an LRU memo of the given size.
func NewCached(inner service.Annotator, size int) (*Cached, error) {
	if size <= 0 {
		size = defaultCacheSize
	}

	cache, err := lru.New[string, *model.AnnotatedText](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create annotation cache: %w", err)
	}

	return &Cached{inner: inner, cache: cache}, nil
}

// Annotate returns the memoized annotation for text, calling the inner
// annotator on a miss. Errors are not cached.
func (c *Cached) Annotate(ctx context.Context, text string) (*model.AnnotatedText, error) {
	if annotated, ok := c.cache.Get(text); ok {
		return annotated, nil
	}

	annotated, err := c.inner.Annotate(ctx, text)
	if err != nil {
		return nil, err
	}

	c.cache.Add(text, annotated)
	return annotated, nil
}

// Len returns the number of memoized annotations.
func (c *Cached) Len() int {
	return c.cache.Len()
}

// Purge drops every memoized annotation.
func (c *Cached) Purge() {
	c.cache.Purge()
}
