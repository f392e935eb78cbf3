// Package annotate provides access to the linguistic annotation sidecar and
// caching on top of it.
package annotate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/overthinkhq/ponder/internal/common"
	"github.com/overthinkhq/ponder/internal/model"
	"github.com/overthinkhq/ponder/internal/service"
)

// Config holds the annotation client settings.
type Config struct {
	// BaseURL is the root URL of the annotation sidecar.
	BaseURL string
	// Timeout bounds a single annotation request.
	Timeout time.Duration
	// Retry configures transient-failure retries.
	Retry service.RetryOptions
}

// Client calls the annotation sidecar over HTTP. The sidecar owns
// tokenization, lemmatization, entity recognition, and sentiment; this
// client only speaks the wire contract.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retry      service.RetryOptions
}

// NewClient creates an annotation client for the given sidecar.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: annotator URL is required", common.ErrMissingConfig)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		retry:   cfg.Retry,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

type annotateRequest struct {
	Text string `json:"text"`
}

// Annotate sends text to the sidecar and returns its annotation. Transient
// failures (5xx, rate limits) are retried with exponential backoff.
func (c *Client) Annotate(ctx context.Context, text string) (*model.AnnotatedText, error) {
	var annotated *model.AnnotatedText

	err := common.WithRetry(ctx, func() error {
		result, reqErr := c.annotateOnce(ctx, text)
		if reqErr != nil {
			return reqErr
		}
		annotated = result
		return nil
	}, c.retry)
	if err != nil {
		return nil, err
	}

	annotated.Normalize()
	if annotated.RawText == "" {
		annotated.RawText = text
	}
	// Older sidecar versions omit risk scoring; fill it in locally.
	if annotated.RiskScore == 0 {
		annotated.RiskScore = AssessRisk(annotated)
	}

	return annotated, nil
}

func (c *Client) annotateOnce(ctx context.Context, text string) (*model.AnnotatedText, error) {
	body, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/annotate", strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("%w: %v", common.ErrAnnotatorUnavailable, err),
			Retryable: true,
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, common.ErrRateLimit
	case resp.StatusCode >= 500:
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("%w: status %d", common.ErrAnnotatorUnavailable, resp.StatusCode),
			Retryable: true,
		}
	case resp.StatusCode != http.StatusOK:
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("%w: status %d: %s", common.ErrAnnotationFailed, resp.StatusCode, string(respBody)),
			Retryable: false,
		}
	}

	var annotated model.AnnotatedText
	if err := json.Unmarshal(respBody, &annotated); err != nil {
		return nil, fmt.Errorf("failed to decode annotation: %w", err)
	}

	return &annotated, nil
}
