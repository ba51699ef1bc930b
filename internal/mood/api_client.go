package mood

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// APIClassifier asks an external sentiment service for the mood label.
type APIClassifier struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewAPIClassifier creates a classifier against the given base URL.
// The API key may be empty for services without authentication.
func NewAPIClassifier(baseURL, apiKey string, retryAttempts uint) *APIClassifier {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}

	return &APIClassifier{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (c *APIClassifier) Close() error {
	return c.httpClient.Close()
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Label string `json:"label"`
}

// Classify posts the text to the sentiment endpoint, retrying transient
// failures with backoff. The service must answer with one of the known
// labels; anything else is an error so a bad deployment surfaces instead of
// polluting the history.
func (c *APIClassifier) Classify(ctx context.Context, text string) (string, error) {
	var result string
	if err := retry.Do(
		func() error {
			label, err := c.classify(ctx, text)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = label
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return result, nil
}

func (c *APIClassifier) classify(ctx context.Context, text string) (string, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(classifyRequest{Text: text}).
		SetResult(&classifyResponse{}).
		Post("/classify")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	body := response.Result().(*classifyResponse)
	switch body.Label {
	case LabelMotivated, LabelStuck, LabelNeutral:
		return body.Label, nil
	}
	return "", fmt.Errorf("unexpected mood label %q", body.Label)
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}
