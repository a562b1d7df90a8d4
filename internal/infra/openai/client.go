package openai

import (
	"errors"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"flashcards/internal/infra"
)

func newClient(apiKey, baseURL string) *goopenai.Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	return goopenai.NewClientWithConfig(cfg)
}

// retryable leaves transient API failures retryable and marks the rest permanent.
func retryable(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && !infra.IsRetryableHTTPStatus(apiErr.HTTPStatusCode) {
		return infra.Permanent(err)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && !infra.IsRetryableHTTPStatus(reqErr.HTTPStatusCode) {
		return infra.Permanent(err)
	}
	return err
}
