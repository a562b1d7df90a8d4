package openai

import (
	"context"
	"fmt"
	"os"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"flashcards/internal/application"
	"flashcards/internal/domain"
	"flashcards/internal/infra"
	"flashcards/internal/infra/audio"
)

type WhisperClient struct {
	client  *goopenai.Client
	apiKey  string
	model   string
	format  application.AudioFormat
	tempDir string
	retry   infra.RetryConfig
}

func NewWhisperClient(apiKey, model string, format application.AudioFormat) *WhisperClient {
	return NewWhisperClientWithURL(apiKey, model, "", format)
}

func NewWhisperClientWithURL(apiKey, model, baseURL string, format application.AudioFormat) *WhisperClient {
	if model == "" {
		model = goopenai.Whisper1
	}
	return &WhisperClient{
		client: newClient(apiKey, baseURL),
		apiKey: apiKey,
		model:  model,
		format: format,
		retry:  infra.DefaultRetryConfig(),
	}
}

func (c *WhisperClient) WithRetry(cfg infra.RetryConfig) *WhisperClient {
	c.retry = cfg
	return c
}

// WithTempDir sets where the WAV upload is staged. Defaults to os.TempDir().
func (c *WhisperClient) WithTempDir(dir string) *WhisperClient {
	c.tempDir = dir
	return c
}

// Transcribe stages the PCM clip as a temporary WAV file, uploads it and removes
// the file once the response is in.
func (c *WhisperClient) Transcribe(ctx context.Context, pcm []byte) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("whisper: %w: api_key not set", domain.ErrConfigurationMissing)
	}

	path, err := c.stage(pcm)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	var resp goopenai.AudioResponse
	retryErr := infra.WithRetry(ctx, c.retry, func() error {
		var err error
		resp, err = c.client.CreateTranscription(ctx, goopenai.AudioRequest{
			Model:    c.model,
			FilePath: path,
		})
		if err != nil {
			return retryable(fmt.Errorf("whisper request: %w", err))
		}
		return nil
	})
	if retryErr != nil {
		return "", retryErr
	}

	return strings.TrimSpace(resp.Text), nil
}

func (c *WhisperClient) stage(pcm []byte) (string, error) {
	f, err := os.CreateTemp(c.tempDir, "answer-*.wav")
	if err != nil {
		return "", fmt.Errorf("creating temp wav: %w", err)
	}

	if _, err := f.Write(audio.EncodeWAV(pcm, c.format)); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing temp wav: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("closing temp wav: %w", err)
	}

	return f.Name(), nil
}
