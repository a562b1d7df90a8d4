package application

import (
	"context"
	"fmt"

	"flashcards/internal/domain"
)

type SpeechToText interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// NoopSTT stands in when no credential is configured. Every call fails, which
// aborts the cycle that made it.
type NoopSTT struct{}

func (n *NoopSTT) Transcribe(_ context.Context, _ []byte) (string, error) {
	return "", fmt.Errorf("speech-to-text: set settings.api_key to enable transcription: %w", domain.ErrConfigurationMissing)
}
