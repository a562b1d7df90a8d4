//go:build !portaudio
// +build !portaudio

package audio

import (
	"context"
	"fmt"
	"log/slog"

	"flashcards/internal/application"
	"flashcards/internal/domain"
)

// MicrophoneRecorder stub when portaudio is not available
type MicrophoneRecorder struct {
	logger *slog.Logger
}

func NewMicrophoneRecorder(_ application.AudioFormat, logger *slog.Logger) *MicrophoneRecorder {
	return &MicrophoneRecorder{logger: logger}
}

func (m *MicrophoneRecorder) Name() string {
	return "microphone"
}

func (m *MicrophoneRecorder) Record(_ context.Context, _ int) ([]byte, error) {
	return nil, fmt.Errorf("%w: microphone not available, rebuild with -tags portaudio", domain.ErrDevice)
}

type InputDevice struct {
	Name              string
	MaxInputChannels  int
	DefaultSampleRate float64
	IsDefault         bool
}

func InputDevices() ([]InputDevice, error) {
	return nil, fmt.Errorf("%w: device listing not available, rebuild with -tags portaudio", domain.ErrDevice)
}
