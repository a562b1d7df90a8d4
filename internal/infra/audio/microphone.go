//go:build portaudio
// +build portaudio

package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gordonklaus/portaudio"

	"flashcards/internal/application"
	"flashcards/internal/domain"
)

type MicrophoneRecorder struct {
	format application.AudioFormat
	logger *slog.Logger
}

func NewMicrophoneRecorder(format application.AudioFormat, logger *slog.Logger) *MicrophoneRecorder {
	return &MicrophoneRecorder{
		format: format,
		logger: logger,
	}
}

func (m *MicrophoneRecorder) Name() string {
	return "microphone"
}

// Record opens the default input device for the length of one clip. Input
// overflows and failed reads are logged and skipped; the clip is whatever was
// gathered.
func (m *MicrophoneRecorder) Record(ctx context.Context, seconds int) ([]byte, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: initializing portaudio: %w", domain.ErrDevice, err)
	}
	defer portaudio.Terminate()

	buffer := make([]int16, m.format.FramesPerBuffer)

	stream, err := portaudio.OpenDefaultStream(
		m.format.Channels,
		0,
		float64(m.format.SampleRate),
		m.format.FramesPerBuffer,
		buffer,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: opening stream: %w", domain.ErrDevice, err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("%w: starting stream: %w", domain.ErrDevice, err)
	}
	defer stream.Stop()

	reads := m.format.Reads(seconds)
	pcm := make([]byte, 0, reads*len(buffer)*2)

	for i := 0; i < reads; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := stream.Read(); err != nil {
			if !errors.Is(err, portaudio.InputOverflowed) {
				m.logger.Warn("reading from microphone", "error", err)
				continue
			}
			m.logger.Warn("microphone input overflowed", "read", i)
		}

		for _, sample := range buffer {
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(sample))
		}
	}

	m.logger.Debug("recorded answer", "seconds", seconds, "bytes", len(pcm))
	return pcm, nil
}

type InputDevice struct {
	Name              string
	MaxInputChannels  int
	DefaultSampleRate float64
	IsDefault         bool
}

// InputDevices lists the devices that can record.
func InputDevices() ([]InputDevice, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: initializing portaudio: %w", domain.ErrDevice, err)
	}
	defer portaudio.Terminate()

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("%w: listing devices: %w", domain.ErrDevice, err)
	}

	var defaultName string
	if def, err := portaudio.DefaultInputDevice(); err == nil {
		defaultName = def.Name
	}

	var inputs []InputDevice
	for _, d := range devices {
		if d.MaxInputChannels == 0 {
			continue
		}
		inputs = append(inputs, InputDevice{
			Name:              d.Name,
			MaxInputChannels:  d.MaxInputChannels,
			DefaultSampleRate: d.DefaultSampleRate,
			IsDefault:         d.Name == defaultName,
		})
	}
	return inputs, nil
}
