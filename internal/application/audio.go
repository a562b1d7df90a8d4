package application

import "context"

// Recorder captures a fixed-length clip of raw PCM from an input device.
type Recorder interface {
	Record(ctx context.Context, seconds int) ([]byte, error)
	Name() string
}

type AudioFormat struct {
	SampleRate      int
	Channels        int
	BitDepth        int
	FramesPerBuffer int
}

func DefaultAudioFormat() AudioFormat {
	return AudioFormat{
		SampleRate:      44100,
		Channels:        1,
		BitDepth:        16,
		FramesPerBuffer: 4096,
	}
}

// Reads returns how many buffers make up a clip of the given length.
func (f AudioFormat) Reads(seconds int) int {
	return int(float64(f.SampleRate) / float64(f.FramesPerBuffer) * float64(seconds))
}
