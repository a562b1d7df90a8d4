package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"flashcards/internal/application"
)

const wavHeaderSize = 44

var ErrNotWAV = errors.New("not a PCM wav file")

// EncodeWAV wraps raw little-endian PCM in a canonical 44-byte RIFF header.
func EncodeWAV(pcm []byte, format application.AudioFormat) []byte {
	var buf bytes.Buffer
	buf.Grow(wavHeaderSize + len(pcm))

	blockAlign := format.Channels * format.BitDepth / 8
	byteRate := format.SampleRate * blockAlign

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(format.Channels))
	binary.Write(&buf, binary.LittleEndian, uint32(format.SampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(format.BitDepth))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

// DecodeWAV returns the PCM payload and format of a RIFF/WAVE PCM file. Chunks
// other than "fmt " and "data" are skipped.
func DecodeWAV(data []byte) ([]byte, application.AudioFormat, error) {
	var format application.AudioFormat

	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, format, ErrNotWAV
	}

	haveFmt := false
	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		if body+size > len(data) {
			size = len(data) - body
		}

		switch id {
		case "fmt ":
			if size < 16 || binary.LittleEndian.Uint16(data[body:]) != 1 {
				return nil, format, ErrNotWAV
			}
			format.Channels = int(binary.LittleEndian.Uint16(data[body+2:]))
			format.SampleRate = int(binary.LittleEndian.Uint32(data[body+4:]))
			format.BitDepth = int(binary.LittleEndian.Uint16(data[body+14:]))
			haveFmt = true
		case "data":
			if !haveFmt {
				return nil, format, fmt.Errorf("%w: data chunk before fmt chunk", ErrNotWAV)
			}
			return data[body : body+size], format, nil
		}

		pos = body + size + size%2
	}

	return nil, format, fmt.Errorf("%w: missing data chunk", ErrNotWAV)
}

func WriteWAV(path string, pcm []byte, format application.AudioFormat) error {
	if err := os.WriteFile(path, EncodeWAV(pcm, format), 0644); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}
	return nil
}

// DebugFilename names a saved capture after the time it was taken.
func DebugFilename(t time.Time) string {
	return "answer_" + t.Format("20060102_150405") + ".wav"
}

// DebugRecorder saves every clip it passes through as a WAV file in dir.
type DebugRecorder struct {
	next   application.Recorder
	dir    string
	format application.AudioFormat
	logger *slog.Logger
	now    func() time.Time
}

func NewDebugRecorder(next application.Recorder, dir string, format application.AudioFormat, logger *slog.Logger) *DebugRecorder {
	return &DebugRecorder{next: next, dir: dir, format: format, logger: logger, now: time.Now}
}

func (d *DebugRecorder) Name() string {
	return d.next.Name() + "+debug"
}

func (d *DebugRecorder) Record(ctx context.Context, seconds int) ([]byte, error) {
	pcm, err := d.next.Record(ctx, seconds)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(d.dir, DebugFilename(d.now()))
	if err := WriteWAV(path, pcm, d.format); err != nil {
		return nil, fmt.Errorf("saving debug capture: %w", err)
	}
	d.logger.Info("audio saved", "path", path, "bytes", len(pcm))

	return pcm, nil
}
