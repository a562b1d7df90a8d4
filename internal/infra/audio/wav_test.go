package audio_test

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"flashcards/internal/application"
	"flashcards/internal/infra/audio"
)

func TestEncodeWAV_Header(t *testing.T) {
	pcm := []byte{1, 0, 2, 0, 3, 0}
	wav := audio.EncodeWAV(pcm, application.DefaultAudioFormat())

	if len(wav) != 44+len(pcm) {
		t.Fatalf("length: got %d, want %d", len(wav), 44+len(pcm))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" || string(wav[36:40]) != "data" {
		t.Fatalf("bad chunk ids: %q", wav[:40])
	}

	checks := []struct {
		name   string
		offset int
		size   int
		want   uint32
	}{
		{"riff size", 4, 4, uint32(36 + len(pcm))},
		{"audio format", 20, 2, 1},
		{"channels", 22, 2, 1},
		{"sample rate", 24, 4, 44100},
		{"byte rate", 28, 4, 88200},
		{"block align", 32, 2, 2},
		{"bits per sample", 34, 2, 16},
		{"data size", 40, 4, uint32(len(pcm))},
	}
	for _, c := range checks {
		var got uint32
		if c.size == 2 {
			got = uint32(binary.LittleEndian.Uint16(wav[c.offset:]))
		} else {
			got = binary.LittleEndian.Uint32(wav[c.offset:])
		}
		if got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, got, c.want)
		}
	}
}

func TestDecodeWAV_SkipsUnknownChunks(t *testing.T) {
	wav := audio.EncodeWAV([]byte{9, 9, 8, 8}, application.DefaultAudioFormat())

	// Insert a LIST chunk between fmt and data.
	list := append([]byte("LIST"), 3, 0, 0, 0, 'a', 'b', 'c', 0)
	withList := append(append(append([]byte{}, wav[:36]...), list...), wav[36:]...)

	pcm, format, err := audio.DecodeWAV(withList)
	if err != nil {
		t.Fatalf("DecodeWAV error: %v", err)
	}
	if string(pcm) != string([]byte{9, 9, 8, 8}) {
		t.Errorf("pcm: got %v", pcm)
	}
	if format.SampleRate != 44100 || format.Channels != 1 || format.BitDepth != 16 {
		t.Errorf("format: got %+v", format)
	}
}

func TestDecodeWAV_Rejects(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("ID3 not a wav file"), []byte("RIFF\x00\x00\x00\x00WAVE")} {
		if _, _, err := audio.DecodeWAV(data); !errors.Is(err, audio.ErrNotWAV) {
			t.Errorf("DecodeWAV(%q): got %v, want ErrNotWAV", data, err)
		}
	}
}

func TestDebugFilename(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	if got := audio.DebugFilename(ts); got != "answer_20240309_140507.wav" {
		t.Errorf("got %s", got)
	}
}

type staticRecorder struct {
	pcm []byte
}

func (s *staticRecorder) Name() string { return "static" }

func (s *staticRecorder) Record(_ context.Context, _ int) ([]byte, error) {
	return s.pcm, nil
}

func TestDebugRecorder_SavesCapture(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := audio.NewDebugRecorder(&staticRecorder{pcm: []byte{1, 2, 3, 4}}, dir, application.DefaultAudioFormat(), logger)

	pcm, err := rec.Record(context.Background(), 3)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if len(pcm) != 4 {
		t.Errorf("pcm: got %d bytes, want 4", len(pcm))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "answer_") {
		t.Fatalf("expected one answer_*.wav, got %v", entries)
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	saved, _, err := audio.DecodeWAV(data)
	if err != nil {
		t.Fatalf("saved file is not a wav: %v", err)
	}
	if string(saved) != string([]byte{1, 2, 3, 4}) {
		t.Errorf("saved pcm: got %v", saved)
	}
}
