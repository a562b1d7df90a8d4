package audio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"flashcards/internal/application"
)

// FileRecorder replays pre-recorded answers. Each Record call takes the oldest
// unplayed .wav in dir, renames it to *.played and returns its PCM payload. It
// waits for a file to appear when the directory is empty.
type FileRecorder struct {
	dir    string
	poll   time.Duration
	format application.AudioFormat
	logger *slog.Logger

	mu     sync.Mutex
	played map[string]bool
}

func NewFileRecorder(dir string, format application.AudioFormat, logger *slog.Logger) *FileRecorder {
	return &FileRecorder{
		dir:    dir,
		poll:   500 * time.Millisecond,
		format: format,
		logger: logger,
		played: make(map[string]bool),
	}
}

func (f *FileRecorder) Name() string {
	return "file"
}

func (f *FileRecorder) Record(ctx context.Context, _ int) ([]byte, error) {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return nil, fmt.Errorf("creating answer dir: %w", err)
	}

	ticker := time.NewTicker(f.poll)
	defer ticker.Stop()

	for {
		pcm, ok, err := f.next()
		if err != nil {
			return nil, err
		}
		if ok {
			return pcm, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (f *FileRecorder) next() ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, false, fmt.Errorf("reading dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".wav") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(f.dir, name)
		if f.played[path] {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, false, fmt.Errorf("reading file %s: %w", path, err)
		}
		f.played[path] = true

		if err := os.Rename(path, path+".played"); err != nil {
			f.logger.Warn("marking answer file as played", "path", path, "error", err)
		}

		pcm, format, err := DecodeWAV(data)
		if err != nil {
			return nil, false, fmt.Errorf("decoding %s: %w", path, err)
		}
		if format.SampleRate != f.format.SampleRate || format.Channels != f.format.Channels || format.BitDepth != f.format.BitDepth {
			f.logger.Warn("answer file format differs from capture format",
				"path", path,
				"sample_rate", format.SampleRate,
				"channels", format.Channels,
				"bit_depth", format.BitDepth,
			)
		}

		return pcm, true, nil
	}

	return nil, false, nil
}
