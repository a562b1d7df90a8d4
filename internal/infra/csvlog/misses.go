// Package csvlog keeps the append-only record of missed answers.
package csvlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"flashcards/internal/domain"
)

var Header = []string{"Question", "Correct Answer", "User Answer"}

type MissLog struct {
	path string
	mu   sync.Mutex
}

// Open makes sure the log exists and starts with the header row. An existing
// non-empty file is left as it is.
func Open(path string) (*MissLog, error) {
	l := &MissLog{path: path}
	if err := l.ensureHeader(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *MissLog) Path() string {
	return l.path
}

func (l *MissLog) ensureHeader() error {
	info, err := os.Stat(l.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking miss log: %w", err)
	}
	return l.write(Header)
}

func (l *MissLog) Append(miss domain.Miss) error {
	return l.write([]string{miss.Question, strconv.Itoa(miss.CorrectAnswer), miss.UserAnswer})
}

func (l *MissLog) write(record []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening miss log: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(record); err != nil {
		f.Close()
		return fmt.Errorf("writing miss log: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing miss log: %w", err)
	}

	return f.Close()
}

// ReadAll returns every logged miss, oldest first.
func (l *MissLog) ReadAll() ([]domain.Miss, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("opening miss log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)

	var misses []domain.Miss
	for line := 0; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading miss log: %w", err)
		}
		if line == 0 {
			continue
		}

		answer, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("miss log line %d: correct answer %q: %w", line+1, record[1], err)
		}
		misses = append(misses, domain.Miss{
			Question:      record[0],
			CorrectAnswer: answer,
			UserAnswer:    record[2],
		})
	}

	return misses, nil
}
