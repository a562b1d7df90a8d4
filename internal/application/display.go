package application

import (
	"time"

	"flashcards/internal/domain"
)

type EventKind string

const (
	EventQuestion     EventKind = "question"
	EventRecording    EventKind = "recording"
	EventTick         EventKind = "tick"
	EventExpired      EventKind = "expired"
	EventTranscribing EventKind = "transcribing"
	EventTranscribed  EventKind = "transcribed"
	EventResult       EventKind = "result"
	EventScore        EventKind = "score"
)

// Event is a message for the display layer. Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Problem   domain.Problem
	Remaining time.Duration
	Text      string
	Outcome   domain.Outcome
	Score     Score
}

// Display renders session events. Tick and Expired arrive from the countdown
// goroutine, so implementations must tolerate concurrent calls.
type Display interface {
	Show(ev Event)
}

type NoopDisplay struct{}

func (NoopDisplay) Show(Event) {}
