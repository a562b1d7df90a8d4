package ui_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"flashcards/internal/application"
	"flashcards/internal/domain"
	"flashcards/internal/ui"
)

func plainStyles() ui.Styles {
	plain := lipgloss.NewStyle()
	return ui.Styles{Title: plain, Question: plain, Good: plain, Bad: plain, Warn: plain, Help: plain}
}

func TestTerminal_RendersCycle(t *testing.T) {
	var buf bytes.Buffer
	term := ui.NewTerminal(&buf, plainStyles())

	problem := domain.NewProblem(7, 5)
	events := []application.Event{
		{Kind: application.EventQuestion, Problem: problem},
		{Kind: application.EventRecording},
		{Kind: application.EventTick, Remaining: 2900 * time.Millisecond},
		{Kind: application.EventTick, Remaining: 0},
		{Kind: application.EventExpired},
		{Kind: application.EventTranscribing},
		{Kind: application.EventTranscribed, Text: "thirty six"},
		{Kind: application.EventResult, Outcome: domain.Outcome{Kind: domain.OutcomeIncorrect, Problem: problem}},
		{Kind: application.EventScore, Score: application.Score{Correct: 1, Incorrect: 1}},
	}
	for _, ev := range events {
		term.Show(ev)
	}

	out := buf.String()
	for _, want := range []string{
		"What is 7 x 5?",
		"Recording...",
		"\rTime left: 2.9s",
		"\rTime left: 0.0s\n",
		"Transcribed: thirty six",
		"Incorrect. The correct answer is 35. Let's try again.",
		"Correct: 1  Incorrect: 1  Average: 50.0%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminal_ResultMessages(t *testing.T) {
	tests := []struct {
		kind domain.OutcomeKind
		want string
	}{
		{domain.OutcomeCorrect, "Correct!"},
		{domain.OutcomeUnclear, "Sorry, I didn't understand. Please try again."},
		{domain.OutcomeExit, "Goodbye!"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		ui.NewTerminal(&buf, plainStyles()).Show(application.Event{
			Kind:    application.EventResult,
			Outcome: domain.Outcome{Kind: tt.kind},
		})
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("%s: got %q, want %q", tt.kind, buf.String(), tt.want)
		}
	}
}

func TestLineTrigger(t *testing.T) {
	var out bytes.Buffer
	trigger := ui.NewLineTrigger(strings.NewReader("\n"), &out, plainStyles())

	if err := trigger.Wait(context.Background()); err != nil {
		t.Fatalf("Wait error: %v", err)
	}
	if !strings.Contains(out.String(), "Press Enter") {
		t.Errorf("prompt not shown: %q", out.String())
	}

	if err := trigger.Wait(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("after input closed: got %v, want EOF", err)
	}
}

func TestLineTrigger_Canceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	trigger := ui.NewLineTrigger(pr, io.Discard, plainStyles())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := trigger.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
