// Package ui renders session events on a terminal.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"flashcards/internal/application"
	"flashcards/internal/domain"
)

// Theme defines the color scheme for the terminal.
type Theme struct {
	Primary lipgloss.Color
	Good    lipgloss.Color
	Bad     lipgloss.Color
	Warn    lipgloss.Color
	Dim     lipgloss.Color
}

var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Good:    lipgloss.Color("#3fb950"),
	Bad:     lipgloss.Color("#f85149"),
	Warn:    lipgloss.Color("#d29922"),
	Dim:     lipgloss.Color("#6e7681"),
}

type Styles struct {
	Title    lipgloss.Style
	Question lipgloss.Style
	Good     lipgloss.Style
	Bad      lipgloss.Style
	Warn     lipgloss.Style
	Help     lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1),
		Question: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Good:     lipgloss.NewStyle().Bold(true).Foreground(t.Good),
		Bad:      lipgloss.NewStyle().Foreground(t.Bad),
		Warn:     lipgloss.NewStyle().Foreground(t.Warn),
		Help:     lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// Terminal is a line-oriented Display. Countdown ticks redraw one line in place;
// any other event first ends that line.
type Terminal struct {
	out    io.Writer
	styles Styles

	mu     sync.Mutex
	inline bool
}

func NewTerminal(out io.Writer, styles Styles) *Terminal {
	return &Terminal{out: out, styles: styles}
}

func (t *Terminal) Welcome() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, t.styles.Title.Render("Welcome to Flashcards!"))
	fmt.Fprintln(t.out, t.styles.Help.Render("Say the answer out loud. Say \"stop\" to quit."))
}

func (t *Terminal) Show(ev application.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ev.Kind == application.EventTick {
		fmt.Fprintf(t.out, "\r%s", t.styles.Help.Render(formatTimeLeft(ev.Remaining.Seconds())))
		t.inline = true
		return
	}

	if t.inline {
		fmt.Fprintln(t.out)
		t.inline = false
	}

	switch ev.Kind {
	case application.EventQuestion:
		fmt.Fprintln(t.out)
		fmt.Fprintln(t.out, t.styles.Question.Render(fmt.Sprintf("What is %s?", ev.Problem.Question())))
	case application.EventRecording:
		fmt.Fprintln(t.out, t.styles.Help.Render("Recording..."))
	case application.EventExpired:
		fmt.Fprintln(t.out, t.styles.Help.Render("Time's up."))
	case application.EventTranscribing:
		fmt.Fprintln(t.out, t.styles.Help.Render("Transcribing..."))
	case application.EventTranscribed:
		fmt.Fprintf(t.out, "Transcribed: %s\n", ev.Text)
	case application.EventResult:
		fmt.Fprintln(t.out, t.result(ev.Outcome))
	case application.EventScore:
		fmt.Fprintln(t.out, t.styles.Help.Render(formatScore(ev.Score)))
	}
}

func (t *Terminal) result(o domain.Outcome) string {
	switch o.Kind {
	case domain.OutcomeCorrect:
		return t.styles.Good.Render("Correct!")
	case domain.OutcomeUnclear:
		return t.styles.Warn.Render("Sorry, I didn't understand. Please try again.")
	case domain.OutcomeIncorrect:
		return t.styles.Bad.Render(fmt.Sprintf("Incorrect. The correct answer is %d. Let's try again.", o.Problem.Expected))
	case domain.OutcomeExit:
		return t.styles.Title.Render("Goodbye!")
	default:
		return ""
	}
}

func formatTimeLeft(seconds float64) string {
	return fmt.Sprintf("Time left: %.1fs", seconds)
}

func formatScore(s application.Score) string {
	return strings.Join([]string{
		fmt.Sprintf("Correct: %d", s.Correct),
		fmt.Sprintf("Incorrect: %d", s.Incorrect),
		"Average: " + s.AverageString(),
	}, "  ")
}
