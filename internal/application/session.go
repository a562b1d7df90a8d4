package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"flashcards/internal/domain"
)

type SessionState string

const (
	StateIdle           SessionState = "idle"
	StatePresenting     SessionState = "presenting"
	StateAwaitingAnswer SessionState = "awaiting_answer"
	StateScoring        SessionState = "scoring"
	StateExited         SessionState = "exited"
)

type SessionOptions struct {
	// RecordSeconds is the length of every recording and of the countdown.
	RecordSeconds int
	// CountdownStep defaults to DefaultCountdownStep.
	CountdownStep time.Duration
	// Resume gates the cycle that follows an aborted one. Defaults to a one second pause.
	Resume Trigger
}

// Session asks one problem at a time until the user asks to stop. A problem stays
// active until it is answered correctly.
type Session struct {
	recorder    Recorder
	stt         SpeechToText
	interpreter AnswerInterpreter
	problems    ProblemSource
	misses      MissLog
	display     Display
	notifier    Notifier
	logger      *slog.Logger

	countdown *Countdown
	seconds   int
	resume    Trigger

	mu      sync.RWMutex
	state   SessionState
	current *domain.Problem
	score   Score
}

func NewSession(
	recorder Recorder,
	stt SpeechToText,
	interpreter AnswerInterpreter,
	problems ProblemSource,
	misses MissLog,
	display Display,
	notifier Notifier,
	logger *slog.Logger,
	opts SessionOptions,
) *Session {
	if display == nil {
		display = NoopDisplay{}
	}
	if notifier == nil {
		notifier = &NoopNotifier{}
	}
	if opts.Resume == nil {
		opts.Resume = DelayTrigger{Delay: time.Second}
	}
	return &Session{
		recorder:    recorder,
		stt:         stt,
		interpreter: interpreter,
		problems:    problems,
		misses:      misses,
		display:     display,
		notifier:    notifier,
		logger:      logger,
		countdown:   NewCountdown(display, opts.CountdownStep),
		seconds:     opts.RecordSeconds,
		resume:      opts.Resume,
		state:       StateIdle,
	}
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) Score() Score {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score
}

// Current returns the active problem, if any.
func (s *Session) Current() (domain.Problem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Problem{}, false
	}
	return *s.current, true
}

func (s *Session) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Run drives cycles until the user asks to exit or ctx is done. A cycle that
// aborts leaves no trace besides a debug log line; the next one starts once the
// resume trigger fires.
func (s *Session) Run(ctx context.Context) error {
	defer s.countdown.Stop()

	s.logger.Info("session started", "recorder", s.recorder.Name(), "record_seconds", s.seconds)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome := s.RunCycle(ctx)

		switch outcome.Kind {
		case domain.OutcomeExit:
			s.finish(ctx)
			return nil
		case domain.OutcomeAborted:
			if err := ctx.Err(); err != nil {
				return err
			}
			s.logger.Debug("cycle aborted", "question", outcome.Problem.Question(), "error", outcome.Err)
			if err := s.resume.Wait(ctx); err != nil {
				return err
			}
		default:
			s.logger.Debug("cycle completed",
				"question", outcome.Problem.Question(),
				"outcome", outcome.Kind,
				"transcript", outcome.Transcript,
			)
		}
	}
}

// RunCycle asks the active problem once: present, record, transcribe, interpret
// and score. Collaborator failures come back as an Aborted outcome with the score
// and the miss log untouched.
func (s *Session) RunCycle(ctx context.Context) domain.Outcome {
	if s.State() == StateExited {
		return domain.Outcome{Kind: domain.OutcomeExit}
	}

	problem := s.present()

	transcript, reply, err := s.ask(ctx, problem)
	if err != nil {
		s.setState(StateIdle)
		return domain.Outcome{Kind: domain.OutcomeAborted, Problem: problem, Transcript: transcript, Err: err}
	}

	outcome, err := s.settle(problem, transcript, reply)
	if err != nil {
		s.setState(StateIdle)
		return domain.Outcome{Kind: domain.OutcomeAborted, Problem: problem, Transcript: transcript, Err: err}
	}

	s.display.Show(Event{Kind: EventResult, Outcome: outcome})
	if outcome.Kind != domain.OutcomeExit {
		s.display.Show(Event{Kind: EventScore, Score: s.Score()})
	}

	return outcome
}

func (s *Session) present() domain.Problem {
	s.mu.Lock()
	if s.current == nil {
		p := s.problems.Generate()
		s.current = &p
	}
	problem := *s.current
	s.state = StatePresenting
	s.mu.Unlock()

	s.display.Show(Event{Kind: EventQuestion, Problem: problem})
	return problem
}

func (s *Session) ask(ctx context.Context, problem domain.Problem) (string, string, error) {
	s.setState(StateAwaitingAnswer)
	s.display.Show(Event{Kind: EventRecording})

	s.countdown.Start(ctx, time.Duration(s.seconds)*time.Second)

	audio, err := s.recorder.Record(ctx, s.seconds)
	if err != nil {
		return "", "", fmt.Errorf("recording answer: %w", err)
	}

	s.setState(StateScoring)
	s.display.Show(Event{Kind: EventTranscribing})

	transcript, err := s.stt.Transcribe(ctx, audio)
	if err != nil {
		return "", "", fmt.Errorf("transcribing answer: %w", err)
	}

	s.display.Show(Event{Kind: EventTranscribed, Text: transcript})

	reply, err := s.interpreter.Interpret(ctx, transcript, problem.Expected)
	if err != nil {
		return transcript, "", fmt.Errorf("interpreting answer: %w", err)
	}

	return transcript, reply, nil
}

func (s *Session) settle(problem domain.Problem, transcript, reply string) (domain.Outcome, error) {
	outcome := domain.Outcome{Problem: problem, Transcript: transcript, Reply: reply}

	switch domain.Classify(reply, problem.Expected) {
	case domain.ClassExit:
		s.setState(StateExited)
		outcome.Kind = domain.OutcomeExit
		return outcome, nil

	case domain.ClassMatch:
		s.mu.Lock()
		s.score.Correct++
		s.current = nil
		s.state = StateIdle
		s.mu.Unlock()
		outcome.Kind = domain.OutcomeCorrect
		return outcome, nil

	case domain.ClassUnclear:
		outcome.Kind = domain.OutcomeUnclear
	default:
		outcome.Kind = domain.OutcomeIncorrect
	}

	miss := domain.Miss{
		Question:      problem.Question(),
		CorrectAnswer: problem.Expected,
		UserAnswer:    transcript,
	}
	if err := s.misses.Append(miss); err != nil {
		return outcome, fmt.Errorf("logging miss: %w", err)
	}

	s.mu.Lock()
	s.score.Incorrect++
	s.state = StateIdle
	s.mu.Unlock()

	return outcome, nil
}

func (s *Session) finish(ctx context.Context) {
	score := s.Score()
	s.logger.Info("session finished", "correct", score.Correct, "incorrect", score.Incorrect, "average", score.AverageString())

	if err := s.notifier.Notify(ctx, "Flashcards session finished. "+score.String()); err != nil {
		s.logger.Error("notifying session summary", "error", err)
	}
}
