package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"flashcards/config"
	"flashcards/internal/application"
	"flashcards/internal/infra"
	"flashcards/internal/infra/anthropic"
	"flashcards/internal/infra/audio"
	"flashcards/internal/infra/gemini"
	"flashcards/internal/infra/openai"
	"flashcards/internal/infra/pushover"
)

func createRecorder(cfg *config.Config, logger *slog.Logger) application.Recorder {
	format := application.DefaultAudioFormat()

	var recorder application.Recorder
	switch cfg.Audio.Source {
	case "file":
		recorder = audio.NewFileRecorder(cfg.Audio.FileDir, format, logger)
	default:
		recorder = audio.NewMicrophoneRecorder(format, logger)
	}

	if cfg.Debug() {
		recorder = audio.NewDebugRecorder(recorder, cfg.Audio.DebugDir, format, logger)
	}
	return recorder
}

func createTranscriber(cfg *config.Config) application.SpeechToText {
	if cfg.Settings.APIKey == "" {
		return &application.NoopSTT{}
	}
	retry := infra.DefaultRetryConfig().WithAttempts(cfg.OpenAI.MaxAttempts)
	return openai.NewWhisperClientWithURL(
		cfg.Settings.APIKey,
		cfg.OpenAI.TranscriptionModel,
		cfg.OpenAI.BaseURL,
		application.DefaultAudioFormat(),
	).WithRetry(retry)
}

func createInterpreter(cfg *config.Config) application.AnswerInterpreter {
	ic := cfg.Interpreter
	retry := infra.DefaultRetryConfig().WithAttempts(cfg.OpenAI.MaxAttempts)

	switch ic.Provider {
	case "anthropic":
		if ic.BaseURL != "" {
			return anthropic.NewClaudeClientWithURL(ic.APIKey, ic.Model, ic.BaseURL).WithRetry(retry)
		}
		return anthropic.NewClaudeClient(ic.APIKey, ic.Model).WithRetry(retry)
	case "gemini":
		if ic.BaseURL != "" {
			return gemini.NewClientWithURL(ic.APIKey, ic.Model, ic.BaseURL).WithRetry(retry)
		}
		return gemini.NewClient(ic.APIKey, ic.Model).WithRetry(retry)
	default:
		baseURL := ic.BaseURL
		if baseURL == "" {
			baseURL = cfg.OpenAI.BaseURL
		}
		return openai.NewInterpreterWithURL(ic.APIKey, ic.Model, baseURL).WithRetry(retry)
	}
}

func createNotifier(cfg config.PushoverConfig) application.Notifier {
	if !cfg.Enabled {
		return &application.NoopNotifier{}
	}
	return pushover.NewClient(cfg.Token, cfg.UserKey)
}

// setupLogger writes to the configured file, or stderr so log lines do not
// interleave with the quiz on stdout.
func setupLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler), closeFn, nil
}
