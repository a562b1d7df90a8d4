package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"flashcards/config"
	"flashcards/internal/application"
	"flashcards/internal/infra/audio"
	"flashcards/internal/infra/csvlog"
	"flashcards/internal/ui"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "flashcards",
		Short:         "Spoken multiplication flashcards",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runQuiz(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "devices",
			Short: "List audio input devices",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return listDevices(cmd)
			},
		},
		&cobra.Command{
			Use:   "misses",
			Short: "Print the missed-answer log",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				return printMisses(cmd, cfg.Misses.Path)
			},
		},
	)

	return root
}

func runQuiz(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	logger, closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	logger = logger.With("session", uuid.NewString())

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	misses, err := csvlog.Open(cfg.Misses.Path)
	if err != nil {
		return err
	}

	styles := ui.NewStyles(ui.DefaultTheme)
	terminal := ui.NewTerminal(os.Stdout, styles)

	session := application.NewSession(
		createRecorder(cfg, logger),
		createTranscriber(cfg),
		createInterpreter(cfg),
		application.NewProblemGenerator(cfg.MinValue(), cfg.MaxValue(), nil),
		misses,
		terminal,
		createNotifier(cfg.Pushover),
		logger,
		application.SessionOptions{
			RecordSeconds: cfg.RecordDuration(),
			Resume:        ui.NewLineTrigger(os.Stdin, os.Stdout, styles),
		},
	)

	logger.Info("starting flashcards",
		"audio_source", cfg.Audio.Source,
		"interpreter", cfg.Interpreter.Provider,
		"min_value", cfg.MinValue(),
		"max_value", cfg.MaxValue(),
	)

	terminal.Welcome()

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

func listDevices(cmd *cobra.Command) error {
	devices, err := audio.InputDevices()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCHANNELS\tSAMPLE RATE\tDEFAULT")
	for _, d := range devices {
		def := ""
		if d.IsDefault {
			def = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%s\n", d.Name, d.MaxInputChannels, d.DefaultSampleRate, def)
	}
	return w.Flush()
}

func printMisses(cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(cmd.OutOrStdout(), "No missed answers yet.")
		return nil
	}

	log, err := csvlog.Open(path)
	if err != nil {
		return err
	}
	misses, err := log.ReadAll()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUESTION\tCORRECT ANSWER\tUSER ANSWER")
	for _, m := range misses {
		fmt.Fprintf(w, "%s\t%d\t%s\n", m.Question, m.CorrectAnswer, m.UserAnswer)
	}
	return w.Flush()
}
