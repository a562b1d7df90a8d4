package infra_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flashcards/internal/infra"
)

func fastRetry(attempts int) infra.RetryConfig {
	cfg := infra.DefaultRetryConfig().WithAttempts(attempts)
	cfg.InitialDelay = time.Millisecond
	cfg.MaxDelay = time.Millisecond
	return cfg
}

func TestWithRetry_SingleAttemptByDefault(t *testing.T) {
	calls := 0
	err := infra.WithRetry(context.Background(), infra.DefaultRetryConfig(), func() error {
		calls++
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}

func TestWithRetry_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := infra.WithRetry(context.Background(), fastRetry(3), func() error {
		calls++
		if calls < 3 {
			return errors.New("503")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithRetry error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
}

func TestWithRetry_PermanentStops(t *testing.T) {
	sentinel := errors.New("401")
	calls := 0
	err := infra.WithRetry(context.Background(), fastRetry(5), func() error {
		calls++
		return infra.Permanent(sentinel)
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("err: got %v, want sentinel", err)
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}

func TestIsRetryableHTTPStatus(t *testing.T) {
	for status, want := range map[int]bool{200: false, 400: false, 401: false, 429: true, 500: true, 503: true} {
		if got := infra.IsRetryableHTTPStatus(status); got != want {
			t.Errorf("%d: got %v, want %v", status, got, want)
		}
	}
}
