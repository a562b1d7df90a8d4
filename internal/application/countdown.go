package application

import (
	"context"
	"sync"
	"time"
)

const DefaultCountdownStep = 100 * time.Millisecond

// Countdown shows the time left while an answer is recorded. It owns only the
// remaining time; rendering belongs to the Display it reports to. The recording
// itself never waits on it.
type Countdown struct {
	display Display
	step    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewCountdown(display Display, step time.Duration) *Countdown {
	if step <= 0 {
		step = DefaultCountdownStep
	}
	return &Countdown{display: display, step: step}
}

// Start resets the countdown to d and runs it in the background, replacing any
// run still in progress. The returned channel is closed when this run ends.
func (c *Countdown) Start(ctx context.Context, d time.Duration) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	go func() {
		defer close(done)
		c.run(runCtx, d)
	}()

	return done
}

// Stop ends the current run, if any, without emitting Expired.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Countdown) stopLocked() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
	c.done = nil
}

func (c *Countdown) run(ctx context.Context, d time.Duration) {
	remaining := max(d, 0)

	ticker := time.NewTicker(c.step)
	defer ticker.Stop()

	for remaining > 0 {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		remaining = max(remaining-c.step, 0)
		c.display.Show(Event{Kind: EventTick, Remaining: remaining})
	}

	c.display.Show(Event{Kind: EventExpired})
}
