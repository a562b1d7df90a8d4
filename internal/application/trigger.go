package application

import (
	"context"
	"time"
)

// Trigger blocks until the next cycle may start after an aborted one.
type Trigger interface {
	Wait(ctx context.Context) error
}

// DelayTrigger starts the next cycle after a fixed pause.
type DelayTrigger struct {
	Delay time.Duration
}

func (d DelayTrigger) Wait(ctx context.Context) error {
	if d.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
