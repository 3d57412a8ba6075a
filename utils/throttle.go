package utils

import (
	"context"
	"time"
)

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Throttle spaces out sequential page requests with fixed pauses.
type Throttle struct {
	sleep  SleepFunc
	waited time.Duration
}

// NewThrottle creates a Throttle. A nil sleep uses a real, context-aware timer.
func NewThrottle(sleep SleepFunc) *Throttle {
	if sleep == nil {
		sleep = sleepContext
	}
	return &Throttle{sleep: sleep}
}

// NewNopThrottle never pauses. Used by tests.
func NewNopThrottle() *Throttle {
	return NewThrottle(func(context.Context, time.Duration) error { return nil })
}

// Wait pauses for d. Non-positive durations return immediately.
func (t *Throttle) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	if err := t.sleep(ctx, d); err != nil {
		return err
	}
	t.waited += d
	return nil
}

// Waited reports the total pause time so far.
func (t *Throttle) Waited() time.Duration {
	return t.waited
}

// Seconds converts a fractional second count to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
