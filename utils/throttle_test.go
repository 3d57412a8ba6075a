package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestThrottleRecordsPauses(t *testing.T) {
	var slept []time.Duration
	th := NewThrottle(func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	})

	ctx := context.Background()
	for _, d := range []time.Duration{2 * time.Second, 0, 4 * time.Second} {
		if err := th.Wait(ctx, d); err != nil {
			t.Fatalf("Wait(%v): %v", d, err)
		}
	}

	if len(slept) != 2 {
		t.Fatalf("sleeps: got %d, want 2", len(slept))
	}
	if th.Waited() != 6*time.Second {
		t.Errorf("waited: got %v, want 6s", th.Waited())
	}
}

func TestThrottleHonoursCancellation(t *testing.T) {
	th := NewThrottle(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := th.Wait(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if th.Waited() != 0 {
		t.Errorf("waited: got %v, want 0", th.Waited())
	}
}

func TestRealSleepWaitsAtLeastDuration(t *testing.T) {
	th := NewThrottle(nil)
	start := time.Now()
	if err := th.Wait(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("elapsed %v < 20ms", elapsed)
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(1.5); got != 1500*time.Millisecond {
		t.Errorf("Seconds(1.5): got %v, want 1.5s", got)
	}
}
