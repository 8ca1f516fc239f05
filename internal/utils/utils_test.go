package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitForReturnsOnContextCancel(t *testing.T) {
	release := make(chan struct{})
	original := sleep
	sleep = func(time.Duration) { <-release }
	t.Cleanup(func() {
		close(release)
		sleep = original
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitFor(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWaitForSleeps(t *testing.T) {
	var slept time.Duration
	original := sleep
	sleep = func(d time.Duration) { slept = d }
	t.Cleanup(func() { sleep = original })

	if err := WaitFor(context.Background(), 3*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slept != 3*time.Second {
		t.Fatalf("expected sleep of 3s, got %s", slept)
	}

	slept = 0
	if err := WaitFor(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slept != 0 {
		t.Fatalf("expected no sleep for zero duration")
	}
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attempt int
		expect  time.Duration
	}{
		{attempt: 0, expect: 0},
		{attempt: 1, expect: time.Second},
		{attempt: 2, expect: 2 * time.Second},
		{attempt: 3, expect: 4 * time.Second},
		{attempt: 4, expect: 5 * time.Second},
		{attempt: 40, expect: 5 * time.Second},
	}

	for _, tt := range tests {
		if got := Backoff(tt.attempt, time.Second, 5*time.Second); got != tt.expect {
			t.Fatalf("attempt %d: expected %s, got %s", tt.attempt, tt.expect, got)
		}
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := map[float64]float64{
		75:          75,
		33.333333:   33.33,
		66.666666:   66.67,
		0.005000001: 0.01,
		-1.234:      -1.23,
	}

	for in, expect := range tests {
		if got := Round2(in); got != expect {
			t.Fatalf("Round2(%v): expected %v, got %v", in, expect, got)
		}
	}
}

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{name: "non-positive limit", input: "résumé text", limit: 0, expect: ""},
		{name: "short input untouched", input: "python", limit: 10, expect: "python"},
		{name: "counts runes not bytes", input: "résumé parser", limit: 6, expect: "résumé..."},
		{name: "trims before measuring", input: "  prompt  ", limit: 6, expect: "prompt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
