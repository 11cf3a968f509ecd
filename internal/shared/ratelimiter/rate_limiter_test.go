package ratelimiter

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_Unlimited(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0, time.Minute)
	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := rl.WaitIfNeeded(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("unlimited limiter should not wait, took %v", elapsed)
	}
}

func TestRateLimiter_SpacesRequests(t *testing.T) {
	t.Parallel()

	// 1秒あたり20回 = 50msごとに1回
	rl := NewRateLimiter(20, time.Second)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := rl.WaitIfNeeded(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// 1回目は即時、残り2回で約100ms
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("expected requests to be spaced, took only %v", elapsed)
	}
}

func TestRateLimiter_ContextCancellation(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Hour)
	if err := rl.WaitIfNeeded(context.Background()); err != nil {
		t.Fatalf("first call should not wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := rl.WaitIfNeeded(ctx); err == nil {
		t.Fatal("expected error due to context cancellation, got nil")
	}
}
