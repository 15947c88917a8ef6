package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(1, 3)

	const chat = int64(42)
	for i := 0; i < 3; i++ {
		if !limiter.Allow(chat) {
			t.Errorf("request %d within burst denied", i)
		}
	}
	if limiter.Allow(chat) {
		t.Error("request beyond burst allowed")
	}
}

func TestLimiter_PerChatIsolation(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow(1) {
		t.Error("chat 1 first message denied")
	}
	if limiter.Allow(1) {
		t.Error("chat 1 second message allowed within the same second")
	}
	// A different chat has its own bucket.
	if !limiter.Allow(2) {
		t.Error("chat 2 first message denied")
	}
}

func TestLimiter_SetChatRate(t *testing.T) {
	limiter := NewLimiter(1, 1)
	limiter.SetChatRate(7, 100, 10)

	for i := 0; i < 10; i++ {
		if !limiter.Allow(7) {
			t.Errorf("custom-rate chat denied at request %d", i)
		}
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	limiter := NewLimiter(0.1, 1) // One message per 10s after the burst

	const chat = int64(9)
	if err := limiter.Wait(context.Background(), chat); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, chat); err == nil {
		t.Error("expected context deadline error, got nil")
	}
}
