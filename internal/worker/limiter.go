package worker

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter implements per-chat rate limiting. Each chat gets its own
// token bucket so one busy chat cannot starve the others.
type Limiter struct {
	limiters     map[int64]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter
func NewLimiter(messagesPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     make(map[int64]*rate.Limiter),
		defaultRate:  rate.Limit(messagesPerSecond),
		defaultBurst: burst,
	}
}

// Wait waits for rate limit clearance for the given chat
func (l *Limiter) Wait(ctx context.Context, chatID int64) error {
	return l.getLimiter(chatID).Wait(ctx)
}

// Allow checks if a message from the chat is allowed without waiting
func (l *Limiter) Allow(chatID int64) bool {
	return l.getLimiter(chatID).Allow()
}

// getLimiter returns the rate limiter for a chat
func (l *Limiter) getLimiter(chatID int64) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[chatID]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[chatID]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[chatID] = limiter

	return limiter
}

// SetChatRate sets a custom rate limit for a specific chat
func (l *Limiter) SetChatRate(chatID int64, messagesPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}

	l.limiters[chatID] = rate.NewLimiter(rate.Limit(messagesPerSecond), burst)
}

// WaitWithDelay waits for rate limit clearance and adds an additional delay
func (l *Limiter) WaitWithDelay(ctx context.Context, chatID int64, additionalDelay time.Duration) error {
	if err := l.Wait(ctx, chatID); err != nil {
		return err
	}

	if additionalDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(additionalDelay):
		}
	}

	return nil
}
