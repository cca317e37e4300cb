package ratelimit

import (
	"context"
	"fmt"
	"time"

	"ialynk-server/internal/observability"
)

// Counter increments a windowed counter. It returns the count so far in the
// current window and the time left before the window resets.
type Counter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Service applies fixed-window request budgets. The Redis client is used as the counter
// when enabled so budgets hold across replicas; MemoryCounter covers single-node setups.
type Service struct {
	counter Counter
	window  time.Duration
	logger  *observability.Logger
	now     func() time.Time
}

func NewService(counter Counter, logger *observability.Logger) *Service {
	return &Service{
		counter: counter,
		window:  time.Minute,
		logger:  logger,
		now:     time.Now,
	}
}

// Check counts one request for subject within scope against limit.
func (s *Service) Check(ctx context.Context, scope, subject string, limit int) (Result, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", scope, subject)
	count, ttl, err := s.counter.IncrWindow(ctx, key, s.window)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if ttl <= 0 {
		ttl = s.window
	}

	result := Result{Limit: limit, ResetAt: s.now().Add(ttl)}
	if count > int64(limit) {
		result.RetryAfter = ttl
		return result, nil
	}
	result.Allowed = true
	result.Remaining = limit - int(count)
	return result, nil
}
