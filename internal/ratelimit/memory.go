package ratelimit

import (
	"context"
	"sync"
	"time"
)

const sweepThreshold = 10000

type window struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounter is an in-process Counter used when Redis is disabled.
type MemoryCounter struct {
	mu      sync.Mutex
	windows map[string]window
	now     func() time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{windows: make(map[string]window), now: time.Now}
}

func (m *MemoryCounter) IncrWindow(_ context.Context, key string, length time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if len(m.windows) >= sweepThreshold {
		for k, w := range m.windows {
			if !now.Before(w.expiresAt) {
				delete(m.windows, k)
			}
		}
	}

	w, ok := m.windows[key]
	if !ok || !now.Before(w.expiresAt) {
		w = window{expiresAt: now.Add(length)}
	}
	w.count++
	m.windows[key] = w
	return w.count, w.expiresAt.Sub(now), nil
}
