// Package store provides the in-memory rate-limit store. State lives for the
// lifetime of one process and is never persisted.
package store

import (
	"context"
	"sync"

	"github.com/querylens/querylens/internal/core"
)

// Memory is a process-local RateLimitStore. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	limits map[string]core.RateLimitState
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{limits: make(map[string]core.RateLimitState)}
}

// GetRateLimit returns the stored state for an endpoint, or nil if none.
func (m *Memory) GetRateLimit(_ context.Context, endpoint string) (*core.RateLimitState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.limits[endpoint]
	if !ok {
		return nil, nil
	}
	copied := state
	return &copied, nil
}

// UpdateRateLimit replaces the stored state for an endpoint.
func (m *Memory) UpdateRateLimit(_ context.Context, endpoint string, state *core.RateLimitState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.limits == nil {
		m.limits = make(map[string]core.RateLimitState)
	}
	if state == nil {
		delete(m.limits, endpoint)
		return nil
	}
	m.limits[endpoint] = *state
	return nil
}
