package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

type entry struct {
	slots   []domain.TimeSlot
	expires time.Time
}

// Memory is an in-process TimeSlotCache used when no Redis is configured.
type Memory struct {
	mu      sync.Mutex
	entries map[MonthKey]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory returns an empty cache. A non-positive ttl falls back to DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{entries: map[MonthKey]entry{}, ttl: ttl, now: time.Now}
}

// Get returns a copy of the stored slots.
func (m *Memory) Get(_ context.Context, key MonthKey) ([]domain.TimeSlot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(e.expires) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return slices.Clone(e.slots), true, nil
}

// Set replaces whatever is stored under key.
func (m *Memory) Set(_ context.Context, key MonthKey, slots []domain.TimeSlot) error {
	stored := slices.Clone(slots)
	if stored == nil {
		stored = []domain.TimeSlot{}
	}

	m.mu.Lock()
	m.entries[key] = entry{slots: stored, expires: m.now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}
