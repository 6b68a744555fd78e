package cache

import "time"

// SetNow replaces the memory cache's time source.
func (m *Memory) SetNow(now func() time.Time) { m.now = now }
