package cache

import "sync/atomic"

// Statistics tracks cache performance counters. All updates are atomic and
// safe for concurrent use.
type Statistics struct {
	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
	size   atomic.Int64
}

// Hit records a cache hit.
func (s *Statistics) Hit() { s.hits.Add(1) }

// Miss records a cache miss.
func (s *Statistics) Miss() { s.misses.Add(1) }

// Set records a store operation.
func (s *Statistics) Set() { s.sets.Add(1) }

// UpdateSize records the current number of entries.
func (s *Statistics) UpdateSize(size int64) { s.size.Store(size) }

// Hits returns the total number of cache hits.
func (s *Statistics) Hits() int64 { return s.hits.Load() }

// Misses returns the total number of cache misses.
func (s *Statistics) Misses() int64 { return s.misses.Load() }

// Sets returns the total number of store operations.
func (s *Statistics) Sets() int64 { return s.sets.Load() }

// CurrentSize returns the current number of entries.
func (s *Statistics) CurrentSize() int64 { return s.size.Load() }

// HitRatio returns the hit ratio in the range 0.0 to 1.0.
func (s *Statistics) HitRatio() float64 {
	hits := s.Hits()
	total := hits + s.Misses()
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

// Reset zeroes all counters.
func (s *Statistics) Reset() {
	s.hits.Store(0)
	s.misses.Store(0)
	s.sets.Store(0)
	s.size.Store(0)
}
