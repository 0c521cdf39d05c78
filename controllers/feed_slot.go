package controllers

import (
	"sync"
	"time"

	"roomie_feed/models"
)

// categorySlot is the cache for one category. All fields are guarded by mu.
type categorySlot struct {
	mu sync.Mutex

	queue          []models.Candidate
	fetchedAt      time.Time // zero until the first successful fetch
	loading        bool
	failed         bool // last fetch attempt failed
	lastFetchEmpty bool // last successful fetch produced no candidates
}

func (s *categorySlot) freshLocked(now time.Time, ttl time.Duration) bool {
	return !s.fetchedAt.IsZero() && now.Sub(s.fetchedAt) <= ttl
}

func (s *categorySlot) stateLocked(now time.Time, ttl time.Duration) models.FeedState {
	switch {
	case s.loading:
		return models.FeedLoading
	case s.failed:
		return models.FeedError
	case s.fetchedAt.IsZero():
		return models.FeedUninitialized
	case !s.freshLocked(now, ttl):
		return models.FeedStale
	case len(s.queue) == 0 && s.lastFetchEmpty:
		return models.FeedExhausted
	case s.drainedLocked():
		// the next read fetches more
		return models.FeedStale
	default:
		return models.FeedReady
	}
}

// cached returns the queue when it is still within ttl. A queue drained by
// swipes is never served from cache.
func (s *categorySlot) cached(now time.Time, ttl time.Duration) ([]models.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.freshLocked(now, ttl) || s.drainedLocked() {
		return nil, false
	}
	return copyQueue(s.queue), true
}

func (s *categorySlot) drainedLocked() bool {
	return len(s.queue) == 0 && !s.fetchedAt.IsZero() && !s.lastFetchEmpty
}

func (s *categorySlot) snapshot(now time.Time, ttl time.Duration) ([]models.Candidate, models.FeedState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyQueue(s.queue), s.stateLocked(now, ttl)
}

func (s *categorySlot) beginLoading() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

// fail keeps the previous queue, timestamp and exhaustion flag
func (s *categorySlot) fail() {
	s.mu.Lock()
	s.loading = false
	s.failed = true
	s.mu.Unlock()
}

// replace swaps in a fetched queue wholesale. keep filters out ids that must
// not come back; it runs under the slot lock so a concurrent swipe cannot slip between.
func (s *categorySlot) replace(candidates []models.Candidate, keep func(id string) bool, fetchedAt time.Time) []models.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if keep == nil || keep(c.ID) {
			queue = append(queue, c)
		}
	}
	s.queue = queue
	s.fetchedAt = fetchedAt
	s.loading = false
	s.failed = false
	s.lastFetchEmpty = len(queue) == 0
	return copyQueue(queue)
}

// remove drops id from the queue keeping the others in order. onRemoved runs
// under the slot lock.
func (s *categorySlot) remove(id string, onRemoved func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.queue {
		if c.ID != id {
			continue
		}
		queue := make([]models.Candidate, 0, len(s.queue)-1)
		queue = append(queue, s.queue[:i]...)
		queue = append(queue, s.queue[i+1:]...)
		s.queue = queue
		if onRemoved != nil {
			onRemoved()
		}
		return true
	}
	return false
}

func (s *categorySlot) exhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) == 0 && s.lastFetchEmpty
}

func copyQueue(queue []models.Candidate) []models.Candidate {
	out := make([]models.Candidate, len(queue))
	copy(out, queue)
	return out
}
