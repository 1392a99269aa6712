package engine

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-plant rate limiters: plant_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(plantID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[plantID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[plantID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(plantID string, plantRate rate.Limit, plantBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[plantID] = rate.NewLimiter(plantRate, plantBurst)
}
