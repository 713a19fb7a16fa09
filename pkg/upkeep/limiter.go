package upkeep

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-caller rate limiters: user_id -> rate limiter
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

func (s *RateLimiterStore) GetLimiter(userID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[userID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[userID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(userID string, userRate rate.Limit, userBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[userID] = rate.NewLimiter(userRate, userBurst)
}
