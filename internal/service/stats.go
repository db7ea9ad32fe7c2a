package service

import (
	"context"

	"dealersurvey/internal/cache"
	"dealersurvey/internal/model"
	"dealersurvey/internal/repository"
)

const recentAttemptsLimit = 50

// StatsService exposes per-dealer submission observability: outcome
// counters from Redis and the recent attempt log from Mongo.
type StatsService struct {
	stats    cache.StatsCache
	attempts repository.AttemptRepo
}

// NewStatsService creates a new stats service
func NewStatsService(stats cache.StatsCache, attempts repository.AttemptRepo) *StatsService {
	return &StatsService{
		stats:    stats,
		attempts: attempts,
	}
}

// DealerStats returns outcome counts keyed by outcome code
func (s *StatsService) DealerStats(ctx context.Context, dealerID string) (map[string]int64, error) {
	return s.stats.GetCounts(ctx, dealerID)
}

// RecentAttempts returns the newest attempts for a dealer
func (s *StatsService) RecentAttempts(ctx context.Context, dealerID int) ([]model.Attempt, error) {
	return s.attempts.ListByDealer(ctx, dealerID, recentAttemptsLimit)
}
