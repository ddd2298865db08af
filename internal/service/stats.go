package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-order-bot/pkg/utils"
)

type StatsRepo interface {
	CountAndSum(ctx context.Context, from, to time.Time) (entities.Stats, error)
	OrderLogByID(ctx context.Context, orderID string) (entities.OrderLogEntry, error)
}

type OrderLogCache interface {
	Get(key string) (entities.OrderLogEntry, bool)
	Set(key string, value entities.OrderLogEntry)
}

type statsService struct {
	logger *slog.Logger
	repo   StatsRepo
	cache  OrderLogCache
	retry  utils.RetryConfig
	now    func() time.Time
}

func NewStatsService(logger *slog.Logger, repo StatsRepo, cache OrderLogCache) *statsService {
	return &statsService{
		logger: logger.With(slog.String("service", "stats")),
		repo:   repo,
		cache:  cache,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  3,
			Multiplier:   2,
		},
		now: time.Now,
	}
}

// Summary counts logged orders and sums their totals over the period.
func (s *statsService) Summary(ctx context.Context, period entities.Period) (entities.Stats, error) {
	from, to, err := period.Range(s.now())
	if err != nil {
		return entities.Stats{}, err
	}

	var stats entities.Stats
	fn := func() error {
		var err error
		stats, err = s.repo.CountAndSum(ctx, from, to)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		s.logger.Error("failed to get stats", slog.String("period", string(period)), slog.Any("error", err))
		return entities.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

// LoggedOrder returns the billing row of an order. Rows never change once
// written, so hits are served from the cache.
func (s *statsService) LoggedOrder(ctx context.Context, orderID string) (entities.OrderLogEntry, error) {
	if entry, ok := s.cache.Get(orderID); ok {
		return entry, nil
	}

	var entry entities.OrderLogEntry
	fn := func() error {
		var err error
		entry, err = s.repo.OrderLogByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.OrderLogEntry{}, err
	}

	s.cache.Set(orderID, entry)
	return entry, nil
}
