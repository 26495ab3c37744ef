package service

import (
	"context"
	"time"

	"github.com/callpulse/callpulse/internal/analytics"
	"github.com/callpulse/callpulse/internal/domain/models"
	"github.com/callpulse/callpulse/internal/storage"
)

// AnalyticsService defines business logic for call analytics queries.
type AnalyticsService interface {
	GetDailyAnalytics(ctx context.Context, start time.Time, end time.Time) ([]models.DailyBucket, error)
	GetSummary(ctx context.Context, start time.Time, end time.Time) (*models.Summary, error)
	ListCalls(ctx context.Context, start time.Time, end time.Time, limit int) ([]models.CallRecord, error)
}

type analyticsService struct {
	repo storage.CallsRepository
}

func NewAnalyticsService(repo storage.CallsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

// GetDailyAnalytics loads the window's calls and buckets them per UTC day.
// Buckets are recomputed from scratch on every call; nothing is cached.
func (s *analyticsService) GetDailyAnalytics(ctx context.Context, start time.Time, end time.Time) ([]models.DailyBucket, error) {
	records, err := s.repo.ListCallsByWindow(start, end, 0)
	if err != nil {
		return nil, err
	}
	return analytics.AggregateDaily(records, start, end), nil
}

// GetSummary returns window-level totals, or nil when the window holds no
// calls.
func (s *analyticsService) GetSummary(ctx context.Context, start time.Time, end time.Time) (*models.Summary, error) {
	buckets, err := s.GetDailyAnalytics(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(buckets) == 0 {
		return nil, nil
	}
	sum := analytics.Summarize(buckets)
	return &sum, nil
}

func (s *analyticsService) ListCalls(ctx context.Context, start time.Time, end time.Time, limit int) ([]models.CallRecord, error) {
	return s.repo.ListCallsByWindow(start, end, limit)
}
