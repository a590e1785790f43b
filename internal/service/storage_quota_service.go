package service

import (
	"context"
	"time"

	"cloudbox/internal/domain"
	"cloudbox/internal/metrics"
	"cloudbox/internal/projection"
	"cloudbox/internal/repository"
)

// AnalyticsService считает статистику коллекции и использование квоты
type AnalyticsService struct {
	fileRepo   *repository.FileRepository
	quotaBytes int64
}

func NewAnalyticsService(fileRepo *repository.FileRepository, quotaBytes int64) *AnalyticsService {
	return &AnalyticsService{
		fileRepo:   fileRepo,
		quotaBytes: quotaBytes,
	}
}

func (s *AnalyticsService) GetStats(ctx context.Context) domain.Aggregates {
	start := time.Now()
	agg := projection.Aggregate(s.fileRepo.List(ctx))
	metrics.ObserveProjection("aggregate", time.Since(start))
	metrics.SetCollectionSize(agg.Total, agg.Trashed)
	return agg
}

func (s *AnalyticsService) GetQuotaInfo(ctx context.Context) *domain.QuotaInfo {
	return quotaInfo(projection.Aggregate(s.fileRepo.List(ctx)).UsedBytes, s.quotaBytes)
}

func quotaInfo(used, total int64) *domain.QuotaInfo {
	availableSpace := total - used
	if availableSpace < 0 {
		availableSpace = 0
	}

	var usagePercent float64
	if total > 0 {
		usagePercent = float64(used) / float64(total) * 100
	}

	return &domain.QuotaInfo{
		TotalSpace:     total,
		UsedSpace:      used,
		AvailableSpace: availableSpace,
		UsagePercent:   usagePercent,
	}
}
