package service

import (
	"context"
	"fmt"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

// ReportingService — read-only агрегации для админ-дашборда
type ReportingService struct {
	reportingRepo domain.ReportingRepository
}

// NewReportingService создает новый ReportingService
func NewReportingService(reportingRepo domain.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

// GetStoreMetrics собирает показатели магазина
func (s *ReportingService) GetStoreMetrics(ctx context.Context) (*domain.StoreMetrics, error) {
	metrics, err := s.reportingRepo.GetStoreMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporting service: failed to get store metrics: %w", err)
	}
	return metrics, nil
}
