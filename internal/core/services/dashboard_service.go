package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
)

type dashboardService struct {
	BaseService
	api portssvc.DashboardAPI
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(api portssvc.DashboardAPI, notifier Notifier) portssvc.DashboardSvcFacade {
	return &dashboardService{
		BaseService: BaseService{Notifier: notifier},
		api:         api,
	}
}

func (s *dashboardService) GetDashboardData(ctx context.Context) (*domain.DashboardData, error) {
	data, err := s.api.GetDashboardData(ctx)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to load dashboard: %w", err), "Failed to fetch dashboard data")
	}
	return data, nil
}
