package service

import (
	"context"

	"github.com/csexamtest/examtest-backend/internal/model"
)

// RecentActivityLimit is how many events the dashboard feed shows.
const RecentActivityLimit = 10

// DashboardService serves the admin reporting views.
type DashboardService struct {
	dashboard DashboardStore
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashboard DashboardStore) *DashboardService {
	return &DashboardService{dashboard: dashboard}
}

func (s *DashboardService) Stats(ctx context.Context) (*model.AdminStats, error) {
	return s.dashboard.GetStats(ctx)
}

func (s *DashboardService) RecentActivity(ctx context.Context) ([]model.ActivityEntry, error) {
	return s.dashboard.GetRecentActivity(ctx, RecentActivityLimit)
}

func (s *DashboardService) StudentResults(ctx context.Context) ([]model.StudentResult, error) {
	return s.dashboard.GetStudentResults(ctx)
}
