package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
)

type DashboardAPI interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	Activities(ctx context.Context) ([]models.Activity, error)
}

type DashboardService interface {
	Overview(ctx context.Context) (*models.DashboardStats, []models.Activity, error)
}

type dashboardService struct {
	api DashboardAPI
}

func NewDashboardService(api DashboardAPI) DashboardService {
	return &dashboardService{api: api}
}

// Overview loads the stats and the recent activity feed. The feed is optional:
// when it fails the stats are still returned.
func (s *dashboardService) Overview(ctx context.Context) (*models.DashboardStats, []models.Activity, error) {
	stats, err := s.api.Stats(ctx)
	if err != nil {
		return nil, nil, asAppError(err, "Failed to load dashboard")
	}

	activities, err := s.api.Activities(ctx)
	if err != nil {
		slog.Warn("Failed to load dashboard activities", slog.String("error", err.Error()))
		return stats, nil, nil
	}

	return stats, activities, nil
}
