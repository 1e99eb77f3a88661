package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type SeedLoader interface {
	EnsureSeeded(ctx context.Context) (seeded bool, err error)
}
