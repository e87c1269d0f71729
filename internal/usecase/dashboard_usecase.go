package usecase

import (
	"context"

	"salesboard/internal/domain/entity"
)

// DashboardRefresher recomputes and stores the dashboard summary
type DashboardRefresher interface {
	// Refresh rebuilds the summary from the relational store and upserts it
	Refresh(ctx context.Context) (*entity.DashboardSummary, error)
}

// DashboardUsecase defines the interface for dashboard use cases
type DashboardUsecase interface {
	DashboardRefresher

	// GetDashboard returns the stored summary or ErrDashboardNotFound
	GetDashboard(ctx context.Context) (*entity.DashboardSummary, error)

	// GetOrComputeDashboard returns the stored summary, computing it first when absent
	GetOrComputeDashboard(ctx context.Context) (*entity.DashboardSummary, error)

	// TotalClients reads the standalone client counter document, 0 when unset
	TotalClients(ctx context.Context) (int64, error)

	// RecordTotalClients snapshots the live client count into the counter document
	RecordTotalClients(ctx context.Context) (int64, error)
}
