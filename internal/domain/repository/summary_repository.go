package repository

import (
	"context"

	"salesboard/internal/domain/entity"
)

// SummaryRepository aggregates the relational tables into dashboard figures.
type SummaryRepository interface {
	// Summarize computes counts, revenue and the topN best sellers. UpdatedAt is left zero.
	Summarize(ctx context.Context, topN int) (*entity.DashboardSummary, error)

	// CountClients returns the number of stored clients.
	CountClients(ctx context.Context) (int64, error)
}
