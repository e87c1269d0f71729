package docstore

import (
	"context"
	"testing"
	"time"

	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_SaveAndFind(t *testing.T) {
	store, cfg := newTestStore(t)
	repo := NewDashboardRepository(store, cfg)
	ctx := context.Background()

	_, err := repo.FindDashboard(ctx)
	require.ErrorIs(t, err, repository.ErrDocumentNotFound)

	updatedAt := time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)
	summary := &entity.DashboardSummary{
		TotalClients:  2,
		TotalProducts: 3,
		TotalSales:    4,
		Revenue:       decimal.RequireFromString("123.45"),
		TopProducts: []entity.TopProduct{
			{Name: "Widget", Quantity: 7},
			{Name: "Gadget", Quantity: 2},
		},
		UpdatedAt: updatedAt,
	}
	require.NoError(t, repo.SaveDashboard(ctx, summary))

	found, err := repo.FindDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.TotalClients)
	assert.Equal(t, int64(3), found.TotalProducts)
	assert.Equal(t, int64(4), found.TotalSales)
	assert.True(t, decimal.RequireFromString("123.45").Equal(found.Revenue))
	assert.Equal(t, summary.TopProducts, found.TopProducts)
	assert.True(t, updatedAt.Equal(found.UpdatedAt))

	// A second save replaces the whole document.
	require.NoError(t, repo.SaveDashboard(ctx, &entity.DashboardSummary{Revenue: decimal.Zero, UpdatedAt: updatedAt}))

	found, err = repo.FindDashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, found.TotalClients)
	assert.Empty(t, found.TopProducts)
}

func TestDashboardRepository_UnavailableStore(t *testing.T) {
	store, cfg := newTestStore(t)
	require.NoError(t, store.Close())

	repo := NewDashboardRepository(store, cfg)
	ctx := context.Background()

	err := repo.SaveDashboard(ctx, &entity.DashboardSummary{})
	assert.ErrorIs(t, err, repository.ErrDocumentStoreUnavailable)

	_, err = repo.FindDashboard(ctx)
	assert.ErrorIs(t, err, repository.ErrDocumentStoreUnavailable)
}
