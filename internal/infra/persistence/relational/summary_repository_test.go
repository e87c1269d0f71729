package relational

import (
	"context"
	"fmt"
	"testing"

	"salesboard/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRepository_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := NewSummaryRepository(db)

	summary, err := repo.Summarize(context.Background(), entity.TopProductsLimit)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalClients)
	assert.Zero(t, summary.TotalProducts)
	assert.Zero(t, summary.TotalSales)
	assert.True(t, summary.Revenue.IsZero())
	assert.NotNil(t, summary.TopProducts)
	assert.Empty(t, summary.TopProducts)
}

func TestSummaryRepository_CountsRevenueAndTopProducts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	clientRepo := NewClientRepository(db)
	productRepo := NewProductRepository(db)
	saleRepo := NewSaleRepository(db)
	repo := NewSummaryRepository(db)

	client := &entity.Client{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, clientRepo.CreateClient(ctx, client))

	// Quantities sold per product. "B" and "C" tie and are ordered by name.
	sold := []struct {
		name     string
		quantity int
	}{
		{"F", 1}, {"C", 4}, {"A", 7}, {"B", 4}, {"E", 2}, {"D", 3},
	}

	expectedRevenue := decimal.Zero
	for _, s := range sold {
		product := createTestProduct(t, productRepo, s.name, "1.25", 100)
		total := product.TotalFor(s.quantity)
		expectedRevenue = expectedRevenue.Add(total)
		require.NoError(t, saleRepo.CreateSale(ctx, &entity.Sale{
			ClientID:  client.ID,
			ProductID: product.ID,
			Quantity:  s.quantity,
			Total:     total,
		}))
	}

	summary, err := repo.Summarize(ctx, entity.TopProductsLimit)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.TotalClients)
	assert.Equal(t, int64(6), summary.TotalProducts)
	assert.Equal(t, int64(6), summary.TotalSales)
	assert.True(t, expectedRevenue.Equal(summary.Revenue), "revenue %s", summary.Revenue)

	require.Len(t, summary.TopProducts, entity.TopProductsLimit)
	got := make([]string, 0, len(summary.TopProducts))
	for _, p := range summary.TopProducts {
		got = append(got, fmt.Sprintf("%s:%d", p.Name, p.Quantity))
	}
	assert.Equal(t, []string{"A:7", "B:4", "C:4", "D:3", "E:2"}, got)

	count, err := repo.CountClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSummaryRepository_GroupsSalesOfSameProduct(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	productRepo := NewProductRepository(db)
	saleRepo := NewSaleRepository(db)
	repo := NewSummaryRepository(db)

	product := createTestProduct(t, productRepo, "Widget", "10.00", 100)
	for range 3 {
		require.NoError(t, saleRepo.CreateSale(ctx, &entity.Sale{ClientID: 1, ProductID: product.ID, Quantity: 2, Total: product.TotalFor(2)}))
	}

	summary, err := repo.Summarize(ctx, entity.TopProductsLimit)
	require.NoError(t, err)
	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, entity.TopProduct{Name: "Widget", Quantity: 6}, summary.TopProducts[0])
	assert.True(t, decimal.RequireFromString("60").Equal(summary.Revenue))
}
