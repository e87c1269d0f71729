package relational

import (
	"context"
	"testing"

	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleRepository_CreateFindDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	sale := &entity.Sale{
		ClientID:  1,
		ProductID: 2,
		Quantity:  3,
		Total:     decimal.RequireFromString("30.00"),
	}
	require.NoError(t, repo.CreateSale(ctx, sale))
	require.NotZero(t, sale.ID)
	assert.False(t, sale.CreatedAt.IsZero())

	found, err := repo.FindSaleByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Quantity)
	assert.True(t, decimal.RequireFromString("30").Equal(found.Total))

	require.NoError(t, repo.DeleteSale(ctx, sale.ID))

	_, err = repo.FindSaleByID(ctx, sale.ID)
	assert.ErrorIs(t, err, repository.ErrSaleNotFound)
	assert.ErrorIs(t, repo.DeleteSale(ctx, sale.ID), repository.ErrSaleNotFound)
}

func TestSaleRepository_ListSalesResolvesNames(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	clientRepo := NewClientRepository(db)
	productRepo := NewProductRepository(db)
	saleRepo := NewSaleRepository(db)

	client := &entity.Client{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, clientRepo.CreateClient(ctx, client))
	kept := createTestProduct(t, productRepo, "Caneta", "2.00", 10)
	removed := createTestProduct(t, productRepo, "Caderno", "15.00", 10)

	require.NoError(t, saleRepo.CreateSale(ctx, &entity.Sale{ClientID: client.ID, ProductID: kept.ID, Quantity: 1, Total: kept.TotalFor(1)}))
	require.NoError(t, saleRepo.CreateSale(ctx, &entity.Sale{ClientID: client.ID, ProductID: removed.ID, Quantity: 2, Total: removed.TotalFor(2)}))
	require.NoError(t, productRepo.DeleteProduct(ctx, removed.ID))

	sales, err := saleRepo.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	require.NotNil(t, sales[0].ClientName)
	assert.Equal(t, "Ana", *sales[0].ClientName)
	require.NotNil(t, sales[0].ProductName)
	assert.Equal(t, "Caneta", *sales[0].ProductName)

	assert.Equal(t, removed.ID, sales[1].ProductID)
	assert.Nil(t, sales[1].ProductName)
	assert.True(t, decimal.RequireFromString("30").Equal(sales[1].Total))
}
