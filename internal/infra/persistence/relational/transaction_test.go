package relational

import (
	"context"
	"testing"

	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/repository"
	"salesboard/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	product := createTestProduct(t, NewProductRepository(db), "Widget", "10.00", 5)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.ProductRepo().DecrementStock(ctx, product.ID, 3); err != nil {
			return err
		}

		return f.SaleRepo().CreateSale(ctx, &entity.Sale{ClientID: 1, ProductID: product.ID, Quantity: 3, Total: decimal.NewFromInt(30)})
	})
	require.NoError(t, err)

	found, err := NewProductRepository(db).FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.Stock)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	product := createTestProduct(t, NewProductRepository(db), "Widget", "10.00", 5)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.ProductRepo().DecrementStock(ctx, product.ID, 3))
		require.NoError(t, f.SaleRepo().CreateSale(ctx, &entity.Sale{ClientID: 1, ProductID: product.ID, Quantity: 3, Total: decimal.NewFromInt(30)}))

		return boom
	})
	assert.ErrorIs(t, err, boom)

	found, err := NewProductRepository(db).FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Stock)

	sales, err := NewSaleRepository(db).ListSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}
