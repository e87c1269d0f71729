package impl

import (
	"context"
	"testing"

	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	mockRepo "salesboard/internal/mocks/repository"
	mockUC "salesboard/internal/mocks/usecase"
	"salesboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type saleServiceFixture struct {
	service     usecase.SaleUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	clientRepo  *mockRepo.MockClientRepository
	productRepo *mockRepo.MockProductRepository
	saleRepo    *mockRepo.MockSaleRepository
	refresher   *mockUC.MockDashboardRefresher
}

func createTestSaleService(t *testing.T) *saleServiceFixture {
	t.Helper()

	fx := &saleServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		clientRepo:  mockRepo.NewMockClientRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		saleRepo:    mockRepo.NewMockSaleRepository(t),
		refresher:   mockUC.NewMockDashboardRefresher(t),
	}
	fx.service = NewSaleService(SaleServiceParams{
		TxManager: fx.txManager,
		SaleRepo:  fx.saleRepo,
		Refresher: fx.refresher,
		Logger:    discardLogger(),
	})

	return fx
}

// runInTx makes the transaction manager call fn with the fixture's repositories.
func (fx *saleServiceFixture) runInTx(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().ClientRepo().Return(fx.clientRepo).Maybe()
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo).Maybe()
	fx.factory.EXPECT().SaleRepo().Return(fx.saleRepo).Maybe()
}

func widget(stock int) *entity.Product {
	return &entity.Product{ID: 10, Name: "Widget", Price: decimal.RequireFromString("10.00"), Stock: stock}
}

func TestSaleService_CreateSale(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()
	fx.runInTx(ctx)

	fx.clientRepo.EXPECT().FindClientByID(ctx, int64(1)).Return(&entity.Client{ID: 1}, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, int64(10)).Return(widget(5), nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, int64(10), 3).Return(nil)
	fx.saleRepo.EXPECT().
		CreateSale(ctx, mock.MatchedBy(func(s *entity.Sale) bool {
			return s.ClientID == 1 && s.ProductID == 10 && s.Quantity == 3 && s.Total.Equal(decimal.NewFromInt(30))
		})).
		Run(func(_ context.Context, s *entity.Sale) { s.ID = 100 }).
		Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(&entity.DashboardSummary{}, nil)

	sale, err := fx.service.CreateSale(ctx, &usecase.CreateSaleInput{ClientID: 1, ProductID: 10, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(100), sale.ID)
	assert.Equal(t, "30.00", sale.Total.StringFixed(2))
}

func TestSaleService_CreateSale_InvalidQuantity(t *testing.T) {
	fx := createTestSaleService(t)

	_, err := fx.service.CreateSale(context.Background(), &usecase.CreateSaleInput{ClientID: 1, ProductID: 10, Quantity: 0})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSaleService_CreateSale_ClientNotFound(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()
	fx.runInTx(ctx)

	fx.clientRepo.EXPECT().FindClientByID(ctx, int64(1)).Return(nil, repository.ErrClientNotFound)

	_, err := fx.service.CreateSale(ctx, &usecase.CreateSaleInput{ClientID: 1, ProductID: 10, Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
}

func TestSaleService_CreateSale_InsufficientStock(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx *saleServiceFixture, ctx context.Context)
	}{
		{
			name: "missing product",
			setup: func(fx *saleServiceFixture, ctx context.Context) {
				fx.productRepo.EXPECT().FindProductByID(ctx, int64(10)).Return(nil, repository.ErrProductNotFound)
			},
		},
		{
			name: "stock below quantity",
			setup: func(fx *saleServiceFixture, ctx context.Context) {
				fx.productRepo.EXPECT().FindProductByID(ctx, int64(10)).Return(widget(2), nil)
			},
		},
		{
			name: "lost the race on the conditional update",
			setup: func(fx *saleServiceFixture, ctx context.Context) {
				fx.productRepo.EXPECT().FindProductByID(ctx, int64(10)).Return(widget(5), nil)
				fx.productRepo.EXPECT().DecrementStock(ctx, int64(10), 3).Return(repository.ErrInsufficientStock)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSaleService(t)
			ctx := context.Background()
			fx.runInTx(ctx)

			fx.clientRepo.EXPECT().FindClientByID(ctx, int64(1)).Return(&entity.Client{ID: 1}, nil)
			tt.setup(fx, ctx)

			_, err := fx.service.CreateSale(ctx, &usecase.CreateSaleInput{ClientID: 1, ProductID: 10, Quantity: 3})
			assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
		})
	}
}

func TestSaleService_DeleteSale_RestoresStock(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()
	fx.runInTx(ctx)

	fx.saleRepo.EXPECT().FindSaleByID(ctx, int64(100)).Return(&entity.Sale{ID: 100, ProductID: 10, Quantity: 3}, nil)
	fx.productRepo.EXPECT().RestoreStock(ctx, int64(10), 3).Return(true, nil)
	fx.saleRepo.EXPECT().DeleteSale(ctx, int64(100)).Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(&entity.DashboardSummary{}, nil)

	require.NoError(t, fx.service.DeleteSale(ctx, 100))
}

func TestSaleService_DeleteSale_ProductGone(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()
	fx.runInTx(ctx)

	fx.saleRepo.EXPECT().FindSaleByID(ctx, int64(100)).Return(&entity.Sale{ID: 100, ProductID: 10, Quantity: 3}, nil)
	fx.productRepo.EXPECT().RestoreStock(ctx, int64(10), 3).Return(false, nil)
	fx.saleRepo.EXPECT().DeleteSale(ctx, int64(100)).Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(&entity.DashboardSummary{}, nil)

	require.NoError(t, fx.service.DeleteSale(ctx, 100))
}

func TestSaleService_DeleteSale_NotFound(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()
	fx.runInTx(ctx)

	fx.saleRepo.EXPECT().FindSaleByID(ctx, int64(5)).Return(nil, repository.ErrSaleNotFound)

	assert.ErrorIs(t, fx.service.DeleteSale(ctx, 5), domainerrors.ErrSaleNotFound)
}

func TestSaleService_DeleteSale_RestoreFails(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()
	fx.runInTx(ctx)

	fx.saleRepo.EXPECT().FindSaleByID(ctx, int64(100)).Return(&entity.Sale{ID: 100, ProductID: 10, Quantity: 3}, nil)
	fx.productRepo.EXPECT().RestoreStock(ctx, int64(10), 3).Return(false, errors.New("database error"))

	err := fx.service.DeleteSale(ctx, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to restore stock")
}

func TestSaleService_GetSale(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	fx.saleRepo.EXPECT().FindSaleByID(ctx, int64(1)).Return(&entity.Sale{ID: 1}, nil)
	sale, err := fx.service.GetSale(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sale.ID)

	fx.saleRepo.EXPECT().FindSaleByID(ctx, int64(2)).Return(nil, repository.ErrSaleNotFound)
	_, err = fx.service.GetSale(ctx, 2)
	assert.Equal(t, domainerrors.ErrSaleNotFound, err)
}
