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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixture struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	refresher   *mockUC.MockDashboardRefresher
}

func createTestProductService(t *testing.T) *productServiceFixture {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)
	refresher := mockUC.NewMockDashboardRefresher(t)

	return &productServiceFixture{
		service: NewProductService(ProductServiceParams{
			ProductRepo: productRepo,
			Refresher:   refresher,
			Logger:      discardLogger(),
		}),
		productRepo: productRepo,
		refresher:   refresher,
	}
}

func TestProductService_CreateProduct_RoundsPrice(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Name == "Widget" && p.Price.Equal(decimal.RequireFromString("10.13")) && p.Stock == 5
		})).
		Run(func(_ context.Context, p *entity.Product) { p.ID = 4 }).
		Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(&entity.DashboardSummary{}, nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{
		Name:  "Widget",
		Price: decimal.RequireFromString("10.125"),
		Stock: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), product.ID)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.ProductInput
	}{
		{name: "empty name", input: usecase.ProductInput{Price: decimal.NewFromInt(1)}},
		{name: "negative price", input: usecase.ProductInput{Name: "W", Price: decimal.NewFromInt(-1)}},
		{name: "negative stock", input: usecase.ProductInput{Name: "W", Price: decimal.NewFromInt(1), Stock: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			_, err := fx.service.CreateProduct(context.Background(), &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProductService_UpdateProduct_ReplacesAllFields(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	existing := &entity.Product{ID: 2, Name: "Old", Price: decimal.NewFromInt(1), Stock: 1, Category: strPtr("misc")}
	fx.productRepo.EXPECT().FindProductByID(ctx, int64(2)).Return(existing, nil)
	fx.productRepo.EXPECT().
		UpdateProduct(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ID == 2 && p.Name == "New" && p.Stock == 9 && p.Category == nil
		})).
		Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(&entity.DashboardSummary{}, nil)

	updated, err := fx.service.UpdateProduct(ctx, 2, &usecase.ProductInput{Name: "New", Price: decimal.NewFromInt(3), Stock: 9})
	require.NoError(t, err)
	assert.Nil(t, updated.Category)
}

func TestProductService_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindProductByID(ctx, int64(5)).Return(nil, repository.ErrProductNotFound)
	_, err := fx.service.GetProduct(ctx, 5)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)

	fx.productRepo.EXPECT().DeleteProduct(ctx, int64(5)).Return(repository.ErrProductNotFound)
	assert.ErrorIs(t, fx.service.DeleteProduct(ctx, 5), domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().DeleteProduct(ctx, int64(1)).Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(&entity.DashboardSummary{}, nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, 1))
}
