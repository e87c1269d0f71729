package usecase

import (
	"context"

	"salesboard/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductInput holds every product field. Used for creation and full replacement.
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Stock       int
	Description *string
	Category    *string
}

// ProductUsecase defines the interface for product management use cases
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// UpdateProduct replaces all product fields
	UpdateProduct(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error)

	DeleteProduct(ctx context.Context, id int64) error
}
