package usecase

import (
	"context"

	"salesboard/internal/domain/entity"
)

// CreateSaleInput represents a sale request
type CreateSaleInput struct {
	ClientID  int64
	ProductID int64
	Quantity  int
}

// SaleUsecase defines the interface for sale use cases
type SaleUsecase interface {
	// CreateSale records a sale and takes the quantity out of the product stock
	CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error)

	// GetSale retrieves a sale by ID
	GetSale(ctx context.Context, id int64) (*entity.Sale, error)

	// ListSales retrieves all sales with client and product names
	ListSales(ctx context.Context) ([]*entity.Sale, error)

	// DeleteSale removes a sale and returns its quantity to the product stock
	DeleteSale(ctx context.Context, id int64) error
}
