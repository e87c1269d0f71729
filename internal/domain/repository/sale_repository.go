package repository

import (
	"context"

	"salesboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for sale persistence.
var (
	// ErrSaleNotFound is returned when a sale is not found.
	ErrSaleNotFound = errors.New("sale not found")
)

// SaleRepository defines the interface for sale-related database operations.
type SaleRepository interface {
	// CreateSale persists a new sale and fills its generated ID and timestamp.
	CreateSale(ctx context.Context, sale *entity.Sale) error

	// FindSaleByID retrieves a sale by its ID.
	FindSaleByID(ctx context.Context, id int64) (*entity.Sale, error)

	// ListSales retrieves every sale with client and product names resolved when they still exist.
	ListSales(ctx context.Context) ([]*entity.Sale, error)

	// DeleteSale removes a sale by its ID.
	DeleteSale(ctx context.Context, id int64) error
}
