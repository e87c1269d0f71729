package repository

import (
	"context"

	"salesboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement matches no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists a new product and fills its generated ID.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// ListProducts retrieves every product ordered by ID.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// UpdateProduct replaces every column of an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product by its ID. Sales referencing it are kept.
	DeleteProduct(ctx context.Context, id int64) error

	// DecrementStock takes quantity units from the product only if enough are on hand.
	// Returns ErrInsufficientStock otherwise.
	DecrementStock(ctx context.Context, id int64, quantity int) error

	// RestoreStock gives quantity units back to the product. Reports false if the product is gone.
	RestoreStock(ctx context.Context, id int64, quantity int) (bool, error)
}
