package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	"salesboard/internal/usecase"
	"salesboard/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	refresher   usecase.DashboardRefresher
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Refresher   usecase.DashboardRefresher
	Logger      *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		refresher:   params.Refresher,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{}
	applyProductInput(product, input)

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID))
	refreshDashboard(ctx, srv.refresher, srv.logger)

	return product, nil
}

func (srv *productService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct replaces every field. Description and category are cleared when absent.
func (srv *productService) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProductInput(product, input)

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Int64("productID", product.ID))
	refreshDashboard(ctx, srv.refresher, srv.logger)

	return product, nil
}

// DeleteProduct removes the product even when sales still reference it.
func (srv *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := srv.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))
	refreshDashboard(ctx, srv.refresher, srv.logger)

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.Price = util.Money(input.Price)
	product.Stock = input.Stock
	product.Description = input.Description
	product.Category = input.Category
}

func validateProduct(product *entity.Product) error {
	if product.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("nome é obrigatório")
	}
	if product.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("preco não pode ser negativo")
	}
	if product.Stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("estoque não pode ser negativo")
	}

	return nil
}
