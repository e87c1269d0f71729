package impl

import (
	"context"
	"log/slog"

	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	"salesboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type saleService struct {
	txManager repository.TransactionManager
	saleRepo  repository.SaleRepository
	refresher usecase.DashboardRefresher
	logger    *slog.Logger
}

// SaleServiceParams holds dependencies for SaleService, injected by Fx.
type SaleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SaleRepo  repository.SaleRepository
	Refresher usecase.DashboardRefresher
	Logger    *slog.Logger
}

// NewSaleService creates a new sale service instance
func NewSaleService(params SaleServiceParams) usecase.SaleUsecase {
	return &saleService{
		txManager: params.TxManager,
		saleRepo:  params.SaleRepo,
		refresher: params.Refresher,
		logger:    params.Logger,
	}
}

func (srv *saleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSale checks the client, takes the stock and records the sale in one transaction.
func (srv *saleService) CreateSale(ctx context.Context, input *usecase.CreateSaleInput) (*entity.Sale, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantidade deve ser maior que zero")
	}

	var created *entity.Sale
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ClientRepo().FindClientByID(ctx, input.ClientID); err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrClientNotFound
			}

			return errors.Wrap(err, "failed to find client")
		}

		productRepo := repoFactory.ProductRepo()
		product, err := productRepo.FindProductByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrInsufficientStock
			}

			return errors.Wrap(err, "failed to find product")
		}

		if !product.HasStock(input.Quantity) {
			return domainerrors.ErrInsufficientStock
		}

		// The conditional update is the real guard, a concurrent sale may have taken the stock since the read.
		if err := productRepo.DecrementStock(ctx, product.ID, input.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) || errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrInsufficientStock
			}

			return errors.Wrap(err, "failed to decrement stock")
		}

		sale := &entity.Sale{
			ClientID:  input.ClientID,
			ProductID: product.ID,
			Quantity:  input.Quantity,
			Total:     product.TotalFor(input.Quantity),
		}
		if err := repoFactory.SaleRepo().CreateSale(ctx, sale); err != nil {
			return errors.Wrap(err, "failed to create sale")
		}

		created = sale

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Sale rejected",
			slog.Int64("clientID", input.ClientID),
			slog.Int64("productID", input.ProductID),
			slog.Int("quantity", input.Quantity),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Sale created", slog.Int64("saleID", created.ID), slog.String("total", created.Total.StringFixed(2)))
	refreshDashboard(ctx, srv.refresher, srv.logger)

	return created, nil
}

func (srv *saleService) GetSale(ctx context.Context, id int64) (*entity.Sale, error) {
	sale, err := srv.saleRepo.FindSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale")
	}

	return sale, nil
}

func (srv *saleService) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	sales, err := srv.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return sales, nil
}

// DeleteSale gives the quantity back to the product, when it still exists, and removes the sale.
func (srv *saleService) DeleteSale(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saleRepo := repoFactory.SaleRepo()

		sale, err := saleRepo.FindSaleByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return domainerrors.ErrSaleNotFound
			}

			return errors.Wrap(err, "failed to find sale")
		}

		restored, err := repoFactory.ProductRepo().RestoreStock(ctx, sale.ProductID, sale.Quantity)
		if err != nil {
			return errors.Wrap(err, "failed to restore stock")
		}
		if !restored {
			srv.log(ctx).Debug("Product of deleted sale no longer exists", slog.Int64("productID", sale.ProductID))
		}

		if err := saleRepo.DeleteSale(ctx, id); err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return domainerrors.ErrSaleNotFound
			}

			return errors.Wrap(err, "failed to delete sale")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Sale deleted", slog.Int64("saleID", id))
	refreshDashboard(ctx, srv.refresher, srv.logger)

	return nil
}
