package main

import (
	"context"
	"log/slog"
	"os"

	"salesboard/config"
	"salesboard/internal/delivery"
	"salesboard/internal/delivery/api"
	"salesboard/internal/delivery/api/router/handler"
	"salesboard/internal/delivery/scheduler"
	"salesboard/internal/domain/lifecycle"
	"salesboard/internal/infra/docstore"
	logs "salesboard/internal/infra/log"
	"salesboard/internal/infra/persistence/relational"
	"salesboard/internal/infra/report"
	"salesboard/internal/usecase"
	"salesboard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			refreshDashboardOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		relational.New,
		docstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			relational.NewClientRepository,
			relational.NewProductRepository,
			relational.NewSaleRepository,
			relational.NewSummaryRepository,
			relational.NewTransactionManager,
			docstore.NewDashboardRepository,
			docstore.NewDocumentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			report.NewPDFRenderer,
			report.NewXLSXRenderer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDashboardService,
			newDashboardRefresher,
			impl.NewClientService,
			impl.NewProductService,
			impl.NewSaleService,
			impl.NewReportService,
		),
	)
}

// newDashboardRefresher exposes the dashboard use case to the mutating services.
func newDashboardRefresher(dashboardUC usecase.DashboardUsecase) usecase.DashboardRefresher {
	return dashboardUC
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewClientHandler,
			handler.NewProductHandler,
			handler.NewSaleHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// refreshDashboardOnStart recomputes the summary once the schema is migrated.
func refreshDashboardOnStart(lc fx.Lifecycle, refresher usecase.DashboardRefresher, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := refresher.Refresh(ctx); err != nil {
				logger.Warn("Startup dashboard refresh failed", slog.Any("error", err))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
