package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"salesboard/config"
	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	"salesboard/internal/errors"
	"salesboard/internal/usecase"

	"go.uber.org/fx"
)

const clientCounterField = "total"

type dashboardService struct {
	summaryRepo   repository.SummaryRepository
	dashboardRepo repository.DashboardRepository
	documentRepo  repository.DocumentRepository
	collection    string
	now           func() time.Time
	logger        *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	SummaryRepo   repository.SummaryRepository
	DashboardRepo repository.DashboardRepository
	DocumentRepo  repository.DocumentRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDashboardService creates the summary projector
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	collection := ""
	if params.Config != nil && params.Config.Docstore != nil {
		collection = params.Config.Docstore.Collection
	}

	return &dashboardService{
		summaryRepo:   params.SummaryRepo,
		dashboardRepo: params.DashboardRepo,
		documentRepo:  params.DocumentRepo,
		collection:    collection,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Refresh recomputes the whole summary and upserts it. The computed summary is returned
// even when the upsert fails.
func (srv *dashboardService) Refresh(ctx context.Context) (*entity.DashboardSummary, error) {
	summary, err := srv.summaryRepo.Summarize(ctx, entity.TopProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize sales")
	}
	summary.UpdatedAt = srv.now().UTC().Truncate(time.Millisecond)

	if err := srv.dashboardRepo.SaveDashboard(ctx, summary); err != nil {
		return summary, errors.Wrap(err, "failed to save dashboard")
	}

	srv.log(ctx).Debug("Dashboard refreshed",
		slog.Int64("clients", summary.TotalClients),
		slog.Int64("products", summary.TotalProducts),
		slog.Int64("sales", summary.TotalSales),
	)

	return summary, nil
}

// GetDashboard returns the stored summary.
func (srv *dashboardService) GetDashboard(ctx context.Context) (*entity.DashboardSummary, error) {
	summary, err := srv.dashboardRepo.FindDashboard(ctx)
	if err != nil {
		if !isDocumentAbsent(err) {
			srv.log(ctx).Warn("Failed to read dashboard, treating as absent", slog.Any("error", err))
		}

		return nil, domainerrors.ErrDashboardNotFound
	}

	return summary, nil
}

// GetOrComputeDashboard computes the summary once when it was never stored. If the store
// still has nothing afterwards the freshly computed summary is served unpersisted.
func (srv *dashboardService) GetOrComputeDashboard(ctx context.Context) (*entity.DashboardSummary, error) {
	summary, err := srv.dashboardRepo.FindDashboard(ctx)
	if err == nil {
		return summary, nil
	}
	if !isDocumentAbsent(err) {
		srv.log(ctx).Warn("Failed to read dashboard, recomputing", slog.Any("error", err))
	}

	computed, refreshErr := srv.Refresh(ctx)
	if computed == nil {
		return nil, refreshErr
	}
	if refreshErr != nil {
		srv.log(ctx).Warn("Serving unpersisted dashboard", slog.Any("error", refreshErr))

		return computed, nil
	}

	stored, err := srv.dashboardRepo.FindDashboard(ctx)
	if err != nil {
		return computed, nil
	}

	return stored, nil
}

// TotalClients reads the standalone counter document.
func (srv *dashboardService) TotalClients(ctx context.Context) (int64, error) {
	doc, err := srv.documentRepo.GetDocument(ctx, srv.collection, entity.ClientCounterKey)
	if err != nil {
		if !isDocumentAbsent(err) {
			srv.log(ctx).Warn("Failed to read client counter, treating as absent", slog.Any("error", err))
		}

		return 0, nil
	}

	return toInt64(doc[clientCounterField]), nil
}

// RecordTotalClients writes the live client count into the counter document.
func (srv *dashboardService) RecordTotalClients(ctx context.Context) (int64, error) {
	total, err := srv.summaryRepo.CountClients(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count clients")
	}

	if err := srv.documentRepo.SetDocument(ctx, srv.collection, entity.ClientCounterKey, map[string]any{
		clientCounterField: total,
	}); err != nil {
		return 0, errors.Wrap(err, "failed to write client counter")
	}

	return total, nil
}

func isDocumentAbsent(err error) bool {
	return errors.IsAny(err, repository.ErrDocumentNotFound, repository.ErrDocumentStoreUnavailable)
}

// toInt64 accepts the numeric shapes document drivers decode into.
func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(math.Round(n))
	case float32:
		return int64(math.Round(float64(n)))
	default:
		return 0
	}
}
