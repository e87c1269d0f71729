package impl

import (
	"context"
	"log/slog"

	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	"salesboard/internal/domain/service"
	"salesboard/internal/usecase"
	"salesboard/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	pdfReportFilename  = "relatorio_produtos.pdf"
	xlsxReportFilename = "relatorio_produtos.xlsx"

	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type reportService struct {
	dashboardRepo repository.DashboardRepository
	pdf           service.PDFRenderer
	spreadsheet   service.SpreadsheetRenderer
	logger        *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	DashboardRepo repository.DashboardRepository
	PDF           service.PDFRenderer
	Spreadsheet   service.SpreadsheetRenderer
	Logger        *slog.Logger
}

// NewReportService creates the report use case
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		dashboardRepo: params.DashboardRepo,
		pdf:           params.PDF,
		spreadsheet:   params.Spreadsheet,
		logger:        params.Logger,
	}
}

// DashboardPDF renders the stored summary. It never computes a missing one.
func (srv *reportService) DashboardPDF(ctx context.Context) (*usecase.Report, error) {
	summary, err := srv.storedSummary(ctx)
	if err != nil {
		return nil, err
	}

	content, err := srv.pdf.RenderPDF(summary)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrReportRenderFailed.WithDetails(err.Error()), "render pdf")
	}

	return srv.newReport(ctx, pdfReportFilename, contentTypePDF, content), nil
}

// DashboardXLSX renders the stored summary as a workbook.
func (srv *reportService) DashboardXLSX(ctx context.Context) (*usecase.Report, error) {
	summary, err := srv.storedSummary(ctx)
	if err != nil {
		return nil, err
	}

	content, err := srv.spreadsheet.RenderXLSX(summary)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrReportRenderFailed.WithDetails(err.Error()), "render xlsx")
	}

	return srv.newReport(ctx, xlsxReportFilename, contentTypeXLSX, content), nil
}

func (srv *reportService) storedSummary(ctx context.Context) (*entity.DashboardSummary, error) {
	summary, err := srv.dashboardRepo.FindDashboard(ctx)
	if err != nil {
		if !isDocumentAbsent(err) {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to read dashboard, treating as absent",
				slog.Any("error", err))
		}

		return nil, domainerrors.ErrDashboardNotFound
	}

	return summary, nil
}

func (srv *reportService) newReport(ctx context.Context, filename, contentType string, content []byte) *usecase.Report {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Report rendered",
		slog.String("filename", filename),
		slog.String("size", util.FormatBytes(int64(len(content)))),
	)

	return &usecase.Report{
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	}
}
