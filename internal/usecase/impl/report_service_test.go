package impl

import (
	"context"
	"testing"

	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	mockRepo "salesboard/internal/mocks/repository"
	mockSvc "salesboard/internal/mocks/service"
	"salesboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportServiceFixture struct {
	service       usecase.ReportUsecase
	dashboardRepo *mockRepo.MockDashboardRepository
	pdf           *mockSvc.MockPDFRenderer
	spreadsheet   *mockSvc.MockSpreadsheetRenderer
}

func createTestReportService(t *testing.T) *reportServiceFixture {
	t.Helper()

	fx := &reportServiceFixture{
		dashboardRepo: mockRepo.NewMockDashboardRepository(t),
		pdf:           mockSvc.NewMockPDFRenderer(t),
		spreadsheet:   mockSvc.NewMockSpreadsheetRenderer(t),
	}
	fx.service = NewReportService(ReportServiceParams{
		DashboardRepo: fx.dashboardRepo,
		PDF:           fx.pdf,
		Spreadsheet:   fx.spreadsheet,
		Logger:        discardLogger(),
	})

	return fx
}

func TestReportService_DashboardPDF(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	summary := sampleDashboard()

	fx.dashboardRepo.EXPECT().FindDashboard(ctx).Return(summary, nil)
	fx.pdf.EXPECT().RenderPDF(summary).Return([]byte("%PDF-1.3"), nil)

	report, err := fx.service.DashboardPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, "relatorio_produtos.pdf", report.Filename)
	assert.Equal(t, "application/pdf", report.ContentType)
	assert.Equal(t, []byte("%PDF-1.3"), report.Content)
}

func TestReportService_DashboardXLSX(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	summary := sampleDashboard()

	fx.dashboardRepo.EXPECT().FindDashboard(ctx).Return(summary, nil)
	fx.spreadsheet.EXPECT().RenderXLSX(summary).Return([]byte("PK"), nil)

	report, err := fx.service.DashboardXLSX(ctx)
	require.NoError(t, err)
	assert.Equal(t, "relatorio_produtos.xlsx", report.Filename)
}

func TestReportService_MissingDashboardIsNeverComputed(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.dashboardRepo.EXPECT().FindDashboard(ctx).Return(nil, repository.ErrDocumentNotFound)

	_, err := fx.service.DashboardPDF(ctx)
	assert.Equal(t, domainerrors.ErrDashboardNotFound, err)
}

func TestReportService_StoreReadFailureIsAbsent(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.dashboardRepo.EXPECT().FindDashboard(ctx).Return(nil, errors.New("server selection timeout")).Twice()

	_, err := fx.service.DashboardPDF(ctx)
	assert.Equal(t, domainerrors.ErrDashboardNotFound, err)

	_, err = fx.service.DashboardXLSX(ctx)
	assert.Equal(t, domainerrors.ErrDashboardNotFound, err)
}

func TestReportService_RenderFailure(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	summary := sampleDashboard()

	fx.dashboardRepo.EXPECT().FindDashboard(ctx).Return(summary, nil)
	fx.pdf.EXPECT().RenderPDF(summary).Return(nil, errors.New("font missing"))

	_, err := fx.service.DashboardPDF(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrReportRenderFailed)
}
