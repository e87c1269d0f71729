package handler

import (
	"net/http"
	"time"

	"salesboard/internal/delivery/api/response"
	"salesboard/internal/domain/entity"
	"salesboard/internal/usecase"
	"salesboard/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	ReportUC    usecase.ReportUsecase
}

// DashboardHandler serves the summary and its downloadable reports
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	reportUC    usecase.ReportUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		reportUC:    params.ReportUC,
	}
}

// DashboardResponse is the summary as exposed to clients, without the storage key
type DashboardResponse struct {
	TotalClients  int64                `json:"total_clientes"`
	TotalProducts int64                `json:"total_produtos"`
	TotalSales    int64                `json:"total_vendas"`
	Revenue       float64              `json:"receita_total"`
	TopProducts   []TopProductResponse `json:"produtos_mais_vendidos"`
	UpdatedAt     string               `json:"atualizado_em"`
}

// TopProductResponse is one best seller
type TopProductResponse struct {
	Name     string `json:"nome"`
	Quantity int64  `json:"total_vendido"`
}

type totalClientsResponse struct {
	TotalClients int64 `json:"total_clientes"`
}

func toDashboardResponse(summary *entity.DashboardSummary) DashboardResponse {
	top := make([]TopProductResponse, 0, len(summary.TopProducts))
	for _, p := range summary.TopProducts {
		top = append(top, TopProductResponse{Name: p.Name, Quantity: p.Quantity})
	}

	return DashboardResponse{
		TotalClients:  summary.TotalClients,
		TotalProducts: summary.TotalProducts,
		TotalSales:    summary.TotalSales,
		Revenue:       util.MoneyFloat(summary.Revenue),
		TopProducts:   top,
		UpdatedAt:     summary.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// GetDashboard handles GET /dashboard, computing the summary when none is stored
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	summary, err := h.dashboardUC.GetOrComputeDashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDashboardResponse(summary))
}

// DownloadPDF handles GET /dashboard/relatorio-pdf
func (h *DashboardHandler) DownloadPDF(c echo.Context) error {
	report, err := h.reportUC.DashboardPDF(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, report.Filename, report.ContentType, report.Content)
}

// DownloadXLSX handles GET /dashboard/relatorio-xlsx
func (h *DashboardHandler) DownloadXLSX(c echo.Context) error {
	report, err := h.reportUC.DashboardXLSX(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, report.Filename, report.ContentType, report.Content)
}

// TotalClients handles GET /dashboard/total_clientes
func (h *DashboardHandler) TotalClients(c echo.Context) error {
	total, err := h.dashboardUC.TotalClients(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, totalClientsResponse{TotalClients: total})
}
