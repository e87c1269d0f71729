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

// SaleHandlerParams holds dependencies for SaleHandler, injected by Fx.
type SaleHandlerParams struct {
	fx.In

	SaleUC usecase.SaleUsecase
}

// SaleHandler serves /vendas
type SaleHandler struct {
	saleUC usecase.SaleUsecase
}

// NewSaleHandler is the constructor for SaleHandler
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{
		saleUC: params.SaleUC,
	}
}

// CreateSaleRequest represents the request body for recording a sale
type CreateSaleRequest struct {
	ClientID  int64 `json:"id_cliente" validate:"required,gt=0"`
	ProductID int64 `json:"id_produto" validate:"required,gt=0"`
	Quantity  int   `json:"quantidade" validate:"required,gt=0"`
}

// SaleResponse is the wire form of a sale. Names are only filled by the listing.
type SaleResponse struct {
	ID          int64   `json:"id_venda"`
	ClientID    int64   `json:"id_cliente"`
	ProductID   int64   `json:"id_produto"`
	Quantity    int     `json:"quantidade"`
	Total       float64 `json:"valor_total"`
	CreatedAt   string  `json:"data_venda"`
	ClientName  *string `json:"cliente,omitempty"`
	ProductName *string `json:"produto,omitempty"`
}

type createSaleResponse struct {
	ID      int64  `json:"id_venda"`
	Message string `json:"mensagem"`
}

func toSaleResponse(sale *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:          sale.ID,
		ClientID:    sale.ClientID,
		ProductID:   sale.ProductID,
		Quantity:    sale.Quantity,
		Total:       util.MoneyFloat(sale.Total),
		CreatedAt:   sale.CreatedAt.UTC().Format(time.RFC3339),
		ClientName:  sale.ClientName,
		ProductName: sale.ProductName,
	}
}

// ListSales handles GET /vendas
func (h *SaleHandler) ListSales(c echo.Context) error {
	sales, err := h.saleUC.ListSales(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]SaleResponse, 0, len(sales))
	for _, sale := range sales {
		out = append(out, toSaleResponse(sale))
	}

	return response.Success(c, http.StatusOK, out)
}

// CreateSale handles POST /vendas
func (h *SaleHandler) CreateSale(c echo.Context) error {
	var req CreateSaleRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	sale, err := h.saleUC.CreateSale(c.Request().Context(), &usecase.CreateSaleInput{
		ClientID:  req.ClientID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, createSaleResponse{
		ID:      sale.ID,
		Message: "Venda registrada com sucesso",
	})
}

// GetSale handles GET /vendas/:id
func (h *SaleHandler) GetSale(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sale, err := h.saleUC.GetSale(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSaleResponse(sale))
}

// DeleteSale handles DELETE /vendas/:id
func (h *SaleHandler) DeleteSale(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.saleUC.DeleteSale(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Venda deletada com sucesso"})
}
