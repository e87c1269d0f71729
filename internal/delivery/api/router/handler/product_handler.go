package handler

import (
	"net/http"

	"salesboard/internal/delivery/api/response"
	"salesboard/internal/delivery/api/validator"
	"salesboard/internal/domain/entity"
	"salesboard/internal/usecase"
	"salesboard/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves /produtos
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
	}
}

// ProductRequest carries every product field. Used for create and full update.
type ProductRequest struct {
	Name        string           `json:"nome" validate:"required,max=100"`
	Price       *decimal.Decimal `json:"preco" validate:"required"`
	Stock       *int             `json:"estoque" validate:"omitempty,gte=0"`
	Description *string          `json:"descricao"`
	Category    *string          `json:"categoria" validate:"omitempty,max=50"`
}

// ProductResponse is the wire form of a product
type ProductResponse struct {
	ID          int64   `json:"id_produto"`
	Name        string  `json:"nome"`
	Price       float64 `json:"preco"`
	Stock       int     `json:"estoque"`
	Description *string `json:"descricao"`
	Category    *string `json:"categoria"`
}

type createProductResponse struct {
	ID      int64  `json:"id_produto"`
	Message string `json:"mensagem"`
}

func toProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       util.MoneyFloat(product.Price),
		Stock:       product.Stock,
		Description: product.Description,
		Category:    product.Category,
	}
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	input := &usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
	}
	if r.Price != nil {
		input.Price = *r.Price
	}
	if r.Stock != nil {
		input.Stock = *r.Stock
	}

	return input
}

// ListProducts handles GET /produtos
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return response.Success(c, http.StatusOK, out)
}

// CreateProduct handles POST /produtos. Stock defaults to 0.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, createProductResponse{
		ID:      product.ID,
		Message: "Produto criado com sucesso",
	})
}

// GetProduct handles GET /produtos/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// UpdateProduct handles PUT /produtos/:id. Every field is replaced, so estoque is required here.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if req.Stock == nil {
		return response.ValidationError(c, validator.ValidationErrors{{Field: "estoque", Rule: "required"}})
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// DeleteProduct handles DELETE /produtos/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Produto deletado com sucesso"})
}
