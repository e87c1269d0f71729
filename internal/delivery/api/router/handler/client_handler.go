package handler

import (
	"net/http"
	"time"

	"salesboard/internal/delivery/api/response"
	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/usecase"
	"salesboard/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
}

// ClientHandler serves /clientes
type ClientHandler struct {
	clientUC usecase.ClientUsecase
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{
		clientUC: params.ClientUC,
	}
}

// CreateClientRequest represents the request body for registering a client
type CreateClientRequest struct {
	Name      string  `json:"nome" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	CPF       *string `json:"cpf" validate:"omitempty,max=11"`
	BirthDate *string `json:"data_nascimento"`
}

// UpdateClientRequest is a partial update; absent fields keep their value
type UpdateClientRequest struct {
	Name      *string `json:"nome" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	CPF       *string `json:"cpf" validate:"omitempty,max=11"`
	BirthDate *string `json:"data_nascimento"`
}

// ClientResponse is the wire form of a client
type ClientResponse struct {
	ID        int64   `json:"id_cliente"`
	Name      string  `json:"nome"`
	Email     string  `json:"email"`
	CPF       *string `json:"cpf"`
	BirthDate *string `json:"data_nascimento"`
}

type createClientResponse struct {
	ID      int64  `json:"id_cliente"`
	Message string `json:"mensagem"`
}

func toClientResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		CPF:       client.CPF,
		BirthDate: util.FormatDate(client.BirthDate),
	}
}

// ListClients handles GET /clientes
func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.clientUC.ListClients(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, toClientResponse(client))
	}

	return response.Success(c, http.StatusOK, out)
}

// CreateClient handles POST /clientes
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req CreateClientRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	client, err := h.clientUC.CreateClient(c.Request().Context(), &usecase.CreateClientInput{
		Name:      req.Name,
		Email:     req.Email,
		CPF:       req.CPF,
		BirthDate: birthDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, createClientResponse{
		ID:      client.ID,
		Message: "Cliente criado com sucesso",
	})
}

// GetClient handles GET /clientes/:id
func (h *ClientHandler) GetClient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	client, err := h.clientUC.GetClient(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toClientResponse(client))
}

// UpdateClient handles PUT /clientes/:id
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateClientRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	client, err := h.clientUC.UpdateClient(c.Request().Context(), id, &usecase.UpdateClientInput{
		Name:      req.Name,
		Email:     req.Email,
		CPF:       req.CPF,
		BirthDate: birthDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toClientResponse(client))
}

// DeleteClient handles DELETE /clientes/:id
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.clientUC.DeleteClient(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Cliente deletado com sucesso"})
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	date, err := util.ParseDate(*value)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("data_nascimento: formato esperado YYYY-MM-DD")
	}

	return date, nil
}
