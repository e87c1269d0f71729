// Package handler translates HTTP requests into use case calls.
package handler

import (
	"net/http"
	"strconv"

	"salesboard/internal/delivery/api/response"
	domainerrors "salesboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Index answers the root path.
func Index(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": "API de Vendas em funcionamento."})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// messageResponse is the body of mutations that return no entity.
type messageResponse struct {
	Message string `json:"mensagem"`
}

// pathID parses the ":id" path parameter as a positive integer.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidID.WithDetails(c.Param("id"))
	}

	return id, nil
}

// bindAndValidate decodes the body into req and runs its validation rules.
// It writes the 400 response itself and reports whether the handler should continue.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Corpo da requisição inválido")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}
