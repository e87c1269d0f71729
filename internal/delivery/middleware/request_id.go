// Package middleware holds echo middleware shared by every HTTP delivery.
package middleware

import (
	"log/slog"

	deliverycontext "salesboard/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client supplied IDs before they reach logs and headers.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request a correlation ID and a logger tagged with it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the X-Request-Id header when it is sane, otherwise generates a new ID
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = deliverycontext.NewRequestID()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithCorrelation(c.Request().Context(), m.logger, "request_id", requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
