package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "salesboard/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	})(c)
	require.NoError(t, err)

	return seen, rec.Header().Get(deliverycontext.HeaderXRequestID)
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	seen, header := runRequestID(t, "abc-123")

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", header)
}

func TestRequestIDMiddleware_GeneratesWhenMissingOrTooLong(t *testing.T) {
	seen, header := runRequestID(t, "")
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, header)

	long := strings.Repeat("x", maxRequestIDLength+1)
	seen, _ = runRequestID(t, long)
	assert.NotEqual(t, long, seen)
}
