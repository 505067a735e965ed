package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "marquee/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())

	c, rec := newErrorContext()

	m.HandleHTTPError(domainerrors.ErrAuthRequired.WrapMessage("no session"), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// The wrap detail stays server-side; the client sees the canonical message.
	assert.JSONEq(t, `{"message":"Authentication required. Please log in."}`, rec.Body.String())
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())

	c, rec := newErrorContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
}

func TestErrorMiddleware_UnknownErrorBecomesInternal(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())

	c, rec := newErrorContext()

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Raw driver errors must never reach the browser.
	assert.JSONEq(t, `{"message":"Internal server error."}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestErrorMiddleware_CommittedResponseLeftAlone(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())

	c, rec := newErrorContext()
	_ = c.NoContent(http.StatusOK)

	m.HandleHTTPError(domainerrors.ErrAuthRequired, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
