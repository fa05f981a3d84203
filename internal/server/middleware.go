package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/platform/correlation"
)

const requestIDHeader = "X-Request-ID"

// correlationMiddleware tags every request with a correlation ID, reusing the
// client's X-Request-ID when present. The ID rides the request context so the
// slog handler stamps it onto every log line, and is echoed back to the
// client for support tickets.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(requestIDHeader, id)

			return next(c)
		}
	}
}
