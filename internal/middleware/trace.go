package middleware

import (
	"context"
	"scentify/business/recommender"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const traceHeader = "X-Trace-Id"

// TraceID attaches a per-request trace id to the request context and echoes it
// back in the response header. Incoming ids are reused so callers can
// correlate across services.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(traceHeader)
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommender.TraceIDKey, tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(traceHeader, tid)

			return next(c)
		}
	}
}
