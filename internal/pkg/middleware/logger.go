package middleware

import (
	"time"

	pkgcontext "github.com/caravelo/fleettrack/internal/pkg/context"
	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// RequestLogger creates a middleware that attaches correlation identifiers
// to the request context and logs each request with method, path, status
// and latency
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			reqCtx := pkgcontext.FromEchoContext(c)
			ctx := pkgcontext.WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			fields := []logger.Field{
				logger.String("request_id", reqCtx.RequestID),
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.Int("status", c.Response().Status),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
			}

			status := c.Response().Status
			switch {
			case status >= 500:
				logger.Error("HTTP request", fields...)
			case status >= 400:
				logger.Warn("HTTP request", fields...)
			default:
				logger.Info("HTTP request", fields...)
			}

			return err
		}
	}
}
