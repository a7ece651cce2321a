package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/caravelo/fleettrack/internal/utils"
	"github.com/labstack/echo/v4"
)

// PanicRecovery creates a middleware that recovers from panics in handlers
// and returns a 500 instead of crashing the server
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered in HTTP handler",
						logger.String("path", c.Request().URL.Path),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())))

					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError,
						fmt.Sprintf("internal error: %v", r))
				}
			}()
			return next(c)
		}
	}
}
