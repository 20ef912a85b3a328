package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/kwabena-io/sikaflow/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware recovers from handler panics so that one bad
// request cannot take down the process
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					logger.Error("Panic recovered",
						logger.Err(err),
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.String("stack", string(debug.Stack())),
					)

					c.Error(echo.NewHTTPError(http.StatusInternalServerError, "Internal server error"))
				}
			}()
			return next(c)
		}
	}
}
