package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// Status represents the health check response
type Status struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Hostname  string `json:"hostname"`
	GoVersion string `json:"go_version"`
}

// RegisterHealthEndpoints registers liveness endpoints on the Echo router
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	handler := func(c echo.Context) error {
		hostname, _ := os.Hostname()
		return c.JSON(http.StatusOK, Status{
			Service:   serviceName,
			Status:    "ok",
			Uptime:    time.Since(startTime).String(),
			Hostname:  hostname,
			GoVersion: runtime.Version(),
		})
	}

	e.GET("/health", handler)
	e.GET("/healthz", handler)
}
