package api

import (
	"net/http"

	"github.com/coolant2go/coolant2go/internal/telemetry"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	urlParamId      = "id"
	indentationChar = "  "

	metricsNamespace = "coolant2go"
	metricsSubsystem = "api"
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// Source provides the recorded state of the current run
type Source interface {
	Latest() (telemetry.Record, bool)
	Records(n int) []telemetry.Record
	Summary() telemetry.Summary
	Actuators() map[string]telemetry.ActuatorSnapshot
	Actuator(id string) (telemetry.ActuatorSnapshot, bool)
}

// SetpointRequester accepts setpoint changes for the controller of an actuator
type SetpointRequester interface {
	RequestSetpoint(actuator string, setpoint float64) error
}

type handlers struct {
	source    Source
	requester SetpointRequester
}

// CreateRestService creates the REST service of a running simulation.
// Request metrics are registered with registerer.
func CreateRestService(source Source, requester SetpointRequester, registerer prometheus.Registerer) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true
	echoRest.HidePort = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())

	echoRest.Use(middleware.Logger())
	echoRest.Use(middleware.Recover())

	echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metricsNamespace,
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
	}))

	echoRest.GET("/alive/", isAlive)

	h := &handlers{source: source, requester: requester}
	registerStateEndpoints(echoRest, h)
	registerTelemetryEndpoints(echoRest, h)
	registerControllerEndpoints(echoRest, h)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
