package api

import (
	"net/http"

	"github.com/coolant2go/coolant2go/internal/telemetry"
	"github.com/labstack/echo/v4"
)

type stateResponse struct {
	Summary telemetry.Summary `json:"summary"`
	// nil until the first iteration has been recorded
	Latest *telemetry.Record `json:"latest"`
}

func registerStateEndpoints(rest *echo.Echo, h *handlers) {
	rest.GET("/state/", h.getState)
}

func (h *handlers) getState(c echo.Context) error {
	response := stateResponse{Summary: h.source.Summary()}
	if latest, ok := h.source.Latest(); ok {
		response.Latest = &latest
	}
	return c.JSONPretty(http.StatusOK, response, indentationChar)
}
