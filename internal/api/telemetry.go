package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const queryParamLast = "last"

func registerTelemetryEndpoints(rest *echo.Echo, h *handlers) {
	rest.GET("/telemetry/", h.getTelemetry)
}

// returns the recorded telemetry, optionally limited to the most recent records
func (h *handlers) getTelemetry(c echo.Context) error {
	last := 0
	if value := c.QueryParam(queryParamLast); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			return returnBadRequest(c, "query parameter '"+queryParamLast+"' must be a non-negative integer")
		}
		last = parsed
	}
	return c.JSONPretty(http.StatusOK, h.source.Records(last), indentationChar)
}
