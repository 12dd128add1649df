package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/coolant2go/coolant2go/internal/control_loop"
	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

type setpointRequest struct {
	Setpoint *float64 `json:"setpoint"`
}

func registerControllerEndpoints(rest *echo.Echo, h *handlers) {
	group := rest.Group("/controller")

	group.GET("/", h.getControllers)
	group.GET("/:"+urlParamId+"/", h.getController)
	group.POST("/:"+urlParamId+"/setpoint/", h.setSetpoint)
}

// returns the last known state of all controlled actuators
func (h *handlers) getControllers(c echo.Context) error {
	data := reprint.This(h.source.Actuators())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func (h *handlers) getController(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := h.source.Actuator(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	}
}

// queues a setpoint change, which is applied before the next iteration of the control loop
func (h *handlers) setSetpoint(c echo.Context) error {
	id := c.Param(urlParamId)

	var request setpointRequest
	if err := c.Bind(&request); err != nil {
		return returnBadRequest(c, "invalid request body")
	}
	if request.Setpoint == nil {
		return returnBadRequest(c, "field 'setpoint' is required")
	}

	err := h.requester.RequestSetpoint(id, *request.Setpoint)
	switch {
	case errors.Is(err, control_loop.ErrUnknownActuator):
		return returnNotFound(c, id)
	case errors.Is(err, control_loop.ErrInvalidConfig):
		return returnBadRequest(c, err.Error())
	case errors.Is(err, control_loop.ErrRequestQueueFull):
		return returnError(c, http.StatusServiceUnavailable, err)
	case err != nil:
		return returnError(c, http.StatusInternalServerError, err)
	}

	return c.JSONPretty(http.StatusAccepted, &Result{
		Name:    "Accepted",
		Message: fmt.Sprintf("Setpoint of %s will be changed to %g", id, *request.Setpoint),
	}, indentationChar)
}
