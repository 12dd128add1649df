package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

// return a "bad request" message
func returnBadRequest(c echo.Context, message string) (err error) {
	return c.JSONPretty(http.StatusBadRequest, &Result{
		Name:    "Bad Request",
		Message: message,
	}, indentationChar)
}

// return the error message of an error
func returnError(c echo.Context, status int, e error) (err error) {
	return c.JSONPretty(status, &Result{
		Name:    http.StatusText(status),
		Message: e.Error(),
	}, indentationChar)
}
