// Package handler exposes every simulator operation as one echo route.
// Handlers translate HTTP to operation params and map the error
// taxonomy onto status codes.
package handler

import (
	"net/http"
	"strconv"

	"saas-sim/internal/simerr"

	"github.com/labstack/echo/v4"
)

// writeError renders a taxonomy error as {"error":{"kind","message"}}.
// Validation and invalid-request failures are client errors, unknown
// references are 404, everything else is a server fault.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch simerr.KindOf(err) {
	case simerr.KindValidation, simerr.KindInvalidRequest:
		status = http.StatusBadRequest
	case simerr.KindNotFound:
		status = http.StatusNotFound
	}
	return c.JSON(status, echo.Map{
		"error": echo.Map{
			"kind":    simerr.KindOf(err),
			"message": err.Error(),
		},
	})
}

func errBadBody(err error) error {
	return simerr.Validation("Request body could not be decoded: %v", err)
}

func qString(c echo.Context, name string) *string {
	if v := c.QueryParam(name); v != "" || c.QueryParams().Has(name) {
		return &v
	}
	return nil
}

func qInt(c echo.Context, name string) (*int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, simerr.Validation("Parameter '%s' must be an integer.", name)
	}
	return &n, nil
}

func qInt64(c echo.Context, name string) (*int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, simerr.Validation("Parameter '%s' must be an integer.", name)
	}
	return &n, nil
}

func qBool(c echo.Context, name string) (*bool, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, simerr.Validation("Parameter '%s' must be a boolean.", name)
	}
	return &b, nil
}
