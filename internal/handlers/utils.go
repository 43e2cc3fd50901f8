package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getPathParam returns a path parameter with percent-encoding removed. Echo
// leaves parameters escaped when the request path needed a raw form, for
// example a category name containing "/".
func getPathParam(c echo.Context, name string) string {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

// getRowParam reads a 1-based transaction row from the path
func getRowParam(c echo.Context, name string) (int, error) {
	row, err := strconv.Atoi(c.Param(name))
	if err != nil || row < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return row, nil
}
