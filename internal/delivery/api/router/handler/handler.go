// Package handler contains the HTTP handlers of the JSON API.
package handler

import (
	"strconv"

	"majorexplorer/internal/delivery/api/response"
	"majorexplorer/internal/delivery/api/validator"
	domainerrors "majorexplorer/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses an integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return id, nil
}

// bindAndValidate decodes the request body into req and checks its validation tags.
// It writes the 400 response itself and reports whether the handler should continue.
func bindAndValidate(c echo.Context, req any, bindMessage string) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, bindMessage)
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	return true, nil
}
