package http

import (
	"errors"
	"net/http"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/core/domain/model/partner"
	"freshcart/internal/core/domain/services"
	"freshcart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

// domainErrorResponse maps application and domain errors onto HTTP statuses.
// The error message is the domain error's own text; typed errors already
// carry the identifiers a client needs.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrEmptyCart):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrForbiddenTransition):
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, partner.ErrAlreadyLinked):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, partner.ErrDuplicatePhone):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrConcurrentModification):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, commands.ErrStatusRequiresAssignment),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
