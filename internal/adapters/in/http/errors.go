package http

import (
	"errors"
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// commandError maps use case failures to HTTP status codes. Missing objects
// become 404, business conflicts 409, everything else 500. The error text is
// passed through so the caller sees which object or product was at fault.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrInvalidReference),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, commands.ErrOrderNotFulfilled):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
