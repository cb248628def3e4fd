package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error kinds reported alongside transition error kinds.
const (
	kindInvalidInput = "InvalidInput"
	kindNotFound     = "NotFound"
	kindForbidden    = "Forbidden"
	kindConflict     = "Conflict"
	kindTimeout      = "Timeout"
	kindInternal     = "Internal"
)

// Error is the JSON body of every rejected request. A transition refused as
// illegal or on a terminal order also carries the order as it stands.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Order   *Order `json:"order,omitempty"`
}

func writeError(c echo.Context, code int, kind, message string) error {
	return c.JSON(code, Error{
		Code:    code,
		Kind:    kind,
		Message: message,
	})
}

// classify maps a use case error onto a status code and an error kind.
func classify(err error) (int, string) {
	var transitionErr *order.TransitionError
	if errors.As(err, &transitionErr) {
		if transitionErr.Kind == order.Forbidden {
			return http.StatusForbidden, transitionErr.Kind.String()
		}
		return http.StatusConflict, transitionErr.Kind.String()
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, kindNotFound
	case errors.Is(err, order.ErrForbidden):
		return http.StatusForbidden, kindForbidden
	case errors.Is(err, commands.ErrTransitionTimedOut):
		return http.StatusGatewayTimeout, kindTimeout
	case errors.Is(err, ports.ErrOrderAlreadyExists), errors.Is(err, ports.ErrConcurrentUpdate):
		return http.StatusConflict, kindConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, kindInvalidInput
	default:
		return http.StatusInternalServerError, kindInternal
	}
}
