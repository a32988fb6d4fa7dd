package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"in.co.kisanmitra/internal/model"
)

type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func ok(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, response{Success: true, Data: data})
}

func okMessage(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, response{Success: true, Message: message, Data: data})
}

// fail maps the error taxonomy onto HTTP statuses. Anything unrecognised is
// logged and reported as a generic internal error so internals never leak.
func fail(c echo.Context, err error) error {
	var validationErr *model.ValidationError
	var conflictErr *model.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, response{Message: validationErr.Error()})
	case errors.As(err, &conflictErr):
		return c.JSON(http.StatusBadRequest, response{Message: conflictErr.Error()})
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrTokenInvalid),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrAccountInactive),
		errors.Is(err, model.ErrAccountNotFound):
		return c.JSON(http.StatusUnauthorized, response{Message: err.Error()})
	case errors.Is(err, model.ErrAccountLocked):
		return c.JSON(http.StatusLocked, response{Message: err.Error()})
	case errors.Is(err, model.ErrForbidden):
		return c.JSON(http.StatusForbidden, response{Message: err.Error()})
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, response{Message: err.Error()})
	default:
		log.Errorf("request failed: %+v", err)
		return c.JSON(http.StatusInternalServerError, response{Message: "something went wrong"})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, response{Message: message})
}
