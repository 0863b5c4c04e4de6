package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	authmw "github.com/avoronin/metiz-market/internal/middleware/auth"
	"github.com/avoronin/metiz-market/internal/service"
)

func getUserID(c echo.Context) (uint, error) {
	v, ok := c.Get(authmw.CtxUserID).(uint)
	if !ok || v == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return v, nil
}

func getMetizID(c echo.Context) (uint, error) {
	v, ok := c.Get(authmw.CtxMetizID).(uint)
	if !ok || v == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return v, nil
}

func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// domainError translates service sentinels into HTTP outcomes. Unknown
// errors become a generic 500 so internals never leak to the caller.
func domainError(l *slog.Logger, op string, err error) error {
	var status int
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrEmptyBasket),
		errors.Is(err, service.ErrInvalidStatus):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrVendorConflict),
		errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	default:
		l.Error(op, "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Warn(op, "status", status, "error", err)
	return echo.NewHTTPError(status, err.Error())
}
