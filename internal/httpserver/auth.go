package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/metiz-market/internal/logging"
	"github.com/avoronin/metiz-market/internal/service"
	"github.com/avoronin/metiz-market/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func accessCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     "accessToken",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(service.AccessTTL),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHTTP) RegisterUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register_user")

	var req transport.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_user_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.RegisterUser(ctx, req)
	if err != nil {
		return domainError(l, "register_user_error", err)
	}

	l.Info("user_registered", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) LoginUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login_user")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_user_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Svc.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		return domainError(l, "login_user_error", err)
	}

	c.SetCookie(accessCookie(token))
	return c.JSON(http.StatusOK, transport.LoginResponse{AccessToken: token})
}

func (h *AuthHTTP) RegisterMetiz(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register_metiz")

	var req transport.RegisterMetizRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_metiz_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	metiz, err := h.Svc.RegisterMetiz(ctx, req)
	if err != nil {
		return domainError(l, "register_metiz_error", err)
	}

	l.Info("metiz_registered", "metiz_id", metiz.ID)
	return c.JSON(http.StatusCreated, metiz)
}

func (h *AuthHTTP) LoginMetiz(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login_metiz")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_metiz_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Svc.LoginMetiz(ctx, req.Email, req.Password)
	if err != nil {
		return domainError(l, "login_metiz_error", err)
	}

	c.SetCookie(accessCookie(token))
	return c.JSON(http.StatusOK, transport.LoginResponse{AccessToken: token})
}
