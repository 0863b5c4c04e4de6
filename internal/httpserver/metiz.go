package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/metiz-market/internal/logging"
	"github.com/avoronin/metiz-market/internal/service"
	"github.com/avoronin/metiz-market/internal/transport"
)

type MetizHTTP struct {
	Svc *service.CatalogService
}

func (h *MetizHTTP) ListMetiz(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "metiz.list")

	list, err := h.Svc.ListMetiz(ctx)
	if err != nil {
		return domainError(l, "list_metiz_error", err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *MetizHTTP) GetMetiz(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "metiz.get")

	metizID, err := paramID(c, "metizId")
	if err != nil {
		return err
	}

	metiz, err := h.Svc.GetMetizProfile(ctx, metizID)
	if err != nil {
		return domainError(l, "get_metiz_error", err)
	}

	return c.JSON(http.StatusOK, metiz)
}

func (h *MetizHTTP) PatchProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "metiz.patch_profile")

	metizID, err := getMetizID(c)
	if err != nil {
		return err
	}

	var req transport.PatchMetizRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_profile_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	metiz, err := h.Svc.UpdateMetizProfile(ctx, metizID, req)
	if err != nil {
		return domainError(l, "patch_profile_error", err)
	}

	l.Info("metiz_profile_updated", "metiz_id", metiz.ID)
	return c.JSON(http.StatusOK, metiz)
}
