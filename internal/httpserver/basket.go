package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/metiz-market/internal/logging"
	"github.com/avoronin/metiz-market/internal/mykafka"
	"github.com/avoronin/metiz-market/internal/service"
	"github.com/avoronin/metiz-market/internal/transport"
)

type BasketHTTP struct {
	Svc      *service.BasketService
	Producer *mykafka.Producer
}

func (h *BasketHTTP) GetBasket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.get")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	basket, err := h.Svc.GetBasket(ctx, userID)
	if err != nil {
		return domainError(l, "get_basket_error", err)
	}

	return c.JSON(http.StatusOK, basket)
}

func (h *BasketHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.add_item")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req transport.AddBasketItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_item_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddItem(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		return domainError(l, "add_item_error", err)
	}

	publish(c, h.Producer, "basket_events", map[string]any{
		"type":      "basket_item_added",
		"userID":    userID,
		"productID": req.ProductID,
		"quantity":  item.Quantity,
	})

	l.Info("basket_item_added", "product_id", req.ProductID)
	return c.JSON(http.StatusCreated, item)
}

func (h *BasketHTTP) UpdateItemQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.update_quantity")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}

	var req transport.UpdateBasketItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.UpdateQuantity(ctx, userID, productID, req.Quantity)
	if err != nil {
		return domainError(l, "update_quantity_error", err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *BasketHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.remove_item")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}

	if err := h.Svc.RemoveItem(ctx, userID, productID); err != nil {
		return domainError(l, "remove_item_error", err)
	}

	publish(c, h.Producer, "basket_events", map[string]any{
		"type":      "basket_item_removed",
		"userID":    userID,
		"productID": productID,
	})

	return c.JSON(http.StatusOK, map[string]any{"deleted_product": productID})
}

func (h *BasketHTTP) Clear(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.clear")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Clear(ctx, userID); err != nil {
		return domainError(l, "clear_basket_error", err)
	}

	publish(c, h.Producer, "basket_events", map[string]any{
		"type":   "basket_cleared",
		"userID": userID,
	})

	l.Info("basket_cleared")
	return c.JSON(http.StatusOK, map[string]string{"message": "basket cleared"})
}
