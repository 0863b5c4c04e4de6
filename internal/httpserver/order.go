package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/metiz-market/internal/logging"
	"github.com/avoronin/metiz-market/internal/mykafka"
	"github.com/avoronin/metiz-market/internal/service"
	"github.com/avoronin/metiz-market/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, userID, req)
	if err != nil {
		return domainError(l, "create_order_error", err)
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":    "order_created",
		"userID":  userID,
		"orderID": order.ID,
		"metizID": order.MetizID,
		"total":   order.TotalCost,
	})

	l.Info("order_created", "order_id", order.ID, "total", order.TotalCost)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.Svc.GetOrder(ctx, orderID)
	if err != nil {
		return domainError(l, "get_order_error", err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) ListUserOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_user")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.Svc.ListUserOrders(ctx, userID)
	if err != nil {
		return domainError(l, "list_user_orders_error", err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) ListMetizOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_metiz")

	metizID, err := getMetizID(c)
	if err != nil {
		return err
	}

	orders, err := h.Svc.ListMetizOrders(ctx, metizID)
	if err != nil {
		return domainError(l, "list_metiz_orders_error", err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		return domainError(l, "update_status_error", err)
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":    "order_status_updated",
		"userID":  order.UserID,
		"orderID": order.ID,
		"status":  order.Status,
	})

	l.Info("order_status_updated", "order_id", order.ID, "new_status", order.Status)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.cancel")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.Svc.CancelOrder(ctx, userID, orderID)
	if err != nil {
		return domainError(l, "cancel_order_error", err)
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":    "order_status_updated",
		"userID":  userID,
		"orderID": order.ID,
		"status":  order.Status,
	})

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) UpdateCompletionTime(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_completion_time")

	metizID, err := getMetizID(c)
	if err != nil {
		return err
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateCompletionTimeRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_completion_time_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateCompletionTime(ctx, metizID, orderID, req.CompletionTime)
	if err != nil {
		return domainError(l, "update_completion_time_error", err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteOrder(ctx, userID, orderID); err != nil {
		return domainError(l, "delete_order_error", err)
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":    "order_deleted",
		"userID":  userID,
		"orderID": orderID,
	})

	return c.JSON(http.StatusOK, map[string]any{"deleted_order": orderID})
}
