package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/metiz-market/internal/logging"
	"github.com/avoronin/metiz-market/internal/mykafka"
	"github.com/avoronin/metiz-market/internal/service"
	"github.com/avoronin/metiz-market/internal/transport"
)

type ReviewHTTP struct {
	Svc      *service.ReviewService
	Producer *mykafka.Producer
}

func (h *ReviewHTTP) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.create")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req transport.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_review_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	review, err := h.Svc.CreateReview(ctx, userID, req)
	if err != nil {
		return domainError(l, "create_review_error", err)
	}

	publish(c, h.Producer, "review_events", map[string]any{
		"type":     "review_created",
		"userID":   userID,
		"orderID":  review.OrderID,
		"metizID":  review.MetizID,
		"reviewID": review.ID,
		"rating":   review.Rating,
	})

	l.Info("review_created", "review_id", review.ID, "order_id", review.OrderID)
	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHTTP) GetReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.get")

	reviewID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.Svc.GetReview(ctx, reviewID)
	if err != nil {
		return domainError(l, "get_review_error", err)
	}

	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHTTP) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.list")

	reviews, err := h.Svc.ListReviews(ctx)
	if err != nil {
		return domainError(l, "list_reviews_error", err)
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHTTP) ListMetizReviews(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.list_metiz")

	metizID, err := paramID(c, "metizId")
	if err != nil {
		return err
	}

	reviews, err := h.Svc.ListMetizReviews(ctx, metizID)
	if err != nil {
		return domainError(l, "list_metiz_reviews_error", err)
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHTTP) UpdateReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.update")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_review_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	review, err := h.Svc.UpdateReview(ctx, userID, reviewID, req)
	if err != nil {
		return domainError(l, "update_review_error", err)
	}

	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHTTP) DeleteReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.delete")

	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteReview(ctx, userID, reviewID); err != nil {
		return domainError(l, "delete_review_error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"deleted_review": reviewID})
}
