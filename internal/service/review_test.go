package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronin/metiz-market/internal/models"
	"github.com/avoronin/metiz-market/internal/transport"
)

func validReviewRequest(orderID uint) transport.CreateReviewRequest {
	return transport.CreateReviewRequest{
		OrderID:     orderID,
		Rating:      5,
		ShortReview: "отличный магазин",
		Description: "заказ собрали быстро, всё в наличии",
	}
}

func TestReviewService_CreateReview_OrderNotFound(t *testing.T) {
	t.Parallel()

	svc := &ReviewService{Repo: newTestRepo(t)}

	_, err := svc.CreateReview(context.Background(), 1, validReviewRequest(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewService_CreateReview_RequiresCompletedOrder(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}
	ctx := context.Background()

	for _, status := range []string{models.StatusPending, models.StatusInProgress, models.StatusCancelled} {
		order := seedOrder(t, r, 1, 1, status)

		_, err := svc.CreateReview(ctx, 1, validReviewRequest(order.ID))
		require.Error(t, err, "status %q must not be reviewable", status)
		assert.ErrorIs(t, err, ErrInvalidState)
	}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}
	ctx := context.Background()

	order := seedOrder(t, r, 1, 7, models.StatusCompleted)

	review, err := svc.CreateReview(ctx, 1, validReviewRequest(order.ID))
	require.NoError(t, err)
	assert.Equal(t, order.ID, review.OrderID)
	assert.Equal(t, uint(1), review.UserID)
	assert.Equal(t, uint(7), review.MetizID, "metiz comes from the order, not the caller")
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_CreateReview_DuplicateConflict(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}
	ctx := context.Background()

	order := seedOrder(t, r, 1, 1, models.StatusCompleted)

	_, err := svc.CreateReview(ctx, 1, validReviewRequest(order.ID))
	require.NoError(t, err)

	_, err = svc.CreateReview(ctx, 1, validReviewRequest(order.ID))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestReviewService_CreateReview_Validation(t *testing.T) {
	t.Parallel()

	svc := &ReviewService{Repo: newTestRepo(t)}
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*transport.CreateReviewRequest)
	}{
		{name: "rating too low", mutate: func(r *transport.CreateReviewRequest) { r.Rating = 0 }},
		{name: "rating too high", mutate: func(r *transport.CreateReviewRequest) { r.Rating = 6 }},
		{name: "empty short review", mutate: func(r *transport.CreateReviewRequest) { r.ShortReview = "" }},
		{name: "empty description", mutate: func(r *transport.CreateReviewRequest) { r.Description = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validReviewRequest(1)
			tt.mutate(&req)

			_, err := svc.CreateReview(ctx, 1, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestReviewService_UpdateReview_AuthorOnly(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}
	ctx := context.Background()

	order := seedOrder(t, r, 1, 1, models.StatusCompleted)
	review, err := svc.CreateReview(ctx, 1, validReviewRequest(order.ID))
	require.NoError(t, err)

	upd := transport.UpdateReviewRequest{Rating: 2, ShortReview: "передумал", Description: "доставка задержалась"}

	_, err = svc.UpdateReview(ctx, 2, review.ID, upd)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateReview(ctx, 1, review.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "передумал", updated.ShortReview)
}

func TestReviewService_DeleteReview_AuthorOnly(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}
	ctx := context.Background()

	order := seedOrder(t, r, 1, 1, models.StatusCompleted)
	review, err := svc.CreateReview(ctx, 1, validReviewRequest(order.ID))
	require.NoError(t, err)

	err = svc.DeleteReview(ctx, 2, review.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.DeleteReview(ctx, 1, review.ID))

	_, err = svc.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
