package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/avoronin/metiz-market/internal/models"
	"github.com/avoronin/metiz-market/internal/repo"
	"github.com/avoronin/metiz-market/internal/transport"
)

type ReviewService struct {
	Repo *repo.GormRepo
}

func validateReviewFields(rating int, shortReview, description string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if shortReview == "" {
		return fmt.Errorf("%w: short_review required", ErrValidation)
	}
	if description == "" {
		return fmt.Errorf("%w: description required", ErrValidation)
	}
	return nil
}

// CreateReview allows exactly one review per completed order. The metiz is
// taken from the order, never from the caller.
func (s *ReviewService) CreateReview(ctx context.Context, userID uint, req transport.CreateReviewRequest) (*models.Review, error) {
	if err := validateReviewFields(req.Rating, req.ShortReview, req.Description); err != nil {
		return nil, err
	}

	order, err := s.Repo.GetOrder(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, req.OrderID)
		}
		return nil, err
	}

	if order.Status != models.StatusCompleted {
		return nil, fmt.Errorf("%w: reviews are allowed for completed orders only", ErrInvalidState)
	}

	if _, err := s.Repo.FindReviewByOrder(ctx, req.OrderID); err == nil {
		return nil, fmt.Errorf("%w: order %d already has a review", ErrConflict, req.OrderID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &models.Review{
		OrderID:     req.OrderID,
		UserID:      userID,
		MetizID:     order.MetizID,
		Rating:      req.Rating,
		ShortReview: req.ShortReview,
		Description: req.Description,
	}
	if err := s.Repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.Repo.GetReview(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: review %d", ErrNotFound, id)
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.Repo.ListReviews(ctx)
}

func (s *ReviewService) ListMetizReviews(ctx context.Context, metizID uint) ([]models.Review, error) {
	return s.Repo.ListMetizReviews(ctx, metizID)
}

func (s *ReviewService) UpdateReview(ctx context.Context, userID, reviewID uint, req transport.UpdateReviewRequest) (*models.Review, error) {
	if err := validateReviewFields(req.Rating, req.ShortReview, req.Description); err != nil {
		return nil, err
	}

	review, err := s.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, fmt.Errorf("%w: review belongs to another user", ErrForbidden)
	}

	review.Rating = req.Rating
	review.ShortReview = req.ShortReview
	review.Description = req.Description
	if err := s.Repo.SaveReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID, reviewID uint) error {
	review, err := s.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return fmt.Errorf("%w: review belongs to another user", ErrForbidden)
	}
	return s.Repo.DeleteReview(ctx, reviewID)
}
