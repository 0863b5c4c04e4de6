package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/avoronin/metiz-market/internal/models"
	"github.com/avoronin/metiz-market/internal/repo"
)

type BasketService struct {
	Repo *repo.GormRepo
}

// GetBasket returns the user's basket, creating an empty one on first
// access.
func (s *BasketService) GetBasket(ctx context.Context, userID uint) (*models.Basket, error) {
	return s.Repo.GetOrCreateBasket(ctx, userID)
}

// AddItem enforces the single-metiz rule against the first line already
// present: a product from another metiz is rejected, never merged.
// Re-adding the same product accumulates quantity onto the existing line.
func (s *BasketService) AddItem(ctx context.Context, userID, productID, quantity uint) (*models.BasketItem, error) {
	if quantity == 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	product, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return nil, err
	}

	basket, err := s.Repo.GetOrCreateBasket(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(basket.Items) > 0 && basket.Items[0].Product.MetizID != product.MetizID {
		return nil, fmt.Errorf("%w: basket holds products of metiz %d", ErrVendorConflict, basket.Items[0].Product.MetizID)
	}

	item := &models.BasketItem{
		BasketID:  basket.ID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.Repo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *BasketService) RemoveItem(ctx context.Context, userID, productID uint) error {
	basket, err := s.Repo.GetBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: basket", ErrNotFound)
		}
		return err
	}

	if err := s.Repo.DeleteItem(ctx, basket.ID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %d is not in the basket", ErrNotFound, productID)
		}
		return err
	}
	return nil
}

func (s *BasketService) UpdateQuantity(ctx context.Context, userID, productID, quantity uint) (*models.BasketItem, error) {
	if quantity == 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	basket, err := s.Repo.GetBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: basket", ErrNotFound)
		}
		return nil, err
	}

	item, err := s.Repo.UpdateItemQuantity(ctx, basket.ID, productID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d is not in the basket", ErrNotFound, productID)
		}
		return nil, err
	}
	return item, nil
}

// Clear removes every line; an already empty basket is a no-op.
func (s *BasketService) Clear(ctx context.Context, userID uint) error {
	basket, err := s.Repo.GetBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: basket", ErrNotFound)
		}
		return err
	}
	return s.Repo.ClearBasket(ctx, basket.ID)
}
