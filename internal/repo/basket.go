package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/avoronin/metiz-market/internal/models"
)

// GetOrCreateBasket returns the user's basket with items and their
// products preloaded, creating an empty basket on first access.
func (r *GormRepo) GetOrCreateBasket(ctx context.Context, userID uint) (*models.Basket, error) {
	var basket models.Basket
	err := r.DB.WithContext(ctx).
		Preload("Items", orderByID).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&basket).Error
	if err == nil {
		return &basket, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	basket = models.Basket{UserID: userID}
	if err := r.DB.WithContext(ctx).Create(&basket).Error; err != nil {
		return nil, err
	}
	return &basket, nil
}

// GetBasket returns gorm.ErrRecordNotFound if the user has no basket yet.
func (r *GormRepo) GetBasket(ctx context.Context, userID uint) (*models.Basket, error) {
	var basket models.Basket
	if err := r.DB.WithContext(ctx).
		Preload("Items", orderByID).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&basket).Error; err != nil {
		return nil, err
	}
	return &basket, nil
}

// AddItem accumulates quantity onto an existing line for the same product
// or creates a new line, then reloads the line with its product.
func (r *GormRepo) AddItem(ctx context.Context, item *models.BasketItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.BasketItem{}).
			Where("basket_id = ? AND product_id = ?", item.BasketID, item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Product").
			Where("basket_id = ? AND product_id = ?", item.BasketID, item.ProductID).
			First(item).Error
	})
}

func (r *GormRepo) UpdateItemQuantity(ctx context.Context, basketID, productID, quantity uint) (*models.BasketItem, error) {
	res := r.DB.WithContext(ctx).Model(&models.BasketItem{}).
		Where("basket_id = ? AND product_id = ?", basketID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var item models.BasketItem
	if err := r.DB.WithContext(ctx).Preload("Product").
		Where("basket_id = ? AND product_id = ?", basketID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteItem(ctx context.Context, basketID, productID uint) error {
	res := r.DB.WithContext(ctx).
		Where("basket_id = ? AND product_id = ?", basketID, productID).
		Delete(&models.BasketItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ClearBasket(ctx context.Context, basketID uint) error {
	return r.DB.WithContext(ctx).
		Where("basket_id = ?", basketID).
		Delete(&models.BasketItem{}).Error
}
