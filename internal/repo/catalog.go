package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/avoronin/metiz-market/internal/models"
	"github.com/avoronin/metiz-market/internal/transport"
)

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Product
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) GetMetizProducts(ctx context.Context, metizID uint) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).
		Where("metiz_id = ?", metizID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormRepo) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := r.DB.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) GetMetiz(ctx context.Context, id uint) (*models.Metiz, error) {
	var metiz models.Metiz
	if err := r.DB.WithContext(ctx).First(&metiz, id).Error; err != nil {
		return nil, err
	}
	return &metiz, nil
}

func (r *GormRepo) ListMetiz(ctx context.Context) ([]models.Metiz, error) {
	var list []models.Metiz
	if err := r.DB.WithContext(ctx).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormRepo) PatchMetiz(ctx context.Context, req transport.PatchMetizRequest, id uint) (*models.Metiz, error) {
	var metiz models.Metiz
	if err := r.DB.WithContext(ctx).First(&metiz, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		metiz.Name = *req.Name
	}
	if req.ContactPersonName != nil {
		metiz.ContactPersonName = *req.ContactPersonName
	}
	if req.Phone != nil {
		metiz.Phone = *req.Phone
	}
	if req.Address != nil {
		metiz.Address = *req.Address
	}
	if req.Description != nil {
		metiz.Description = *req.Description
	}

	if err := r.DB.WithContext(ctx).Save(&metiz).Error; err != nil {
		return nil, err
	}

	return &metiz, nil
}
