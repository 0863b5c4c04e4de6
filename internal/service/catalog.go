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

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.GetProducts(ctx, offset, limit)
}

func (s *CatalogService) GetMetizProducts(ctx context.Context, metizID uint) ([]models.Product, error) {
	if _, err := s.GetMetizProfile(ctx, metizID); err != nil {
		return nil, err
	}
	return s.Repo.GetMetizProducts(ctx, metizID)
}

func (s *CatalogService) ListMetiz(ctx context.Context) ([]models.Metiz, error) {
	return s.Repo.ListMetiz(ctx)
}

func (s *CatalogService) GetMetizProfile(ctx context.Context, metizID uint) (*models.Metiz, error) {
	metiz, err := s.Repo.GetMetiz(ctx, metizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: metiz %d", ErrNotFound, metizID)
		}
		return nil, err
	}
	return metiz, nil
}

// UpdateMetizProfile patches the caller's own profile; identity comes from
// the access token, so no extra ownership check is needed.
func (s *CatalogService) UpdateMetizProfile(ctx context.Context, metizID uint, req transport.PatchMetizRequest) (*models.Metiz, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if req.Phone != nil && *req.Phone == "" {
		return nil, fmt.Errorf("%w: phone cannot be empty", ErrValidation)
	}
	if req.Address != nil && *req.Address == "" {
		return nil, fmt.Errorf("%w: address cannot be empty", ErrValidation)
	}

	metiz, err := s.Repo.PatchMetiz(ctx, req, metizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: metiz %d", ErrNotFound, metizID)
		}
		return nil, err
	}
	return metiz, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, metizID uint, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	product := &models.Product{
		MetizID:     metizID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, metizID, productID uint, req transport.PatchProductRequest) (*models.Product, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	existing, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing.MetizID != metizID {
		return nil, fmt.Errorf("%w: product belongs to another metiz", ErrForbidden)
	}

	return s.Repo.PatchProduct(ctx, req, productID)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, metizID, productID uint) error {
	existing, err := s.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if existing.MetizID != metizID {
		return fmt.Errorf("%w: product belongs to another metiz", ErrForbidden)
	}

	if err := s.Repo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return err
	}
	return nil
}
