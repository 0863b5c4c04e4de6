package repo

import (
	"context"

	"github.com/avoronin/metiz-market/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CreateMetiz(ctx context.Context, metiz *models.Metiz) error {
	return r.DB.WithContext(ctx).Create(metiz).Error
}

func (r *GormRepo) FindMetizByEmail(ctx context.Context, email string) (*models.Metiz, error) {
	var metiz models.Metiz
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&metiz).Error; err != nil {
		return nil, err
	}
	return &metiz, nil
}
