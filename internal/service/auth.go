package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/avoronin/metiz-market/internal/hash"
	"github.com/avoronin/metiz-market/internal/models"
	"github.com/avoronin/metiz-market/internal/repo"
	"github.com/avoronin/metiz-market/internal/tokens"
	"github.com/avoronin/metiz-market/internal/transport"
)

const AccessTTL = 15 * time.Minute

// AuthService is identity glue only: it hashes passwords and issues short
// access tokens. There is no refresh flow.
type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (s *AuthService) RegisterUser(ctx context.Context, req transport.RegisterUserRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}
	if req.Name == "" || req.Surname == "" || req.Phone == "" {
		return nil, fmt.Errorf("%w: name, surname and phone required", ErrValidation)
	}

	if _, err := s.Repo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Surname:      req.Surname,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: pwHash,
		Description:  req.Description,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password required", ErrValidation)
	}

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: wrong email or password", ErrInvalidCredentials)
		}
		return "", err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", fmt.Errorf("%w: wrong email or password", ErrInvalidCredentials)
	}

	return tokens.NewAccessToken(user.ID, tokens.RoleUser, AccessTTL, s.JWTSecret)
}

func (s *AuthService) RegisterMetiz(ctx context.Context, req transport.RegisterMetizRequest) (*models.Metiz, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}
	if req.Name == "" || req.ContactPersonName == "" || req.Phone == "" || req.Address == "" {
		return nil, fmt.Errorf("%w: name, contact_person_name, phone and address required", ErrValidation)
	}

	if _, err := s.Repo.FindMetizByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	metiz := &models.Metiz{
		Name:               req.Name,
		ContactPersonName:  req.ContactPersonName,
		RegistrationNumber: req.RegistrationNumber,
		Phone:              req.Phone,
		Email:              req.Email,
		PasswordHash:       pwHash,
		Address:            req.Address,
		Description:        req.Description,
	}
	if err := s.Repo.CreateMetiz(ctx, metiz); err != nil {
		return nil, err
	}
	return metiz, nil
}

func (s *AuthService) LoginMetiz(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password required", ErrValidation)
	}

	metiz, err := s.Repo.FindMetizByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: wrong email or password", ErrInvalidCredentials)
		}
		return "", err
	}
	if !hash.CheckPassword(metiz.PasswordHash, password) {
		return "", fmt.Errorf("%w: wrong email or password", ErrInvalidCredentials)
	}

	return tokens.NewAccessToken(metiz.ID, tokens.RoleMetiz, AccessTTL, s.JWTSecret)
}
