package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avoronin/metiz-market/internal/models"
	"github.com/avoronin/metiz-market/internal/repo"
)

// newTestDB opens a per-test in-memory database; cache=shared keeps it
// alive across the pooled connections gorm opens.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Metiz{},
		&models.Product{},
		&models.Basket{},
		&models.BasketItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	))
	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	return repo.New(newTestDB(t))
}

func seedMetiz(t *testing.T, r *repo.GormRepo, name string) *models.Metiz {
	t.Helper()
	metiz := &models.Metiz{
		Name:              name,
		ContactPersonName: "contact",
		Phone:             "+70000000000",
		Email:             name + "@example.com",
		PasswordHash:      "x",
		Address:           "address",
	}
	require.NoError(t, r.DB.Create(metiz).Error)
	return metiz
}

func seedProduct(t *testing.T, r *repo.GormRepo, metizID uint, name string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		MetizID:     metizID,
		Name:        name,
		Description: "test product",
		Price:       price,
	}
	require.NoError(t, r.DB.Create(product).Error)
	return product
}
