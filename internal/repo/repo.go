package repo

import (
	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

// orderByID keeps preloaded line items in insertion order.
func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
