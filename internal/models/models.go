package models

import (
	"time"
)

// Order status values are stored and served exactly as the storefront
// displays them.
const (
	StatusPending    = "на рассмотрении"
	StatusInProgress = "выполняется"
	StatusCompleted  = "выполнен"
	StatusCancelled  = "отменён"
)

// AllowedStatuses lists every recognized order status.
var AllowedStatuses = []string{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func IsAllowedStatus(s string) bool {
	for _, st := range AllowedStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Surname      string `gorm:"not null"                 json:"surname"`
	Phone        string `gorm:"not null"                 json:"phone"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Description  string `json:"description"`
}

// Metiz is a vendor: it owns products and receives orders.
type Metiz struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string `gorm:"not null"                 json:"name"`
	ContactPersonName  string `gorm:"not null"                 json:"contact_person_name"`
	RegistrationNumber int64  `gorm:"not null"                 json:"registration_number"`
	Phone              string `gorm:"not null"                 json:"phone"`
	Email              string `gorm:"unique;not null"          json:"email"`
	PasswordHash       string `gorm:"not null"                 json:"-"`
	Address            string `gorm:"not null"                 json:"address"`
	Description        string `json:"description"`
}

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MetizID     uint   `gorm:"index;not null"           json:"metiz_id"`
	Name        string `gorm:"not null"                 json:"name"`
	Description string `gorm:"not null"                 json:"description"`
	Price       int64  `gorm:"not null"                 json:"price"`
}

// Basket is created lazily on first access and survives checkout
// (only its items are cleared).
type Basket struct {
	ID     uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint         `gorm:"uniqueIndex;not null"     json:"user_id"`
	Items  []BasketItem `gorm:"foreignKey:BasketID"      json:"items"`
}

type BasketItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"                 json:"id"`
	BasketID  uint    `gorm:"uniqueIndex:idx_basket_product;not null"  json:"basket_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_basket_product;not null"  json:"product_id"`
	Quantity  uint    `gorm:"default:1;check:quantity>0"               json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID"                     json:"product"`
}

// Order is immutable after creation except for Status and CompletionTime.
type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint        `gorm:"index;not null"           json:"user_id"`
	MetizID         uint        `gorm:"index;not null"           json:"metiz_id"`
	Name            string      `gorm:"not null"                 json:"name"`
	DeliveryAddress string      `gorm:"not null"                 json:"delivery_address"`
	Description     string      `json:"description"`
	TotalCost       int64       `gorm:"not null"                 json:"total_cost"`
	Status          string      `gorm:"not null"                 json:"status"`
	CompletionTime  *string     `json:"completion_time"`
	DateOfOrdering  time.Time   `gorm:"not null"                 json:"date_of_ordering"`
	Items           []OrderItem `gorm:"foreignKey:OrderID"       json:"items"`
	Review          *Review     `gorm:"foreignKey:OrderID"       json:"review,omitempty"`
}

// OrderItem freezes the line at checkout time, unit price included, so
// historical orders do not drift with later catalog edits.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"    json:"id"`
	OrderID   uint    `gorm:"index;not null"              json:"order_id"`
	ProductID uint    `gorm:"not null"                    json:"product_id"`
	Quantity  uint    `gorm:"default:1;check:quantity>0"  json:"quantity"`
	UnitPrice int64   `gorm:"not null"                    json:"unit_price"`
	LineTotal int64   `gorm:"not null"                    json:"line_total"`
	Product   Product `gorm:"foreignKey:ProductID"        json:"product"`
}

type Review struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"              json:"id"`
	OrderID     uint   `gorm:"uniqueIndex;not null"                  json:"order_id"`
	UserID      uint   `gorm:"index;not null"                        json:"user_id"`
	MetizID     uint   `gorm:"index;not null"                        json:"metiz_id"`
	Rating      int    `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating"`
	ShortReview string `gorm:"not null"                              json:"short_review"`
	Description string `gorm:"not null"                              json:"description"`
}
