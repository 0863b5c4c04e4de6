package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/avoronin/metiz-market/internal/models"
	"github.com/avoronin/metiz-market/internal/repo"
	"github.com/avoronin/metiz-market/internal/transport"
)

// transitions is the legal edge set of the order lifecycle. Completed and
// cancelled orders are terminal.
var transitions = map[string][]string{
	models.StatusPending:    {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:  {},
	models.StatusCancelled:  {},
}

func canTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

type OrderService struct {
	Repo *repo.GormRepo
}

// CreateOrder snapshots the basket into an order. The single-metiz rule is
// re-checked here: two concurrent AddItem calls can both pass the write-time
// check, so checkout must fail safely instead of producing a mixed order.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.DeliveryAddress == "" {
		return nil, fmt.Errorf("%w: delivery_address required", ErrValidation)
	}

	basket, err := s.Repo.GetBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: nothing to order", ErrEmptyBasket)
		}
		return nil, err
	}
	if len(basket.Items) == 0 {
		return nil, fmt.Errorf("%w: nothing to order", ErrEmptyBasket)
	}

	metizID := basket.Items[0].Product.MetizID

	var (
		total     int64
		lines     []models.OrderItem
		nameParts []string
	)
	for _, it := range basket.Items {
		if it.Product.MetizID != metizID {
			return nil, fmt.Errorf("%w: basket holds products of more than one metiz", ErrVendorConflict)
		}

		lineTotal := int64(it.Quantity) * it.Product.Price
		total += lineTotal
		lines = append(lines, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.Product.Price,
			LineTotal: lineTotal,
		})
		nameParts = append(nameParts, fmt.Sprintf("%s x %d", it.Product.Name, it.Quantity))
	}

	order := &models.Order{
		UserID:          userID,
		MetizID:         metizID,
		Name:            strings.Join(nameParts, "; "),
		DeliveryAddress: req.DeliveryAddress,
		Description:     req.Description,
		TotalCost:       total,
		Status:          models.StatusPending,
		DateOfOrdering:  time.Now().UTC(),
	}

	if err := s.Repo.CreateOrderFromBasket(ctx, order, lines, basket.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListUserOrders(ctx, userID)
}

func (s *OrderService) ListMetizOrders(ctx context.Context, metizID uint) ([]models.Order, error) {
	if _, err := s.Repo.GetMetiz(ctx, metizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: metiz %d", ErrNotFound, metizID)
		}
		return nil, err
	}
	return s.Repo.ListMetizOrders(ctx, metizID)
}

// UpdateStatus is the vendor-side status change. Unknown status strings are
// rejected outright; known ones must also be a legal transition from the
// order's current status.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status string) (*models.Order, error) {
	if !models.IsAllowedStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !canTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: cannot move order from %q to %q", ErrInvalidState, order.Status, status)
	}

	if err := s.Repo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// CancelOrder is the user-side cancel policy: owner only, and only while
// the order is still pending.
func (s *OrderService) CancelOrder(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: order belongs to another user", ErrForbidden)
	}
	if order.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: only pending orders can be cancelled", ErrInvalidState)
	}

	if err := s.Repo.UpdateOrderStatus(ctx, orderID, models.StatusCancelled); err != nil {
		return nil, err
	}
	order.Status = models.StatusCancelled
	return order, nil
}

func (s *OrderService) UpdateCompletionTime(ctx context.Context, metizID, orderID uint, completionTime string) (*models.Order, error) {
	if completionTime == "" {
		return nil, fmt.Errorf("%w: completion_time required", ErrValidation)
	}

	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.MetizID != metizID {
		return nil, fmt.Errorf("%w: order belongs to another metiz", ErrForbidden)
	}

	if err := s.Repo.UpdateOrderCompletionTime(ctx, orderID, completionTime); err != nil {
		return nil, err
	}
	order.CompletionTime = &completionTime
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, userID, orderID uint) error {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return fmt.Errorf("%w: order belongs to another user", ErrForbidden)
	}
	return s.Repo.DeleteOrder(ctx, orderID)
}
