package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronin/metiz-market/internal/models"
)

func TestBasketService_GetBasket_CreatesLazily(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &BasketService{Repo: r}
	ctx := context.Background()

	basket, err := svc.GetBasket(ctx, 1)
	require.NoError(t, err)
	require.NotZero(t, basket.ID)
	assert.Empty(t, basket.Items)

	again, err := svc.GetBasket(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, basket.ID, again.ID)
}

func TestBasketService_AddItem_AccumulatesQuantity(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &BasketService{Repo: r}
	ctx := context.Background()

	metiz := seedMetiz(t, r, "bolts")
	product := seedProduct(t, r, metiz.ID, "bolt M8", 100)

	_, err := svc.AddItem(ctx, 1, product.ID, 2)
	require.NoError(t, err)

	item, err := svc.AddItem(ctx, 1, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(5), item.Quantity)
	assert.Equal(t, product.ID, item.Product.ID)

	var count int64
	require.NoError(t, r.DB.Model(&models.BasketItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBasketService_AddItem_ProductNotFound(t *testing.T) {
	t.Parallel()

	svc := &BasketService{Repo: newTestRepo(t)}

	_, err := svc.AddItem(context.Background(), 1, 42, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBasketService_AddItem_ZeroQuantity(t *testing.T) {
	t.Parallel()

	svc := &BasketService{Repo: newTestRepo(t)}

	_, err := svc.AddItem(context.Background(), 1, 1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBasketService_AddItem_VendorConflict(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &BasketService{Repo: r}
	ctx := context.Background()

	metizA := seedMetiz(t, r, "bolts")
	metizB := seedMetiz(t, r, "nuts")
	productA := seedProduct(t, r, metizA.ID, "bolt M8", 100)
	productB := seedProduct(t, r, metizB.ID, "nut M8", 50)

	_, err := svc.AddItem(ctx, 1, productA.ID, 1)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, 1, productB.ID, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVendorConflict)

	basket, err := svc.GetBasket(ctx, 1)
	require.NoError(t, err)
	require.Len(t, basket.Items, 1)
	assert.Equal(t, productA.ID, basket.Items[0].ProductID)
}

func TestBasketService_UpdateQuantity(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &BasketService{Repo: r}
	ctx := context.Background()

	metiz := seedMetiz(t, r, "bolts")
	product := seedProduct(t, r, metiz.ID, "bolt M8", 100)

	_, err := svc.AddItem(ctx, 1, product.ID, 2)
	require.NoError(t, err)

	item, err := svc.UpdateQuantity(ctx, 1, product.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), item.Quantity)

	_, err = svc.UpdateQuantity(ctx, 1, product.ID+100, 7)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateQuantity(ctx, 1, product.ID, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBasketService_RemoveItem(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &BasketService{Repo: r}
	ctx := context.Background()

	err := svc.RemoveItem(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrNotFound, "no basket yet")

	metiz := seedMetiz(t, r, "bolts")
	product := seedProduct(t, r, metiz.ID, "bolt M8", 100)
	_, err = svc.AddItem(ctx, 1, product.ID, 2)
	require.NoError(t, err)

	err = svc.RemoveItem(ctx, 1, product.ID+100)
	assert.ErrorIs(t, err, ErrNotFound, "product not in basket")

	require.NoError(t, svc.RemoveItem(ctx, 1, product.ID))

	basket, err := svc.GetBasket(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, basket.Items)
}

func TestBasketService_Clear(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &BasketService{Repo: r}
	ctx := context.Background()

	err := svc.Clear(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound, "no basket yet")

	metiz := seedMetiz(t, r, "bolts")
	productA := seedProduct(t, r, metiz.ID, "bolt M8", 100)
	productB := seedProduct(t, r, metiz.ID, "bolt M10", 120)
	_, err = svc.AddItem(ctx, 1, productA.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 1, productB.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, 1))

	basket, err := svc.GetBasket(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, basket.Items)

	// clearing an already empty basket is a no-op
	require.NoError(t, svc.Clear(ctx, 1))
}
