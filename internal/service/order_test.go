package service

import (
	"context"
	"testing"

	"circula/internal/model"
	"circula/internal/repository"
	"circula/internal/testutil"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Create(t *testing.T) {
	db := testutil.NewDB(t)
	logger, _ := test.NewNullLogger()
	svc := NewOrderService(repository.NewOrderRepository(db), repository.NewItemRepository(db), logger)
	ctx := context.Background()

	seller := testutil.CreateCustomer(t, db, "seller")
	buyer := testutil.CreateCustomer(t, db, "buyer")
	item := testutil.CreateItem(t, db, seller, "lamp", 500)

	order, err := svc.Create(ctx, buyer.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, order.ItemID)
	assert.Equal(t, buyer.ID, order.BuyerID)
	assert.Equal(t, seller.ID, order.SellerID)
	assert.False(t, order.OrderDate.IsZero())

	// a second open order for the same unsold item is allowed
	_, err = svc.Create(ctx, seller.ID, item.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, buyer.ID, item.ID+100)
	assert.ErrorIs(t, err, model.ErrItemNotFound)

	testutil.CreatePayment(t, db, order, model.PaymentSuccess)
	_, err = svc.Create(ctx, buyer.ID, item.ID)
	assert.ErrorIs(t, err, model.ErrItemSoldOut)
}

func TestOrderService_DetailIsLimitedToParties(t *testing.T) {
	db := testutil.NewDB(t)
	logger, _ := test.NewNullLogger()
	svc := NewOrderService(repository.NewOrderRepository(db), repository.NewItemRepository(db), logger)
	ctx := context.Background()

	seller := testutil.CreateCustomer(t, db, "seller")
	buyer := testutil.CreateCustomer(t, db, "buyer")
	stranger := testutil.CreateCustomer(t, db, "stranger")
	order := testutil.CreateOrder(t, db, testutil.CreateItem(t, db, seller, "lamp", 500), buyer)

	detail, err := svc.Detail(ctx, order.ID, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, "lamp", detail.ItemName)
	assert.Equal(t, "buyer", detail.CustomerName)
	assert.Equal(t, "seller", detail.SellerName)
	assert.Nil(t, detail.Status, "no payment yet")

	testutil.CreatePayment(t, db, order, model.PaymentSuccess)
	detail, err = svc.Detail(ctx, order.ID, seller.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Status)
	assert.Equal(t, string(model.PaymentSuccess), *detail.Status)

	_, err = svc.Detail(ctx, order.ID, stranger.ID)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestOrderService_History(t *testing.T) {
	db := testutil.NewDB(t)
	logger, _ := test.NewNullLogger()
	svc := NewOrderService(repository.NewOrderRepository(db), repository.NewItemRepository(db), logger)
	ctx := context.Background()

	seller := testutil.CreateCustomer(t, db, "seller")
	buyer := testutil.CreateCustomer(t, db, "buyer")
	paid := testutil.CreateOrder(t, db, testutil.CreateItem(t, db, seller, "lamp", 500), buyer)
	failed := testutil.CreateOrder(t, db, testutil.CreateItem(t, db, seller, "chair", 80), buyer)
	testutil.CreatePayment(t, db, paid, model.PaymentSuccess)
	testutil.CreatePayment(t, db, failed, model.PaymentFailed)

	purchased, err := svc.Purchased(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, purchased, 1)
	assert.Equal(t, "lamp", purchased[0].Name)
	assert.Equal(t, "seller", purchased[0].Seller.Username)

	sold, err := svc.Sold(ctx, seller.ID)
	require.NoError(t, err)
	require.Len(t, sold, 1)
	assert.Equal(t, "buyer@example.com", sold[0].Buyer.Email)

	none, err := svc.Purchased(ctx, seller.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}
