package service

import (
	"context"
	"testing"

	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/repository"
	"circula/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newItemService(t *testing.T) (ItemService, *gorm.DB) {
	db := testutil.NewDB(t)
	logger, _ := test.NewNullLogger()

	svc := NewItemService(
		repository.NewItemRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewCustomerRepository(db),
		newImageStore(t),
		"http://localhost:8000/",
		logger,
	)
	return svc, db
}

func TestItemService_Create(t *testing.T) {
	svc, db := newItemService(t)
	ctx := context.Background()
	seller := testutil.CreateCustomer(t, db, "seller")
	sub := testutil.CreateSubcategory(t, db, "Home", "Lamps")
	image := testutil.FileHeader(t, "lamp.png", testutil.PNG)

	req := dto.CreateItemRequest{Name: "Lamp", Description: "brass", Price: "49.90", SubcategoryID: sub.ID}

	_, err := svc.Create(ctx, seller.ID, req, nil)
	assert.ErrorIs(t, err, model.ErrImageRequired)

	bad := req
	bad.Price = "-1"
	_, err = svc.Create(ctx, seller.ID, bad, image)
	assert.ErrorIs(t, err, model.ErrInvalidItemData)

	bad.Price = "abc"
	_, err = svc.Create(ctx, seller.ID, bad, image)
	assert.ErrorIs(t, err, model.ErrInvalidItemData)

	bad = req
	bad.SubcategoryID = sub.ID + 100
	_, err = svc.Create(ctx, seller.ID, bad, image)
	assert.ErrorIs(t, err, model.ErrSubcategoryNotFound)

	item, err := svc.Create(ctx, seller.ID, req, image)
	require.NoError(t, err)
	assert.False(t, item.IsSold)
	assert.True(t, decimal.RequireFromString("49.90").Equal(item.Price))
	assert.Contains(t, item.ImageURL, "/uploads/product-images/")
}

func TestItemService_DetailTrimsUploadPrefix(t *testing.T) {
	svc, db := newItemService(t)
	seller := testutil.CreateCustomer(t, db, "seller")
	require.NoError(t, db.Model(seller).Update("profile_picture", "/uploads/profile-pictures/me.png").Error)
	item := testutil.CreateItem(t, db, seller, "lamp", 500)

	detail, err := svc.Detail(context.Background(), item.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.SellerProfilePicture)
	assert.Equal(t, "profile-pictures/me.png", *detail.SellerProfilePicture)

	_, err = svc.Detail(context.Background(), item.ID+1)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestItemService_Delete(t *testing.T) {
	svc, db := newItemService(t)
	ctx := context.Background()
	seller := testutil.CreateCustomer(t, db, "seller")
	other := testutil.CreateCustomer(t, db, "other")
	admin := testutil.CreateAdmin(t, db, "root")

	item := testutil.CreateItem(t, db, seller, "lamp", 500)
	assert.ErrorIs(t, svc.Delete(ctx, other.ID, item.ID), model.ErrNotItemOwner)
	require.NoError(t, svc.Delete(ctx, admin.ID, item.ID))
	assert.ErrorIs(t, svc.Delete(ctx, seller.ID, item.ID), model.ErrItemNotFound)

	ordered := testutil.CreateItem(t, db, seller, "chair", 80)
	testutil.CreateOrder(t, db, ordered, other)
	assert.ErrorIs(t, svc.Delete(ctx, seller.ID, ordered.ID), model.ErrItemHasOrders)
}

func TestItemService_Products(t *testing.T) {
	svc, db := newItemService(t)
	ctx := context.Background()
	seller := testutil.CreateCustomer(t, db, "seller")
	buyer := testutil.CreateCustomer(t, db, "buyer")

	open := testutil.CreateItem(t, db, seller, "lamp", 500)
	sold := testutil.CreateItem(t, db, seller, "chair", 80)
	testutil.CreatePayment(t, db, testutil.CreateOrder(t, db, sold, buyer), model.PaymentSuccess)

	products, err := svc.Products(ctx, seller.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, open.ID, products[0].ID)
	require.NotNil(t, products[0].ImageURL)
	assert.Equal(t, "http://localhost:8000/uploads/product-images/lamp.png", *products[0].ImageURL)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "General", *products[0].Category)

	_, err = svc.UpdateProduct(ctx, seller.ID, sold.ID, dto.UpdateProductRequest{Name: "x", Price: "1"}, nil)
	assert.ErrorIs(t, err, model.ErrSoldItemLocked)
	_, err = svc.UpdateProduct(ctx, buyer.ID, open.ID, dto.UpdateProductRequest{Name: "x", Price: "1"}, nil)
	assert.ErrorIs(t, err, model.ErrNotItemOwner)

	updated, err := svc.UpdateProduct(ctx, seller.ID, open.ID, dto.UpdateProductRequest{Name: "Desk lamp", Price: "450"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Desk lamp", updated.Name)
	assert.Equal(t, "http://localhost:8000/uploads/product-images/lamp.png", *updated.ImageURL)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, seller.ID, sold.ID), model.ErrSoldItemLocked)
	require.NoError(t, svc.DeleteProduct(ctx, seller.ID, open.ID))
}
