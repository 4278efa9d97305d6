package service

import (
	"context"
	"testing"
	"time"

	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/repository"
	"circula/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCardService(repository.NewCardRepository(db)).(*cardServiceImpl)
	svc.now = func() time.Time { return february2024 }
	ctx := context.Background()
	buyer := testutil.CreateCustomer(t, db, "buyer")

	_, err := svc.Get(ctx, buyer.ID)
	assert.ErrorIs(t, err, model.ErrCardNotFound)
	assert.ErrorIs(t, svc.Update(ctx, buyer.ID, dto.CardRequest{CardNumber: "4111111111111111", ExpiryDate: "05/26", CardHolderName: "Buyer"}), model.ErrCardNotFound)

	err = svc.Save(ctx, buyer.ID, dto.CardRequest{CardNumber: "4111", ExpiryDate: "05/26", CardHolderName: "Buyer"})
	assert.ErrorIs(t, err, model.ErrInvalidCard)

	require.NoError(t, svc.Save(ctx, buyer.ID, dto.CardRequest{CardNumber: "4111 1111 1111 1111", ExpiryDate: "05/26", CardHolderName: "Buyer"}))
	require.NoError(t, svc.Update(ctx, buyer.ID, dto.CardRequest{CardNumber: "5500 0000 0000 0004", ExpiryDate: "06/27", CardHolderName: "Buyer"}))

	card, err := svc.Get(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, "5500000000000004", card.CardNumber)
	assert.Equal(t, 2027, card.ExpiryDate.Year())

	require.NoError(t, svc.Delete(ctx, buyer.ID))
	assert.ErrorIs(t, svc.Delete(ctx, buyer.ID), model.ErrCardNotFound)
}

func TestWishlistService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewWishlistService(repository.NewWishlistRepository(db), repository.NewItemRepository(db))
	ctx := context.Background()
	seller := testutil.CreateCustomer(t, db, "seller")
	buyer := testutil.CreateCustomer(t, db, "buyer")
	item := testutil.CreateItem(t, db, seller, "lamp", 500)

	ids, err := svc.ItemIDs(ctx, buyer.ID)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	_, err = svc.Toggle(ctx, buyer.ID, 0)
	assert.ErrorIs(t, err, model.ErrWishlistItemRequired)
	_, err = svc.Toggle(ctx, buyer.ID, item.ID+5)
	assert.ErrorIs(t, err, model.ErrItemNotFound)

	removed, err := svc.Toggle(ctx, buyer.ID, item.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	items, err := svc.Items(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// sold items drop out of the wishlist view
	testutil.CreatePayment(t, db, testutil.CreateOrder(t, db, item, seller), model.PaymentSuccess)
	items, err = svc.Items(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFeedbackService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewFeedbackService(repository.NewFeedbackRepository(db))
	ctx := context.Background()
	alice := testutil.CreateCustomer(t, db, "alice")

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Submit(ctx, alice.ID, dto.FeedbackRequest{Rating: rating, Message: "meh"})
		assert.ErrorIs(t, err, model.ErrInvalidFeedback)
	}

	fb, err := svc.Submit(ctx, alice.ID, dto.FeedbackRequest{Rating: 5, Message: "  great service "})
	require.NoError(t, err)
	assert.NotZero(t, fb.ID)

	rows, err := svc.List(ctx, "great")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0].UserName)
	assert.Equal(t, "great service", rows[0].Comment)

	rows, err = svc.List(ctx, "nothing like this")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCategoryService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "   ")
	assert.ErrorIs(t, err, model.ErrNameRequired)

	cat, err := svc.CreateCategory(ctx, "Books")
	require.NoError(t, err)
	sub, err := svc.CreateSubcategory(ctx, cat.ID, "Novels")
	require.NoError(t, err)

	require.NoError(t, svc.RenameSubcategory(ctx, sub.ID, "Fiction"))
	assert.ErrorIs(t, svc.RenameCategory(ctx, cat.ID+1, "x"), model.ErrCategoryNotFound)

	subs, err := svc.ListSubcategories(ctx, cat.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Fiction", subs[0].Name)

	require.NoError(t, svc.DeleteCategory(ctx, cat.ID))
	assert.ErrorIs(t, svc.DeleteSubcategory(ctx, sub.ID), model.ErrSubcategoryNotFound)
}
