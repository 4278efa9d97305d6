// Package testutil holds fixtures shared by the repository, service and handler tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"circula/internal/client"
	"circula/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory SQLite database private to the test.
// The pool holds a single connection, so transactions from concurrent
// goroutines run one after another.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	logger, _ := test.NewNullLogger()
	db, err := client.InitSqliteClient(dsn, logger)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, client.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func CreateCustomer(t *testing.T, db *gorm.DB, username string) *model.Customer {
	t.Helper()

	c := &model.Customer{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     model.RoleCustomer,
		Status:   model.UserActive,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateAdmin(t *testing.T, db *gorm.DB, username string) *model.Customer {
	t.Helper()

	c := CreateCustomer(t, db, username)
	require.NoError(t, db.Model(c).Update("role", model.RoleAdmin).Error)
	c.Role = model.RoleAdmin
	return c
}

func CreateSubcategory(t *testing.T, db *gorm.DB, category, name string) *model.Subcategory {
	t.Helper()

	cat := &model.Category{Name: category}
	require.NoError(t, db.Where(model.Category{Name: category}).FirstOrCreate(cat).Error)

	sub := &model.Subcategory{CategoryID: cat.ID, Name: name}
	require.NoError(t, db.Create(sub).Error)
	return sub
}

func CreateItem(t *testing.T, db *gorm.DB, seller *model.Customer, name string, price int64) *model.Item {
	t.Helper()

	sub := CreateSubcategory(t, db, "General", "Misc "+uuid.NewString()[:8])
	item := &model.Item{
		CustomerID:    seller.ID,
		SubcategoryID: sub.ID,
		Name:          name,
		Description:   name + " description",
		Price:         decimal.NewFromInt(price),
		ImageURL:      "/uploads/product-images/" + name + ".png",
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func CreateOrder(t *testing.T, db *gorm.DB, item *model.Item, buyer *model.Customer) *model.Order {
	t.Helper()

	o := &model.Order{
		ItemID:    item.ID,
		BuyerID:   buyer.ID,
		SellerID:  item.CustomerID,
		OrderDate: time.Now(),
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

// CreatePayment records a payment with a throwaway card, bypassing the checkout flow.
func CreatePayment(t *testing.T, db *gorm.DB, order *model.Order, status model.PaymentStatus) *model.PaymentDetail {
	t.Helper()

	card := &model.Card{
		CustomerID:     order.BuyerID,
		CardNumber:     "4111111111111111",
		ExpiryDate:     time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
		CardHolderName: "Test Holder",
	}
	require.NoError(t, db.Where(model.Card{CustomerID: order.BuyerID}).FirstOrCreate(card).Error)

	p := &model.PaymentDetail{OrderID: order.ID, CardID: card.ID, PaymentStatus: status}
	require.NoError(t, db.Create(p).Error)

	if status == model.PaymentSuccess {
		require.NoError(t, db.Model(&model.Item{}).Where("id = ?", order.ItemID).Update("is_sold", true).Error)
	}
	return p
}
