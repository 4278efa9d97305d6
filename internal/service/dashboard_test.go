package service

import (
	"context"
	"testing"
	"time"

	"circula/internal/model"
	"circula/internal/repository"
	"circula/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_SalesData(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewDashboardService(repository.NewReportRepository(db)).(*dashboardServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	seller := testutil.CreateCustomer(t, db, "seller")
	buyer := testutil.CreateCustomer(t, db, "buyer")
	sell := func(name string, at time.Time, status model.PaymentStatus) {
		order := testutil.CreateOrder(t, db, testutil.CreateItem(t, db, seller, name, 10), buyer)
		setOrderDate(t, db, order, at)
		testutil.CreatePayment(t, db, order, status)
	}

	sell("a", time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), model.PaymentSuccess)
	sell("b", time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC), model.PaymentSuccess)
	sell("c", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), model.PaymentSuccess)
	sell("d", time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), model.PaymentFailed)
	sell("e", time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC), model.PaymentSuccess)

	data, err := svc.SalesData(context.Background())
	require.NoError(t, err)
	require.Len(t, data, 6)

	months := make([]string, len(data))
	sales := make([]int, len(data))
	for i, d := range data {
		months[i] = d.Month
		sales[i] = d.Sales
	}
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, months)
	assert.Equal(t, []int{0, 0, 0, 2, 0, 1}, sales)
}

func TestDashboardService_MetricsAndStats(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewDashboardService(repository.NewReportRepository(db))
	ctx := context.Background()

	seller := testutil.CreateCustomer(t, db, "seller")
	buyer := testutil.CreateCustomer(t, db, "buyer")
	testutil.CreateAdmin(t, db, "root")

	sold := testutil.CreateItem(t, db, seller, "lamp", 500)
	testutil.CreateItem(t, db, seller, "chair", 80)
	testutil.CreatePayment(t, db, testutil.CreateOrder(t, db, sold, buyer), model.PaymentSuccess)
	failed := testutil.CreateItem(t, db, seller, "desk", 300)
	testutil.CreatePayment(t, db, testutil.CreateOrder(t, db, failed, buyer), model.PaymentFailed)

	require.NoError(t, db.Create(&model.Feedback{CustomerID: buyer.ID, Rating: 4}).Error)
	require.NoError(t, db.Create(&model.Feedback{CustomerID: seller.ID, Rating: 5}).Error)

	metrics, err := svc.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), metrics.TotalUsers)
	assert.Equal(t, int64(3), metrics.TotalProducts)
	assert.True(t, decimal.NewFromInt(500).Equal(metrics.Revenue))
	assert.InDelta(t, 4.5, metrics.Satisfaction, 0.001)
	assert.Equal(t, int64(1), metrics.PendingOrders)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalCustomers, "admins are not customers")
	assert.Equal(t, int64(3), stats.TotalItems)
	assert.True(t, decimal.NewFromInt(500).Equal(stats.TotalSales))

	top, err := svc.TopSellers(ctx)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "seller", top[0].Name)
}
