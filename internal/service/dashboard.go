package service

import (
	"context"
	"fmt"
	"time"

	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/repository"

	"golang.org/x/sync/errgroup"
)

const (
	salesWindowMonths = 6
	topSellerLimit    = 5
)

type DashboardService interface {
	Metrics(ctx context.Context) (*dto.DashboardMetrics, error)
	Stats(ctx context.Context) (*dto.DashboardStats, error)
	SalesData(ctx context.Context) ([]*dto.MonthlySales, error)
	TopSellers(ctx context.Context) ([]*model.TopSeller, error)
}

type dashboardServiceImpl struct {
	reportRepo repository.ReportRepository
	now        func() time.Time
}

func NewDashboardService(reportRepo repository.ReportRepository) DashboardService {
	return &dashboardServiceImpl{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// Metrics runs the independent aggregates concurrently; the first failure cancels the rest.
func (s *dashboardServiceImpl) Metrics(ctx context.Context) (*dto.DashboardMetrics, error) {
	var metrics dto.DashboardMetrics
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		metrics.TotalUsers, err = s.reportRepo.CountCustomers(gctx, "")
		return wrap(err, "count users")
	})
	g.Go(func() (err error) {
		metrics.TotalProducts, err = s.reportRepo.CountItems(gctx)
		return wrap(err, "count items")
	})
	g.Go(func() (err error) {
		metrics.Revenue, err = s.reportRepo.Revenue(gctx, nil, nil)
		return wrap(err, "revenue")
	})
	g.Go(func() (err error) {
		metrics.Satisfaction, err = s.reportRepo.AverageRating(gctx)
		return wrap(err, "average rating")
	})
	g.Go(func() (err error) {
		metrics.PendingOrders, err = s.reportRepo.CountPayments(gctx, model.PaymentFailed)
		return wrap(err, "count failed payments")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &metrics, nil
}

func (s *dashboardServiceImpl) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	var stats dto.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalCustomers, err = s.reportRepo.CountCustomers(gctx, model.RoleCustomer)
		return wrap(err, "count customers")
	})
	g.Go(func() (err error) {
		stats.TotalItems, err = s.reportRepo.CountItems(gctx)
		return wrap(err, "count items")
	})
	g.Go(func() (err error) {
		stats.TotalSales, err = s.reportRepo.SoldItemsTotal(gctx)
		return wrap(err, "sold items total")
	})
	g.Go(func() (err error) {
		stats.AverageRating, err = s.reportRepo.AverageRating(gctx)
		return wrap(err, "average rating")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func wrap(err error, op string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SalesData counts successful sales per month, oldest first, for the last
// six months including the current one. Months without sales report zero.
func (s *dashboardServiceImpl) SalesData(ctx context.Context) ([]*dto.MonthlySales, error) {
	current, _ := monthBounds(s.now())
	since := current.AddDate(0, -(salesWindowMonths - 1), 0)

	sales, err := s.reportRepo.SalesSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	buckets := make([]*dto.MonthlySales, salesWindowMonths)
	for i := range buckets {
		buckets[i] = &dto.MonthlySales{Month: since.AddDate(0, i, 0).Format("Jan")}
	}

	for _, sale := range sales {
		d := sale.OrderDate.In(since.Location())
		idx := (d.Year()-since.Year())*12 + int(d.Month()) - int(since.Month())
		if idx >= 0 && idx < salesWindowMonths {
			buckets[idx].Sales++
		}
	}

	return buckets, nil
}

func (s *dashboardServiceImpl) TopSellers(ctx context.Context) ([]*model.TopSeller, error) {
	sellers, err := s.reportRepo.TopSellers(ctx, topSellerLimit)
	if err != nil {
		return nil, fmt.Errorf("top sellers: %w", err)
	}

	return sellers, nil
}
