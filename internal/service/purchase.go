package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/report"
	"circula/internal/repository"

	"github.com/sirupsen/logrus"
)

// PurchaseService is the admin view over orders that reached payment.
type PurchaseService interface {
	List(ctx context.Context, filter model.PurchaseFilter) ([]*model.Purchase, error)
	Find(ctx context.Context, orderID uint) (*model.Purchase, error)
	Metrics(ctx context.Context) (*dto.PurchaseMetrics, error)
	UpdateStatus(ctx context.Context, orderID uint, status model.PaymentStatus) (*model.Purchase, error)
	ExportPDF(ctx context.Context, w io.Writer, from, to *time.Time) error
}

type purchaseServiceImpl struct {
	reportRepo  repository.ReportRepository
	paymentRepo repository.PaymentRepository
	itemRepo    repository.ItemRepository
	logger      *logrus.Logger
	now         func() time.Time
}

func NewPurchaseService(
	reportRepo repository.ReportRepository,
	paymentRepo repository.PaymentRepository,
	itemRepo repository.ItemRepository,
	logger *logrus.Logger,
) PurchaseService {
	return &purchaseServiceImpl{
		reportRepo:  reportRepo,
		paymentRepo: paymentRepo,
		itemRepo:    itemRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *purchaseServiceImpl) List(ctx context.Context, filter model.PurchaseFilter) ([]*model.Purchase, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, model.ErrInvalidPaymentStatus
	}

	purchases, err := s.reportRepo.ListPurchases(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	return purchases, nil
}

func (s *purchaseServiceImpl) Find(ctx context.Context, orderID uint) (*model.Purchase, error) {
	purchase, err := s.reportRepo.FindPurchase(ctx, orderID)
	if err != nil {
		return nil, notFound(err, model.ErrPurchaseNotFound)
	}

	return purchase, nil
}

func (s *purchaseServiceImpl) Metrics(ctx context.Context) (*dto.PurchaseMetrics, error) {
	successful, err := s.reportRepo.CountPayments(ctx, model.PaymentSuccess)
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	total, err := s.reportRepo.Revenue(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	from, to := monthBounds(s.now())
	month, err := s.reportRepo.Revenue(ctx, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("month revenue: %w", err)
	}

	return &dto.PurchaseMetrics{
		TotalSuccessfulPayments: successful,
		TotalRevenue:            total,
		CurrentMonthPayments:    month,
	}, nil
}

// UpdateStatus is the admin override. It rewrites the payment status only;
// the item's sold flag is left as it is and the mismatch is logged.
func (s *purchaseServiceImpl) UpdateStatus(ctx context.Context, orderID uint, status model.PaymentStatus) (*model.Purchase, error) {
	if !status.Valid() {
		return nil, model.ErrInvalidPaymentStatus
	}

	current, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, model.ErrPurchaseNotFound)
	}

	if err := s.paymentRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, notFound(err, model.ErrPurchaseNotFound)
	}

	purchase, err := s.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if current.PaymentStatus != status {
		log := s.logger.WithFields(logrus.Fields{
			"order_id": orderID,
			"item_id":  purchase.ProductID,
			"from":     current.PaymentStatus,
			"to":       status,
		})
		if item, err := s.itemRepo.FindByID(ctx, purchase.ProductID); err == nil {
			log = log.WithField("item_sold", item.IsSold)
		}
		log.Warn("payment status overridden by admin")
	}

	return purchase, nil
}

func (s *purchaseServiceImpl) ExportPDF(ctx context.Context, w io.Writer, from, to *time.Time) error {
	purchases, err := s.reportRepo.ListPurchases(ctx, model.PurchaseFilter{DateFrom: from, DateTo: to})
	if err != nil {
		return fmt.Errorf("list purchases: %w", err)
	}

	return report.WritePurchases(w, purchases, s.now())
}

// monthBounds returns [first day of t's month, first day of the next month).
func monthBounds(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}
