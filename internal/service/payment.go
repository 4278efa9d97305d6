package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PaymentService interface {
	Pay(ctx context.Context, buyerID uint, req dto.PaymentRequest) error
}

type paymentServiceImpl struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	itemRepo    repository.ItemRepository
	cardRepo    repository.CardRepository
	paymentRepo repository.PaymentRepository
	logger      *logrus.Logger
	now         func() time.Time
}

func NewPaymentService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	cardRepo repository.CardRepository,
	paymentRepo repository.PaymentRepository,
	logger *logrus.Logger,
) PaymentService {
	return &paymentServiceImpl{
		db:          db,
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		cardRepo:    cardRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Pay captures a simulated card payment for the buyer's order and marks the
// item sold. Card checks and ownership run before the transaction opens.
// Inside it, the conditional sold-flag update is what stops a second sale.
func (s *paymentServiceImpl) Pay(ctx context.Context, buyerID uint, req dto.PaymentRequest) error {
	card, err := validateCardDetails(req.CardDetails, s.now())
	if err != nil {
		return err
	}

	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("find order: %w", err)
	}
	if order.BuyerID != buyerID {
		return model.ErrOrderForbidden
	}

	log := s.logger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"item_id":  order.ItemID,
		"buyer_id": buyerID,
	})

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sold, err := s.paymentRepo.HasSuccessForItem(ctx, tx, order.ItemID)
		if err != nil {
			return fmt.Errorf("check item payments: %w", err)
		}
		if sold {
			return model.ErrItemSoldOut
		}

		card.CustomerID = buyerID
		cardID, err := s.cardRepo.Save(ctx, tx, card)
		if err != nil {
			return fmt.Errorf("save card: %w", err)
		}

		flipped, err := s.itemRepo.MarkSold(ctx, tx, order.ItemID)
		if err != nil {
			return fmt.Errorf("mark item sold: %w", err)
		}
		if !flipped {
			return model.ErrItemSoldOut
		}

		err = s.paymentRepo.Create(ctx, tx, &model.PaymentDetail{
			OrderID:       order.ID,
			CardID:        cardID,
			PaymentStatus: model.PaymentSuccess,
		})
		if err != nil {
			return fmt.Errorf("store payment: %w", err)
		}

		return nil
	})

	switch {
	case errors.Is(err, model.ErrItemSoldOut):
		log.Info("payment rejected, item already sold")
		return err
	case err != nil:
		log.WithError(err).Error("payment transaction rolled back")
		return err
	}

	log.Info("payment captured")
	return nil
}
