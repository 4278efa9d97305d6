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

type OrderService interface {
	Create(ctx context.Context, buyerID, itemID uint) (*model.Order, error)
	Detail(ctx context.Context, orderID, userID uint) (*model.OrderDetail, error)
	Purchased(ctx context.Context, buyerID uint) ([]*dto.PurchasedItem, error)
	Sold(ctx context.Context, sellerID uint) ([]*dto.SoldItem, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.ItemRepository
	logger    *logrus.Logger
	now       func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	logger *logrus.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Create records the buyer's intent to purchase. The sold check here is only
// a fast path; payment re-checks under a transaction.
func (s *orderServiceImpl) Create(ctx context.Context, buyerID, itemID uint) (*model.Order, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find item: %w", err)
	}
	if item.IsSold {
		return nil, model.ErrItemSoldOut
	}

	order := &model.Order{
		ItemID:    item.ID,
		BuyerID:   buyerID,
		SellerID:  item.CustomerID,
		OrderDate: s.now(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"item_id":  item.ID,
		"buyer_id": buyerID,
	}).Info("order created")

	return order, nil
}

func (s *orderServiceImpl) Detail(ctx context.Context, orderID, userID uint) (*model.OrderDetail, error) {
	detail, err := s.orderRepo.FindDetailForParty(ctx, orderID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order detail: %w", err)
	}

	return detail, nil
}

func (s *orderServiceImpl) Purchased(ctx context.Context, buyerID uint) ([]*dto.PurchasedItem, error) {
	rows, err := s.orderRepo.ListPurchased(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list purchased items: %w", err)
	}

	items := make([]*dto.PurchasedItem, len(rows))
	for i, row := range rows {
		items[i] = &dto.PurchasedItem{
			OrderID:      row.OrderID,
			ItemID:       row.ItemID,
			Name:         row.Name,
			Price:        row.Price,
			ImageURL:     row.ImageURL,
			PurchaseDate: row.PurchaseDate,
			Seller:       dto.Party{Username: row.SellerUsername, Email: row.SellerEmail},
		}
	}

	return items, nil
}

func (s *orderServiceImpl) Sold(ctx context.Context, sellerID uint) ([]*dto.SoldItem, error) {
	rows, err := s.orderRepo.ListSold(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list sold items: %w", err)
	}

	items := make([]*dto.SoldItem, len(rows))
	for i, row := range rows {
		items[i] = &dto.SoldItem{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Price:       row.Price,
			ImageURL:    row.ImageURL,
			SaleDate:    row.SaleDate,
			Buyer:       dto.Party{Username: row.BuyerUsername, Email: row.BuyerEmail},
		}
	}

	return items, nil
}
