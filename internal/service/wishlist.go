package service

import (
	"context"
	"fmt"

	"circula/internal/model"
	"circula/internal/repository"
)

type WishlistService interface {
	ItemIDs(ctx context.Context, customerID uint) ([]uint, error)
	Toggle(ctx context.Context, customerID, itemID uint) (removed bool, err error)
	Items(ctx context.Context, customerID uint) ([]*model.WishlistItem, error)
}

type wishlistServiceImpl struct {
	wishlistRepo repository.WishlistRepository
	itemRepo     repository.ItemRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, itemRepo repository.ItemRepository) WishlistService {
	return &wishlistServiceImpl{
		wishlistRepo: wishlistRepo,
		itemRepo:     itemRepo,
	}
}

func (s *wishlistServiceImpl) ItemIDs(ctx context.Context, customerID uint) ([]uint, error) {
	ids, err := s.wishlistRepo.ItemIDs(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist ids: %w", err)
	}
	if ids == nil {
		ids = []uint{}
	}

	return ids, nil
}

func (s *wishlistServiceImpl) Toggle(ctx context.Context, customerID, itemID uint) (bool, error) {
	if itemID == 0 {
		return false, model.ErrWishlistItemRequired
	}
	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		return false, notFound(err, model.ErrItemNotFound)
	}

	removed, err := s.wishlistRepo.Toggle(ctx, customerID, itemID)
	if err != nil {
		return false, fmt.Errorf("toggle wishlist: %w", err)
	}

	return removed, nil
}

func (s *wishlistServiceImpl) Items(ctx context.Context, customerID uint) ([]*model.WishlistItem, error) {
	items, err := s.wishlistRepo.Items(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist items: %w", err)
	}

	return items, nil
}
