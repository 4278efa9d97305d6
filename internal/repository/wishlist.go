package repository

import (
	"context"

	"circula/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistRepository interface {
	ItemIDs(ctx context.Context, customerID uint) ([]uint, error)
	Toggle(ctx context.Context, customerID, itemID uint) (removed bool, err error)
	Items(ctx context.Context, customerID uint) ([]*model.WishlistItem, error)
}

type wishlistRepoImpl struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepoImpl{
		db: db,
	}
}

func (r *wishlistRepoImpl) ItemIDs(ctx context.Context, customerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.Wishlist{}).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// Toggle removes the entry when present, otherwise adds it.
func (r *wishlistRepoImpl) Toggle(ctx context.Context, customerID, itemID uint) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("customer_id = ? AND item_id = ?", customerID, itemID).
			Delete(&model.Wishlist{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			removed = true
			return nil
		}

		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.Wishlist{CustomerID: customerID, ItemID: itemID}).Error
	})

	return removed, err
}

func (r *wishlistRepoImpl) Items(ctx context.Context, customerID uint) ([]*model.WishlistItem, error) {
	var items []*model.WishlistItem
	err := r.db.WithContext(ctx).
		Table("wishlist w").
		Select("i.*, w.created_at AS added_to_wishlist, c.city AS seller_city").
		Joins("JOIN items i ON w.item_id = i.id").
		Joins("JOIN customers c ON i.customer_id = c.id").
		Where("w.customer_id = ? AND i.is_sold = ?", customerID, false).
		Order("w.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
