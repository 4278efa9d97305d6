package repository

import (
	"context"

	"circula/internal/model"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id uint) (*model.Item, error)
	FindDetail(ctx context.Context, id uint) (*model.ItemDetail, error)
	ListForBrowse(ctx context.Context, showAll bool) ([]*model.ItemListing, error)
	ListBySeller(ctx context.Context, sellerID uint) ([]*model.SellerItem, error)
	ListUnsoldProducts(ctx context.Context, sellerID uint) ([]*model.ProductRow, error)
	Update(ctx context.Context, id, sellerID uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	HasOrders(ctx context.Context, id uint) (bool, error)
	MarkSold(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type itemRepoImpl struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepoImpl{
		db: db,
	}
}

func (r *itemRepoImpl) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepoImpl) FindByID(ctx context.Context, id uint) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *itemRepoImpl) FindDetail(ctx context.Context, id uint) (*model.ItemDetail, error) {
	var detail model.ItemDetail
	result := r.db.WithContext(ctx).
		Table("items i").
		Select(`i.*,
			c.username AS seller_name,
			c.email AS seller_email,
			c.phone AS seller_phone,
			c.profile_picture AS seller_profile_picture,
			c.city AS seller_city`).
		Joins("JOIN customers c ON i.customer_id = c.id").
		Where("i.id = ?", id).
		Limit(1).
		Scan(&detail)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &detail, nil
}

// ListForBrowse hides items that already have a successful payment unless showAll is set.
func (r *itemRepoImpl) ListForBrowse(ctx context.Context, showAll bool) ([]*model.ItemListing, error) {
	purchased := r.db.
		Table("orders o").
		Select("1").
		Joins("JOIN payment_details pd ON o.id = pd.order_id").
		Where("o.item_id = i.id AND pd.payment_status = ?", model.PaymentSuccess)

	q := r.db.WithContext(ctx).
		Table("items i").
		Select(`i.id, i.customer_id, i.subcategory_id, i.name, i.description, i.price,
			i.image_url, i.is_sold, i.created_at,
			c.username AS seller_name,
			c.city AS seller_city,
			sc.category_id AS category_id,
			EXISTS (?) AS is_purchased`, purchased).
		Joins("JOIN customers c ON i.customer_id = c.id").
		Joins("JOIN subcategories sc ON i.subcategory_id = sc.id")

	if !showAll {
		q = q.Where("NOT EXISTS (?)", purchased)
	}

	var items []*model.ItemListing
	if err := q.Order("i.created_at DESC").Scan(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepoImpl) ListBySeller(ctx context.Context, sellerID uint) ([]*model.SellerItem, error) {
	var items []*model.SellerItem
	err := r.db.WithContext(ctx).
		Table("items i").
		Select(`i.id, i.name, i.description, i.price, i.image_url, i.created_at,
			i.is_sold, i.subcategory_id,
			s.category_id,
			c.city AS seller_city`).
		Joins("JOIN customers c ON i.customer_id = c.id").
		Joins("JOIN subcategories s ON i.subcategory_id = s.id").
		Where("i.customer_id = ?", sellerID).
		Order("i.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepoImpl) ListUnsoldProducts(ctx context.Context, sellerID uint) ([]*model.ProductRow, error) {
	var rows []*model.ProductRow
	err := r.db.WithContext(ctx).
		Table("items i").
		Select(`i.id, i.name, i.description, i.price, i.image_url, i.created_at,
			sc.name AS subcategory_name,
			c.name AS category_name`).
		Joins("LEFT JOIN subcategories sc ON i.subcategory_id = sc.id").
		Joins("LEFT JOIN categories c ON sc.category_id = c.id").
		Where("i.customer_id = ? AND i.is_sold = ?", sellerID, false).
		Order("i.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *itemRepoImpl) Update(ctx context.Context, id, sellerID uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ? AND customer_id = ?", id, sellerID).
		Updates(fields)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *itemRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Item{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *itemRepoImpl) HasOrders(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("item_id = ?", id).
		Count(&count).Error

	return count > 0, err
}

// MarkSold flips is_sold only while it is still false. It reports false when
// another transaction got there first.
func (r *itemRepoImpl) MarkSold(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	result := tx.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ? AND is_sold = ?", id, false).
		Update("is_sold", true)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
