package repository

import (
	"context"

	"circula/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID uint) (*model.Order, error)
	FindDetailForParty(ctx context.Context, orderID, userID uint) (*model.OrderDetail, error)
	ListPurchased(ctx context.Context, buyerID uint) ([]*model.PurchasedRow, error)
	ListSold(ctx context.Context, sellerID uint) ([]*model.SoldRow, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ?", orderID).
		First(&order).Error
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// FindDetailForParty only returns the order to its buyer or its seller.
func (r *orderRepoImpl) FindDetailForParty(ctx context.Context, orderID, userID uint) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	result := r.db.WithContext(ctx).
		Table("orders o").
		Select(`o.id AS order_id,
			o.order_date AS date,
			i.name AS item_name,
			i.price AS total_amount,
			i.image_url AS item_image_url,
			c.username AS customer_name,
			c.email AS customer_email,
			s.username AS seller_name,
			pd.payment_status AS status,
			pd.payment_date`).
		Joins("JOIN items i ON o.item_id = i.id").
		Joins("JOIN customers c ON o.buyer_id = c.id").
		Joins("JOIN customers s ON o.seller_id = s.id").
		Joins("LEFT JOIN payment_details pd ON o.id = pd.order_id").
		Where("o.id = ? AND (o.buyer_id = ? OR o.seller_id = ?)", orderID, userID, userID).
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

func (r *orderRepoImpl) ListPurchased(ctx context.Context, buyerID uint) ([]*model.PurchasedRow, error) {
	var rows []*model.PurchasedRow
	err := r.db.WithContext(ctx).
		Table("orders o").
		Select(`o.id AS order_id,
			i.id AS item_id,
			i.name,
			i.price,
			i.image_url,
			o.order_date AS purchase_date,
			c.username AS seller_username,
			c.email AS seller_email`).
		Joins("JOIN items i ON o.item_id = i.id").
		Joins("JOIN payment_details pd ON o.id = pd.order_id").
		Joins("JOIN customers c ON o.seller_id = c.id").
		Where("o.buyer_id = ? AND pd.payment_status = ?", buyerID, model.PaymentSuccess).
		Order("o.order_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *orderRepoImpl) ListSold(ctx context.Context, sellerID uint) ([]*model.SoldRow, error) {
	var rows []*model.SoldRow
	err := r.db.WithContext(ctx).
		Table("items i").
		Select(`i.id, i.name, i.description, i.price, i.image_url,
			o.order_date AS sale_date,
			c.username AS buyer_username,
			c.email AS buyer_email`).
		Joins("JOIN orders o ON i.id = o.item_id").
		Joins("JOIN customers c ON o.buyer_id = c.id").
		Joins("JOIN payment_details p ON o.id = p.order_id").
		Where("o.seller_id = ? AND i.is_sold = ? AND p.payment_status = ?", sellerID, true, model.PaymentSuccess).
		Order("o.order_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
