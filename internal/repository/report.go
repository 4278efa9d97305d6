package repository

import (
	"context"
	"time"

	"circula/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportRepository serves the admin back-office: purchase listings and aggregate counters.
type ReportRepository interface {
	ListPurchases(ctx context.Context, filter model.PurchaseFilter) ([]*model.Purchase, error)
	FindPurchase(ctx context.Context, orderID uint) (*model.Purchase, error)

	CountCustomers(ctx context.Context, role model.Role) (int64, error)
	CountItems(ctx context.Context) (int64, error)
	CountPayments(ctx context.Context, status model.PaymentStatus) (int64, error)
	Revenue(ctx context.Context, from, to *time.Time) (decimal.Decimal, error)
	SoldItemsTotal(ctx context.Context) (decimal.Decimal, error)
	AverageRating(ctx context.Context) (float64, error)
	SalesSince(ctx context.Context, since time.Time) ([]*model.Sale, error)
	TopSellers(ctx context.Context, limit int) ([]*model.TopSeller, error)
}

type reportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepoImpl{
		db: db,
	}
}

func (r *reportRepoImpl) purchases(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders o").
		Select(`o.id, o.id AS order_id, o.order_date AS date, i.price AS amount,
			c.username AS customer_name, c.email AS customer_email,
			i.name AS product_name, i.id AS product_id,
			pd.payment_status AS status,
			s.id AS seller_id, s.username AS seller_name`).
		Joins("JOIN customers c ON o.buyer_id = c.id").
		Joins("JOIN items i ON o.item_id = i.id").
		Joins("JOIN payment_details pd ON o.id = pd.order_id").
		Joins("JOIN customers s ON i.customer_id = s.id")
}

func (r *reportRepoImpl) ListPurchases(ctx context.Context, filter model.PurchaseFilter) ([]*model.Purchase, error) {
	q := r.purchases(ctx)

	if filter.Status != "" {
		q = q.Where("pd.payment_status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		q = q.Where("o.order_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("o.order_date <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(CAST(o.id AS CHAR) LIKE ? OR c.username LIKE ? OR i.name LIKE ? OR c.email LIKE ?)",
			like, like, like, like)
	}

	var purchases []*model.Purchase
	if err := q.Order("o.order_date DESC").Scan(&purchases).Error; err != nil {
		return nil, err
	}

	return purchases, nil
}

func (r *reportRepoImpl) FindPurchase(ctx context.Context, orderID uint) (*model.Purchase, error) {
	var purchase model.Purchase
	result := r.purchases(ctx).
		Where("o.id = ?", orderID).
		Limit(1).
		Scan(&purchase)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &purchase, nil
}

// CountCustomers counts every account when role is empty.
func (r *reportRepoImpl) CountCustomers(ctx context.Context, role model.Role) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Customer{})
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *reportRepoImpl) CountItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&count).Error
	return count, err
}

func (r *reportRepoImpl) CountPayments(ctx context.Context, status model.PaymentStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PaymentDetail{}).
		Where("payment_status = ?", status).
		Count(&count).Error
	return count, err
}

// Revenue sums item prices of successful payments, optionally bounded to [from, to) on the order date.
func (r *reportRepoImpl) Revenue(ctx context.Context, from, to *time.Time) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).
		Table("payment_details pd").
		Select("COALESCE(SUM(i.price), 0)").
		Joins("JOIN orders o ON pd.order_id = o.id").
		Joins("JOIN items i ON o.item_id = i.id").
		Where("pd.payment_status = ?", model.PaymentSuccess)

	if from != nil {
		q = q.Where("o.order_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("o.order_date < ?", *to)
	}

	var total decimal.Decimal
	if err := q.Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func (r *reportRepoImpl) SoldItemsTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Select("COALESCE(SUM(price), 0)").
		Where("is_sold = ?", true).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func (r *reportRepoImpl) AverageRating(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&model.Feedback{}).
		Select("COALESCE(AVG(rating), 0)").
		Row().Scan(&avg)

	return avg, err
}

func (r *reportRepoImpl) SalesSince(ctx context.Context, since time.Time) ([]*model.Sale, error) {
	var sales []*model.Sale
	err := r.db.WithContext(ctx).
		Table("orders o").
		Select("o.order_date, i.price").
		Joins("JOIN items i ON o.item_id = i.id").
		Joins("JOIN payment_details pd ON o.id = pd.order_id").
		Where("pd.payment_status = ? AND o.order_date >= ?", model.PaymentSuccess, since).
		Order("o.order_date").
		Scan(&sales).Error
	if err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *reportRepoImpl) TopSellers(ctx context.Context, limit int) ([]*model.TopSeller, error) {
	var sellers []*model.TopSeller
	err := r.db.WithContext(ctx).
		Table("customers c").
		Select("c.id, c.username AS name, c.email, COUNT(o.id) AS items_sold").
		Joins("JOIN items i ON i.customer_id = c.id").
		Joins("JOIN orders o ON o.item_id = i.id").
		Joins("JOIN payment_details pd ON o.id = pd.order_id").
		Where("pd.payment_status = ?", model.PaymentSuccess).
		Group("c.id, c.username, c.email").
		Order("items_sold DESC").
		Limit(limit).
		Scan(&sellers).Error
	if err != nil {
		return nil, err
	}

	return sellers, nil
}
