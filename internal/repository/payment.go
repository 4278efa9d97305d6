package repository

import (
	"context"

	"circula/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *model.PaymentDetail) error
	HasSuccessForItem(ctx context.Context, tx *gorm.DB, itemID uint) (bool, error)
	FindByOrderID(ctx context.Context, orderID uint) (*model.PaymentDetail, error)
	UpdateStatus(ctx context.Context, orderID uint, status model.PaymentStatus) error
	CountSuccessForItem(ctx context.Context, itemID uint) (int64, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

// Create keeps one row per order: a row left behind by an earlier attempt is overwritten.
func (r *paymentRepoImpl) Create(ctx context.Context, tx *gorm.DB, payment *model.PaymentDetail) error {
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"card_id", "payment_status", "payment_date"}),
	}).Create(payment).Error
}

// HasSuccessForItem reports whether any order of the item already has a successful payment.
func (r *paymentRepoImpl) HasSuccessForItem(ctx context.Context, tx *gorm.DB, itemID uint) (bool, error) {
	var count int64
	err := r.successForItem(tx.WithContext(ctx), itemID).Count(&count).Error

	return count > 0, err
}

func (r *paymentRepoImpl) CountSuccessForItem(ctx context.Context, itemID uint) (int64, error) {
	var count int64
	err := r.successForItem(r.db.WithContext(ctx), itemID).Count(&count).Error

	return count, err
}

func (r *paymentRepoImpl) successForItem(q *gorm.DB, itemID uint) *gorm.DB {
	return q.Table("payment_details pd").
		Joins("JOIN orders o ON pd.order_id = o.id").
		Where("o.item_id = ? AND pd.payment_status = ?", itemID, model.PaymentSuccess)
}

func (r *paymentRepoImpl) FindByOrderID(ctx context.Context, orderID uint) (*model.PaymentDetail, error) {
	var payment model.PaymentDetail
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&payment).Error
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// UpdateStatus overwrites the status without touching the item's sold flag.
func (r *paymentRepoImpl) UpdateStatus(ctx context.Context, orderID uint, status model.PaymentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.PaymentDetail{}).
		Where("order_id = ?", orderID).
		Update("payment_status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
