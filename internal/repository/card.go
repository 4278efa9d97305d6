package repository

import (
	"context"
	"errors"
	"time"

	"circula/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CardRepository interface {
	FindByCustomer(ctx context.Context, customerID uint) (*model.Card, error)
	Upsert(ctx context.Context, card *model.Card) error
	Save(ctx context.Context, tx *gorm.DB, card *model.Card) (uint, error)
	UpdateByCustomer(ctx context.Context, card *model.Card) error
	DeleteByCustomer(ctx context.Context, customerID uint) error
}

type cardRepoImpl struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepoImpl{
		db: db,
	}
}

func (r *cardRepoImpl) FindByCustomer(ctx context.Context, customerID uint) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("updated_at DESC").
		First(&card).Error
	if err != nil {
		return nil, err
	}

	return &card, nil
}

func (r *cardRepoImpl) Upsert(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"card_number":      card.CardNumber,
			"expiry_date":      card.ExpiryDate,
			"card_holder_name": card.CardHolderName,
			"updated_at":       time.Now(),
		}),
	}).Create(card).Error
}

// Save updates the customer's card when one exists, otherwise inserts it, and
// returns the card id. It runs on tx so it commits or rolls back with the payment.
func (r *cardRepoImpl) Save(ctx context.Context, tx *gorm.DB, card *model.Card) (uint, error) {
	var existing model.Card
	err := tx.WithContext(ctx).
		Where("customer_id = ?", card.CustomerID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.WithContext(ctx).Create(card).Error; err != nil {
			return 0, err
		}
		return card.ID, nil
	}
	if err != nil {
		return 0, err
	}

	err = tx.WithContext(ctx).
		Model(&existing).
		Updates(map[string]interface{}{
			"card_number":      card.CardNumber,
			"expiry_date":      card.ExpiryDate,
			"card_holder_name": card.CardHolderName,
			"updated_at":       time.Now(),
		}).Error
	if err != nil {
		return 0, err
	}

	return existing.ID, nil
}

func (r *cardRepoImpl) UpdateByCustomer(ctx context.Context, card *model.Card) error {
	result := r.db.WithContext(ctx).
		Model(&model.Card{}).
		Where("customer_id = ?", card.CustomerID).
		Updates(map[string]interface{}{
			"card_number":      card.CardNumber,
			"expiry_date":      card.ExpiryDate,
			"card_holder_name": card.CardHolderName,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *cardRepoImpl) DeleteByCustomer(ctx context.Context, customerID uint) error {
	result := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.Card{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
