package repository

import (
	"context"

	"circula/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	List(ctx context.Context, search string) ([]*model.FeedbackRow, error)
}

type feedbackRepositoryImpl struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepositoryImpl{db: db}
}

func (r *feedbackRepositoryImpl) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepositoryImpl) List(ctx context.Context, search string) ([]*model.FeedbackRow, error) {
	q := r.db.WithContext(ctx).
		Table("feedback f").
		Select("f.id, c.username AS user_name, f.rating, f.message AS comment, f.created_at AS date").
		Joins("JOIN customers c ON f.customer_id = c.id")

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("(CAST(f.id AS CHAR) LIKE ? OR c.username LIKE ? OR f.message LIKE ?)", like, like, like)
	}

	var rows []*model.FeedbackRow
	if err := q.Order("f.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
