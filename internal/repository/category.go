package repository

import (
	"context"

	"circula/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	RenameCategory(ctx context.Context, id uint, name string) error
	DeleteCategory(ctx context.Context, id uint) error

	ListSubcategories(ctx context.Context, categoryID uint) ([]*model.Subcategory, error)
	FindSubcategory(ctx context.Context, id uint) (*model.Subcategory, error)
	CreateSubcategory(ctx context.Context, sub *model.Subcategory) error
	RenameSubcategory(ctx context.Context, id uint, name string) error
	DeleteSubcategory(ctx context.Context, id uint) error
}

type categoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepoImpl{
		db: db,
	}
}

func (r *categoryRepoImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepoImpl) RenameCategory(ctx context.Context, id uint, name string) error {
	return rename(r.db.WithContext(ctx).Model(&model.Category{}), id, name)
}

// DeleteCategory removes the category together with its subcategories.
func (r *categoryRepoImpl) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.Subcategory{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.Category{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func (r *categoryRepoImpl) ListSubcategories(ctx context.Context, categoryID uint) ([]*model.Subcategory, error) {
	var subs []*model.Subcategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *categoryRepoImpl) FindSubcategory(ctx context.Context, id uint) (*model.Subcategory, error) {
	var sub model.Subcategory
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sub).Error
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (r *categoryRepoImpl) CreateSubcategory(ctx context.Context, sub *model.Subcategory) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *categoryRepoImpl) RenameSubcategory(ctx context.Context, id uint, name string) error {
	return rename(r.db.WithContext(ctx).Model(&model.Subcategory{}), id, name)
}

func (r *categoryRepoImpl) DeleteSubcategory(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Subcategory{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func rename(q *gorm.DB, id uint, name string) error {
	result := q.Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
