package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"circula/internal/model"
	"circula/internal/repository"

	"gorm.io/gorm"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	RenameCategory(ctx context.Context, id uint, name string) error
	DeleteCategory(ctx context.Context, id uint) error

	ListSubcategories(ctx context.Context, categoryID uint) ([]*model.Subcategory, error)
	CreateSubcategory(ctx context.Context, categoryID uint, name string) (*model.Subcategory, error)
	RenameSubcategory(ctx context.Context, id uint, name string) error
	DeleteSubcategory(ctx context.Context, id uint) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}

	category := &model.Category{Name: name}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("store category: %w", err)
	}

	return category, nil
}

func (s *categoryServiceImpl) RenameCategory(ctx context.Context, id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ErrNameRequired
	}

	return notFound(s.categoryRepo.RenameCategory(ctx, id, name), model.ErrCategoryNotFound)
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uint) error {
	return notFound(s.categoryRepo.DeleteCategory(ctx, id), model.ErrCategoryNotFound)
}

func (s *categoryServiceImpl) ListSubcategories(ctx context.Context, categoryID uint) ([]*model.Subcategory, error) {
	return s.categoryRepo.ListSubcategories(ctx, categoryID)
}

func (s *categoryServiceImpl) CreateSubcategory(ctx context.Context, categoryID uint, name string) (*model.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}

	sub := &model.Subcategory{CategoryID: categoryID, Name: name}
	if err := s.categoryRepo.CreateSubcategory(ctx, sub); err != nil {
		return nil, fmt.Errorf("store subcategory: %w", err)
	}

	return sub, nil
}

func (s *categoryServiceImpl) RenameSubcategory(ctx context.Context, id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ErrNameRequired
	}

	return notFound(s.categoryRepo.RenameSubcategory(ctx, id, name), model.ErrSubcategoryNotFound)
}

func (s *categoryServiceImpl) DeleteSubcategory(ctx context.Context, id uint) error {
	return notFound(s.categoryRepo.DeleteSubcategory(ctx, id), model.ErrSubcategoryNotFound)
}

// notFound swaps gorm's record-not-found for a domain error.
func notFound(err, domain error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain
	}
	return err
}
