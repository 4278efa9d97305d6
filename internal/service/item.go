package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/repository"
	"circula/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ItemService interface {
	Create(ctx context.Context, sellerID uint, req dto.CreateItemRequest, image *multipart.FileHeader) (*model.Item, error)
	Browse(ctx context.Context, showAll bool) ([]*model.ItemListing, error)
	Detail(ctx context.Context, id uint) (*model.ItemDetail, error)
	Delete(ctx context.Context, userID, id uint) error
	ListBySeller(ctx context.Context, sellerID uint) ([]*model.SellerItem, error)

	// Products, UpdateProduct and DeleteProduct back the seller's own product page.
	Products(ctx context.Context, sellerID uint) ([]*dto.Product, error)
	UpdateProduct(ctx context.Context, sellerID, id uint, req dto.UpdateProductRequest, image *multipart.FileHeader) (*dto.Product, error)
	DeleteProduct(ctx context.Context, sellerID, id uint) error
}

type itemServiceImpl struct {
	itemRepo      repository.ItemRepository
	categoryRepo  repository.CategoryRepository
	customerRepo  repository.CustomerRepository
	images        storage.ImageStore
	publicBaseURL string
	logger        *logrus.Logger
}

func NewItemService(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	customerRepo repository.CustomerRepository,
	images storage.ImageStore,
	publicBaseURL string,
	logger *logrus.Logger,
) ItemService {
	return &itemServiceImpl{
		itemRepo:      itemRepo,
		categoryRepo:  categoryRepo,
		customerRepo:  customerRepo,
		images:        images,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *itemServiceImpl) Create(ctx context.Context, sellerID uint, req dto.CreateItemRequest, image *multipart.FileHeader) (*model.Item, error) {
	if image == nil {
		return nil, model.ErrImageRequired
	}

	name := strings.TrimSpace(req.Name)
	price, err := parsePrice(req.Price)
	if err != nil || name == "" {
		return nil, model.ErrInvalidItemData
	}

	if _, err := s.categoryRepo.FindSubcategory(ctx, req.SubcategoryID); err != nil {
		return nil, notFound(err, model.ErrSubcategoryNotFound)
	}

	imageURL, err := s.images.Save(image, storage.ProductImage)
	if err != nil {
		return nil, err
	}

	item := &model.Item{
		CustomerID:    sellerID,
		SubcategoryID: req.SubcategoryID,
		Name:          name,
		Description:   strings.TrimSpace(req.Description),
		Price:         price,
		ImageURL:      imageURL,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("store item: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"item_id": item.ID, "seller_id": sellerID}).Info("item listed")
	return item, nil
}

func (s *itemServiceImpl) Browse(ctx context.Context, showAll bool) ([]*model.ItemListing, error) {
	items, err := s.itemRepo.ListForBrowse(ctx, showAll)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

func (s *itemServiceImpl) Detail(ctx context.Context, id uint) (*model.ItemDetail, error) {
	detail, err := s.itemRepo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFound(err, model.ErrItemNotFound)
	}

	// the client prefixes the static upload route itself
	if pic := detail.SellerProfilePicture; pic != nil {
		trimmed := strings.TrimPrefix(*pic, storage.URLPrefix+"/")
		detail.SellerProfilePicture = &trimmed
	}

	return detail, nil
}

// Delete lets the owner or an admin remove a listing that was never ordered.
func (s *itemServiceImpl) Delete(ctx context.Context, userID, id uint) error {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, model.ErrItemNotFound)
	}

	if item.CustomerID != userID {
		user, err := s.customerRepo.FindByID(ctx, userID)
		if err != nil {
			return notFound(err, model.ErrUserNotFound)
		}
		if user.Role != model.RoleAdmin {
			return model.ErrNotItemOwner
		}
	}

	return s.remove(ctx, item)
}

func (s *itemServiceImpl) ListBySeller(ctx context.Context, sellerID uint) ([]*model.SellerItem, error) {
	items, err := s.itemRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller items: %w", err)
	}

	return items, nil
}

func (s *itemServiceImpl) Products(ctx context.Context, sellerID uint) ([]*dto.Product, error) {
	rows, err := s.itemRepo.ListUnsoldProducts(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]*dto.Product, len(rows))
	for i, row := range rows {
		createdAt := row.CreatedAt
		products[i] = &dto.Product{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Price:       row.Price,
			ImageURL:    s.absoluteURL(row.ImageURL),
			CreatedAt:   &createdAt,
			Subcategory: row.SubcategoryName,
			Category:    row.CategoryName,
		}
	}

	return products, nil
}

func (s *itemServiceImpl) UpdateProduct(ctx context.Context, sellerID, id uint, req dto.UpdateProductRequest, image *multipart.FileHeader) (*dto.Product, error) {
	item, err := s.ownedUnsold(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	price, err := parsePrice(req.Price)
	if err != nil || name == "" {
		return nil, model.ErrInvalidItemData
	}

	imageURL := item.ImageURL
	if image != nil {
		if imageURL, err = s.images.Save(image, storage.ProductImage); err != nil {
			return nil, err
		}
	}

	description := strings.TrimSpace(req.Description)
	err = s.itemRepo.Update(ctx, id, sellerID, map[string]interface{}{
		"name":        name,
		"description": description,
		"price":       price,
		"image_url":   imageURL,
	})
	if err != nil {
		return nil, notFound(err, model.ErrItemNotFound)
	}

	if imageURL != item.ImageURL {
		if err := s.images.Remove(item.ImageURL); err != nil {
			s.logger.WithError(err).WithField("item_id", id).Warn("old product image not removed")
		}
	}

	return &dto.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    s.absoluteURL(imageURL),
	}, nil
}

func (s *itemServiceImpl) DeleteProduct(ctx context.Context, sellerID, id uint) error {
	item, err := s.ownedUnsold(ctx, sellerID, id)
	if err != nil {
		return err
	}

	return s.remove(ctx, item)
}

func (s *itemServiceImpl) ownedUnsold(ctx context.Context, sellerID, id uint) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, model.ErrItemNotFound)
	}
	if item.CustomerID != sellerID {
		return nil, model.ErrNotItemOwner
	}
	if item.IsSold {
		return nil, model.ErrSoldItemLocked
	}

	return item, nil
}

// remove refuses items with orders so order history keeps its item.
func (s *itemServiceImpl) remove(ctx context.Context, item *model.Item) error {
	hasOrders, err := s.itemRepo.HasOrders(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("check item orders: %w", err)
	}
	if hasOrders {
		return model.ErrItemHasOrders
	}

	if err := s.itemRepo.Delete(ctx, item.ID); err != nil {
		return notFound(err, model.ErrItemNotFound)
	}

	if err := s.images.Remove(item.ImageURL); err != nil {
		s.logger.WithError(err).WithField("item_id", item.ID).Warn("product image not removed")
	}

	s.logger.WithField("item_id", item.ID).Info("item deleted")
	return nil
}

func (s *itemServiceImpl) absoluteURL(path string) *string {
	if path == "" {
		return nil
	}
	url := s.publicBaseURL + path
	return &url
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("price must be positive")
	}

	return price.Round(2), nil
}
