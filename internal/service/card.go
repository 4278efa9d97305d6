package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/repository"

	"gorm.io/gorm"
)

// CardService manages the single stored card of a customer outside checkout.
type CardService interface {
	Get(ctx context.Context, customerID uint) (*model.Card, error)
	Save(ctx context.Context, customerID uint, req dto.CardRequest) error
	Update(ctx context.Context, customerID uint, req dto.CardRequest) error
	Delete(ctx context.Context, customerID uint) error
}

type cardServiceImpl struct {
	cardRepo repository.CardRepository
	now      func() time.Time
}

func NewCardService(cardRepo repository.CardRepository) CardService {
	return &cardServiceImpl{
		cardRepo: cardRepo,
		now:      time.Now,
	}
}

func (s *cardServiceImpl) Get(ctx context.Context, customerID uint) (*model.Card, error) {
	card, err := s.cardRepo.FindByCustomer(ctx, customerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find card: %w", err)
	}

	return card, nil
}

func (s *cardServiceImpl) Save(ctx context.Context, customerID uint, req dto.CardRequest) error {
	card, err := validateCard(req.CardNumber, req.ExpiryDate, req.CardHolderName, s.now())
	if err != nil {
		return err
	}
	card.CustomerID = customerID

	if err := s.cardRepo.Upsert(ctx, card); err != nil {
		return fmt.Errorf("save card: %w", err)
	}

	return nil
}

func (s *cardServiceImpl) Update(ctx context.Context, customerID uint, req dto.CardRequest) error {
	card, err := validateCard(req.CardNumber, req.ExpiryDate, req.CardHolderName, s.now())
	if err != nil {
		return err
	}
	card.CustomerID = customerID

	err = s.cardRepo.UpdateByCustomer(ctx, card)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrCardNotFound
	}
	if err != nil {
		return fmt.Errorf("update card: %w", err)
	}

	return nil
}

func (s *cardServiceImpl) Delete(ctx context.Context, customerID uint) error {
	err := s.cardRepo.DeleteByCustomer(ctx, customerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrCardNotFound
	}
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	return nil
}
