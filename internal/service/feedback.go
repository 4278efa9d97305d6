package service

import (
	"context"
	"fmt"
	"strings"

	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/repository"
)

type FeedbackService interface {
	Submit(ctx context.Context, customerID uint, req dto.FeedbackRequest) (*model.Feedback, error)
	List(ctx context.Context, search string) ([]*model.FeedbackRow, error)
}

type feedbackServiceImpl struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackServiceImpl{feedbackRepo: feedbackRepo}
}

func (s *feedbackServiceImpl) Submit(ctx context.Context, customerID uint, req dto.FeedbackRequest) (*model.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", model.ErrInvalidFeedback)
	}

	feedback := &model.Feedback{
		CustomerID: customerID,
		Rating:     req.Rating,
		Message:    strings.TrimSpace(req.Message),
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("store feedback: %w", err)
	}

	return feedback, nil
}

func (s *feedbackServiceImpl) List(ctx context.Context, search string) ([]*model.FeedbackRow, error) {
	return s.feedbackRepo.List(ctx, strings.TrimSpace(search))
}
