package handler

import (
	"net/http"

	"circula/internal/dto"
	"circula/internal/middleware"
	"circula/internal/service"

	"github.com/labstack/echo/v4"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req dto.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	feedback, err := h.feedbackService.Submit(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.FeedbackResponse{
		Message:    "Feedback submitted successfully",
		FeedbackID: feedback.ID,
	})
}

func (h *FeedbackHandler) List(c echo.Context) error {
	rows, err := h.feedbackService.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rows)
}
