package handler

import (
	"net/http"

	"circula/internal/dto"
	"circula/internal/middleware"
	"circula/internal/service"

	"github.com/labstack/echo/v4"
)

type CardHandler struct {
	cardService service.CardService
}

func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

func (h *CardHandler) GetCard(c echo.Context) error {
	card, err := h.cardService.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, card)
}

func (h *CardHandler) SaveCard(c echo.Context) error {
	var req dto.CardRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.cardService.Save(c.Request().Context(), middleware.UserID(c), req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Card saved successfully"})
}

func (h *CardHandler) UpdateCard(c echo.Context) error {
	var req dto.CardRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.cardService.Update(c.Request().Context(), middleware.UserID(c), req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Card updated successfully"})
}

func (h *CardHandler) DeleteCard(c echo.Context) error {
	if err := h.cardService.Delete(c.Request().Context(), middleware.UserID(c)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Card deleted successfully"})
}
