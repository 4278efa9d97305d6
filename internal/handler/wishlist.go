package handler

import (
	"net/http"

	"circula/internal/dto"
	"circula/internal/middleware"
	"circula/internal/service"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	ids, err := h.wishlistService.ItemIDs(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ids)
}

func (h *WishlistHandler) Toggle(c echo.Context) error {
	var req dto.WishlistToggleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	removed, err := h.wishlistService.Toggle(c.Request().Context(), middleware.UserID(c), req.ItemID)
	if err != nil {
		return err
	}

	message := "Added to wishlist"
	if removed {
		message = "Removed from wishlist"
	}
	return c.JSON(http.StatusOK, dto.WishlistToggleResponse{Message: message, Removed: removed})
}

func (h *WishlistHandler) GetWishlistItems(c echo.Context) error {
	items, err := h.wishlistService.Items(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}
