package handler

import (
	"net/http"

	"circula/internal/dto"
	"circula/internal/middleware"
	"circula/internal/service"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	itemService service.ItemService
}

func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	image, err := optionalFile(c, "image")
	if err != nil {
		return err
	}

	item, err := h.itemService.Create(ctx, middleware.UserID(c), req, image)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.CreateItemResponse{
		Message:  "Item listed successfully",
		ItemID:   item.ID,
		ImageURL: item.ImageURL,
	})
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.itemService.Browse(c.Request().Context(), c.QueryParam("showAll") == "true")
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	item, err := h.itemService.Detail(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.itemService.Delete(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item deleted successfully"})
}

func (h *ItemHandler) ListUserItems(c echo.Context) error {
	sellerID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.itemService.ListBySeller(c.Request().Context(), sellerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) ListProducts(c echo.Context) error {
	products, err := h.itemService.Products(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ItemHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	image, err := optionalFile(c, "image")
	if err != nil {
		return err
	}

	product, err := h.itemService.UpdateProduct(ctx, middleware.UserID(c), id, req, image)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ItemHandler) DeleteProduct(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.itemService.DeleteProduct(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted successfully"})
}
