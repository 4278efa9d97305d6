package handler

import (
	"net/http"

	"circula/internal/dto"
	"circula/internal/service"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.categoryService.RenameCategory(c.Request().Context(), id, req.Name); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category updated successfully"})
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryService.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category and its subcategories deleted successfully"})
}

func (h *CategoryHandler) ListSubcategories(c echo.Context) error {
	categoryID, err := idParam(c, "categoryId")
	if err != nil {
		return err
	}

	subcategories, err := h.categoryService.ListSubcategories(c.Request().Context(), categoryID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, subcategories)
}

func (h *CategoryHandler) CreateSubcategory(c echo.Context) error {
	var req dto.SubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	subcategory, err := h.categoryService.CreateSubcategory(c.Request().Context(), req.CategoryID, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, subcategory)
}

func (h *CategoryHandler) UpdateSubcategory(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.categoryService.RenameSubcategory(c.Request().Context(), id, req.Name); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Subcategory updated successfully"})
}

func (h *CategoryHandler) DeleteSubcategory(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryService.DeleteSubcategory(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Subcategory deleted successfully"})
}
