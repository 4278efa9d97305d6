package handler

import (
	"net/http"

	"circula/internal/dto"
	"circula/internal/middleware"
	"circula/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	picture, err := optionalFile(c, "profilePicture")
	if err != nil {
		return err
	}

	customer, token, err := h.userService.Signup(ctx, req, picture)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User created successfully",
		User:    customer,
		Token:   token,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	customer, token, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    customer,
		Token:   token,
	})
}

// Logout only acknowledges; tokens are stateless and the client drops its copy.
func (h *UserHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	customer, err := h.userService.Profile(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProfileRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	picture, err := optionalFile(c, "profilePicture")
	if err != nil {
		return err
	}

	customer, err := h.userService.UpdateProfile(ctx, middleware.UserID(c), req, picture)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.userService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customers)
}

func (h *UserHandler) UpdateUserStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UserStatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.userService.UpdateStatus(ctx, id, req.Status); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "User status updated successfully"})
}
