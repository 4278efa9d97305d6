package middleware

import (
	"net/http"
	"strings"

	"circula/internal/auth"
	"circula/internal/model"
	"circula/internal/repository"

	"github.com/labstack/echo/v4"
)

const userIDKey = "user_id"

// AuthMiddleware accepts "Authorization: Bearer <jwt>" and stores the user id on the context.
func AuthMiddleware(tokens auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied. No token provided.")
			}

			userID, err := tokens.Verify(strings.TrimSpace(token))
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token. Please log in again.")
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin(customers repository.CustomerRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			customer, err := customers.FindByID(c.Request().Context(), UserID(c))
			if err != nil || customer.Role != model.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied. Admin rights required.")
			}

			return next(c)
		}
	}
}

// UserID returns the authenticated user id, or 0 outside AuthMiddleware.
func UserID(c echo.Context) uint {
	id, _ := c.Get(userIDKey).(uint)
	return id
}
