package handler

import (
	"errors"
	"net/http"

	"circula/internal/dto"
	"circula/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type errorResponse struct {
	err     error
	status  int
	message string
}

// errorResponses maps domain errors to the status and message clients expect.
var errorResponses = []errorResponse{
	{model.ErrEmailTaken, http.StatusBadRequest, "Email already exists"},
	{model.ErrUsernameTaken, http.StatusBadRequest, "Username already exists"},
	{model.ErrPasswordRequired, http.StatusBadRequest, "Password is required"},
	{model.ErrInvalidUserData, http.StatusBadRequest, "Username and email are required"},
	{model.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{model.ErrAccountInactive, http.StatusForbidden, "Account is inactive"},
	{model.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{model.ErrInvalidUserStatus, http.StatusBadRequest, "Invalid status"},

	{model.ErrCategoryNotFound, http.StatusNotFound, "Category not found"},
	{model.ErrSubcategoryNotFound, http.StatusNotFound, "Subcategory not found"},
	{model.ErrNameRequired, http.StatusBadRequest, "Name is required"},

	{model.ErrItemNotFound, http.StatusNotFound, "Item not found"},
	{model.ErrItemSoldOut, http.StatusConflict, "Item is sold out"},
	{model.ErrNotItemOwner, http.StatusForbidden, "Unauthorized"},
	{model.ErrItemHasOrders, http.StatusBadRequest, "Product has associated orders"},
	{model.ErrSoldItemLocked, http.StatusBadRequest, "Cannot edit or delete a sold product"},
	{model.ErrImageRequired, http.StatusBadRequest, "Product image is required"},
	{model.ErrInvalidImage, http.StatusBadRequest, "Invalid file type"},
	{model.ErrImageTooLarge, http.StatusRequestEntityTooLarge, "File is too large"},
	{model.ErrInvalidItemData, http.StatusBadRequest, "Name and a positive price are required"},
	{model.ErrWishlistItemRequired, http.StatusBadRequest, "Item ID is required"},

	{model.ErrOrderNotFound, http.StatusNotFound, "Order not found or access denied"},
	{model.ErrOrderForbidden, http.StatusForbidden, "Access denied"},
	{model.ErrInvalidCard, http.StatusBadRequest, "Invalid card details"},
	{model.ErrCardNotFound, http.StatusNotFound, "No card found for this user"},

	{model.ErrPurchaseNotFound, http.StatusNotFound, "Purchase not found"},
	{model.ErrInvalidPaymentStatus, http.StatusBadRequest, "Invalid status. Use Success or Failed only."},
	{model.ErrInvalidFeedback, http.StatusBadRequest, "Rating must be between 1 and 5"},

	{gorm.ErrDuplicatedKey, http.StatusConflict, "Already exists"},
}

// ErrorHandler replaces echo's default handler so handlers can return domain errors as is.
func ErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}

		for _, r := range errorResponses {
			if errors.Is(err, r.err) {
				respond(c, r.status, r.message)
				return
			}
		}

		logger.WithError(err).WithFields(logrus.Fields{
			"method":     c.Request().Method,
			"uri":        c.Request().RequestURI,
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).Error("unhandled error")
		respond(c, http.StatusInternalServerError, "Internal server error")
	}
}

func respond(c echo.Context, status int, message string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, dto.MessageResponse{Message: message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
