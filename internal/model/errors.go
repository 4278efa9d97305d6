package model

import "errors"

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserStatus  = errors.New("invalid user status")
	ErrInvalidUserData    = errors.New("username and email are required")

	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrNameRequired        = errors.New("name is required")

	ErrItemNotFound    = errors.New("item not found")
	ErrItemSoldOut     = errors.New("item is sold out")
	ErrNotItemOwner    = errors.New("item belongs to another customer")
	ErrItemHasOrders   = errors.New("item has associated orders")
	ErrImageRequired   = errors.New("product image is required")
	ErrInvalidImage    = errors.New("invalid file type")
	ErrImageTooLarge   = errors.New("file too large")
	ErrInvalidItemData = errors.New("invalid item data")
	ErrSoldItemLocked  = errors.New("sold item cannot be changed")

	ErrWishlistItemRequired = errors.New("item id is required")

	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderForbidden = errors.New("order belongs to another buyer")

	ErrInvalidCard  = errors.New("invalid card details")
	ErrCardNotFound = errors.New("no card found")

	ErrPurchaseNotFound     = errors.New("purchase not found")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	ErrInvalidFeedback = errors.New("invalid feedback")
)
