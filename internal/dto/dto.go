package dto

import (
	"time"

	"circula/internal/model"

	"github.com/shopspring/decimal"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string          `json:"message"`
	User    *model.Customer `json:"user"`
	Token   string          `json:"token"`
}

// SignupRequest carries the multipart text fields of the signup form.
type SignupRequest struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Phone    string `form:"phone"`
	City     string `form:"city"`
}

type ProfileRequest struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	City     string `form:"city"`
}

type UserStatusRequest struct {
	Status model.UserStatus `json:"status"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type SubcategoryRequest struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
}

type CreateItemRequest struct {
	Name          string `form:"item_name"`
	Description   string `form:"description"`
	Price         string `form:"price"`
	SubcategoryID uint   `form:"subcategory"`
}

type CreateItemResponse struct {
	Message  string `json:"message"`
	ItemID   uint   `json:"itemId"`
	ImageURL string `json:"imageUrl"`
}

type UpdateProductRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
}

// Product is a seller's own listing with absolute image URL.
type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	Subcategory *string         `json:"subcategory,omitempty"`
	Category    *string         `json:"category,omitempty"`
}

type WishlistToggleRequest struct {
	ItemID uint `json:"itemId"`
}

type WishlistToggleResponse struct {
	Message string `json:"message"`
	Removed bool   `json:"removed"`
}

type CreateOrderRequest struct {
	ProductID uint `json:"product_id"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

type CardDetails struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CardHolderName string `json:"cardHolderName"`
	CVV            string `json:"cvv"`
}

type PaymentRequest struct {
	OrderID     uint        `json:"orderId"`
	CardDetails CardDetails `json:"cardDetails"`
}

type PaymentResponse struct {
	Status  model.PaymentStatus `json:"status"`
	Message string              `json:"message"`
}

// CardRequest is the stored-card form; expiry uses the same MM/YY layout as checkout.
type CardRequest struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CardHolderName string `json:"cardHolderName"`
}

type PurchasedItem struct {
	OrderID      uint            `json:"orderId"`
	ItemID       uint            `json:"itemId"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"imageUrl"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	Seller       Party           `json:"seller"`
}

type SoldItem struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	SaleDate    time.Time       `json:"sale_date"`
	Buyer       Party           `json:"buyer"`
}

type Party struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

type FeedbackResponse struct {
	Message    string `json:"message"`
	FeedbackID uint   `json:"feedbackId"`
}

type PurchaseStatusRequest struct {
	Status model.PaymentStatus `json:"status"`
}

type PurchaseMetrics struct {
	TotalSuccessfulPayments int64           `json:"totalSuccessfulPayments"`
	TotalRevenue            decimal.Decimal `json:"totalRevenue"`
	CurrentMonthPayments    decimal.Decimal `json:"currentMonthPayments"`
}

type DashboardMetrics struct {
	TotalUsers    int64           `json:"totalUsers"`
	TotalProducts int64           `json:"totalProducts"`
	Revenue       decimal.Decimal `json:"revenue"`
	Satisfaction  float64         `json:"satisfaction"`
	PendingOrders int64           `json:"pendingOrders"`
}

type DashboardStats struct {
	TotalCustomers int64           `json:"totalCustomers"`
	TotalItems     int64           `json:"totalItems"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	AverageRating  float64         `json:"averageRating"`
}

type MonthlySales struct {
	Month string `json:"month"`
	Sales int    `json:"sales"`
}
