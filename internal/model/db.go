package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "Success"
	PaymentFailed  PaymentStatus = "Failed"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentSuccess || s == PaymentFailed
}

type Customer struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email          string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"size:255;not null" json:"-"`
	Phone          *string    `gorm:"size:32" json:"phone"`
	City           *string    `gorm:"size:64" json:"city"`
	ProfilePicture *string    `gorm:"size:255" json:"profile_picture"`
	Role           Role       `gorm:"size:16;not null;default:Customer" json:"role"`
	Status         UserStatus `gorm:"size:16;not null;default:Active" json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"-"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:128;uniqueIndex;not null" json:"name"`
}

type Subcategory struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CategoryID uint   `gorm:"index;not null" json:"category_id"`
	Name       string `gorm:"size:128;not null" json:"name"`
}

type Item struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerID    uint            `gorm:"index;not null" json:"customer_id"` // seller
	SubcategoryID uint            `gorm:"index;not null" json:"subcategory_id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL      string          `gorm:"size:255" json:"image_url"`
	IsSold        bool            `gorm:"not null;default:false;index" json:"is_sold"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Wishlist struct {
	CustomerID uint      `gorm:"primaryKey"`
	ItemID     uint      `gorm:"primaryKey;index"`
	CreatedAt  time.Time
}

func (Wishlist) TableName() string {
	return "wishlist"
}

type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemID    uint      `gorm:"index;not null" json:"item_id"`
	BuyerID   uint      `gorm:"index;not null" json:"buyer_id"`
	SellerID  uint      `gorm:"index;not null" json:"seller_id"`
	OrderDate time.Time `gorm:"index;not null" json:"order_date"`
}

// Card is the single stored card of a customer.
type Card struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CustomerID     uint      `gorm:"uniqueIndex;not null" json:"-"`
	CardNumber     string    `gorm:"size:16;not null" json:"card_number"`
	ExpiryDate     time.Time `gorm:"not null" json:"expiry_date"`
	CardHolderName string    `gorm:"size:128;not null" json:"card_holder_name"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PaymentDetail struct {
	ID            uint          `gorm:"primaryKey"`
	OrderID       uint          `gorm:"uniqueIndex;not null"`
	CardID        uint          `gorm:"index;not null"`
	PaymentStatus PaymentStatus `gorm:"size:16;index;not null"`
	PaymentDate   time.Time     `gorm:"autoCreateTime"`
}

type Feedback struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"index;not null" json:"customer_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Message    string    `gorm:"type:text" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// All lists every table for AutoMigrate.
func All() []any {
	return []any{
		&Customer{},
		&Category{},
		&Subcategory{},
		&Item{},
		&Wishlist{},
		&Order{},
		&Card{},
		&PaymentDetail{},
		&Feedback{},
	}
}
