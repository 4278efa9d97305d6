package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models returned by the join queries. Column tags match the SELECT aliases.

type ItemListing struct {
	ID            uint            `gorm:"column:id" json:"id"`
	CustomerID    uint            `gorm:"column:customer_id" json:"customer_id"`
	SubcategoryID uint            `gorm:"column:subcategory_id" json:"subcategory_id"`
	Name          string          `gorm:"column:name" json:"name"`
	Description   string          `gorm:"column:description" json:"description"`
	Price         decimal.Decimal `gorm:"column:price" json:"price"`
	ImageURL      string          `gorm:"column:image_url" json:"image_url"`
	IsSold        bool            `gorm:"column:is_sold" json:"is_sold"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"created_at"`
	SellerName    string          `gorm:"column:seller_name" json:"seller_name"`
	SellerCity    *string         `gorm:"column:seller_city" json:"seller_city"`
	CategoryID    uint            `gorm:"column:category_id" json:"category_id"`
	IsPurchased   bool            `gorm:"column:is_purchased" json:"isPurchased"`
}

type ItemDetail struct {
	Item
	SellerName           string  `gorm:"column:seller_name" json:"seller_name"`
	SellerEmail          string  `gorm:"column:seller_email" json:"seller_email"`
	SellerPhone          *string `gorm:"column:seller_phone" json:"seller_phone"`
	SellerProfilePicture *string `gorm:"column:seller_profile_picture" json:"seller_profile_picture"`
	SellerCity           *string `gorm:"column:seller_city" json:"seller_city"`
}

type SellerItem struct {
	ID            uint            `gorm:"column:id" json:"id"`
	Name          string          `gorm:"column:name" json:"name"`
	Description   string          `gorm:"column:description" json:"description"`
	Price         decimal.Decimal `gorm:"column:price" json:"price"`
	ImageURL      string          `gorm:"column:image_url" json:"image_url"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"created_at"`
	IsSold        bool            `gorm:"column:is_sold" json:"is_sold"`
	SubcategoryID uint            `gorm:"column:subcategory_id" json:"subcategory_id"`
	CategoryID    uint            `gorm:"column:category_id" json:"category_id"`
	SellerCity    *string         `gorm:"column:seller_city" json:"seller_city"`
}

type ProductRow struct {
	ID              uint
	Name            string
	Description     string
	Price           decimal.Decimal
	ImageURL        string
	CreatedAt       time.Time
	SubcategoryName *string
	CategoryName    *string
}

type WishlistItem struct {
	Item
	AddedToWishlist time.Time `gorm:"column:added_to_wishlist" json:"added_to_wishlist"`
	SellerCity      *string   `gorm:"column:seller_city" json:"seller_city"`
}

type OrderDetail struct {
	OrderID       uint            `gorm:"column:order_id" json:"orderId"`
	Date          time.Time       `gorm:"column:date" json:"date"`
	ItemName      string          `gorm:"column:item_name" json:"item_name"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount" json:"total_amount"`
	ItemImageURL  string          `gorm:"column:item_image_url" json:"item_image_url"`
	CustomerName  string          `gorm:"column:customer_name" json:"customerName"`
	CustomerEmail string          `gorm:"column:customer_email" json:"customerEmail"`
	SellerName    string          `gorm:"column:seller_name" json:"sellerName"`
	Status        *string         `gorm:"column:status" json:"status"`
	PaymentDate   *time.Time      `gorm:"column:payment_date" json:"payment_date"`
}

type PurchasedRow struct {
	OrderID        uint
	ItemID         uint
	Name           string
	Price          decimal.Decimal
	ImageURL       string
	PurchaseDate   time.Time
	SellerUsername string
	SellerEmail    string
}

type SoldRow struct {
	ID            uint
	Name          string
	Description   string
	Price         decimal.Decimal
	ImageURL      string
	SaleDate      time.Time
	BuyerUsername string
	BuyerEmail    string
}

type Purchase struct {
	ID            uint            `gorm:"column:id" json:"id"`
	OrderID       uint            `gorm:"column:order_id" json:"orderId"`
	Date          time.Time       `gorm:"column:date" json:"date"`
	Amount        decimal.Decimal `gorm:"column:amount" json:"amount"`
	CustomerName  string          `gorm:"column:customer_name" json:"customerName"`
	CustomerEmail string          `gorm:"column:customer_email" json:"customerEmail"`
	ProductName   string          `gorm:"column:product_name" json:"productName"`
	ProductID     uint            `gorm:"column:product_id" json:"productId"`
	Status        PaymentStatus   `gorm:"column:status" json:"status"`
	SellerID      uint            `gorm:"column:seller_id" json:"sellerId"`
	SellerName    string          `gorm:"column:seller_name" json:"sellerName"`
}

type PurchaseFilter struct {
	Status   PaymentStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
}

type FeedbackRow struct {
	ID       uint      `gorm:"column:id" json:"id"`
	UserName string    `gorm:"column:user_name" json:"userName"`
	Rating   int       `gorm:"column:rating" json:"rating"`
	Comment  string    `gorm:"column:comment" json:"comment"`
	Date     time.Time `gorm:"column:date" json:"date"`
}

type TopSeller struct {
	ID        uint   `gorm:"column:id" json:"id"`
	Name      string `gorm:"column:name" json:"name"`
	Email     string `gorm:"column:email" json:"email"`
	ItemsSold int64  `gorm:"column:items_sold" json:"itemsSold"`
}

type Sale struct {
	OrderDate time.Time
	Price     decimal.Decimal
}
