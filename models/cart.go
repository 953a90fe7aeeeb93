package models

import "time"

// Cart belongs to exactly one identity: an authenticated user or an
// anonymous session. It is created lazily on first add-to-cart and deleted
// when an order is placed from it.
type Cart struct {
	CartID        int        `gorm:"primaryKey;autoIncrement:false" json:"cart_id"`
	UserID        string     `gorm:"index" json:"user_id,omitempty"`
	SessionID     string     `gorm:"index" json:"session_id,omitempty"`
	OrderID       int        `gorm:"index" json:"order_id"` // pre-reserved at cart creation
	Items         []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	SubTotal      float64    `json:"sub_total"`
	TotalDiscount float64    `json:"total_discount"`
	GrandTotal    float64    `json:"grand_total"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CartItem struct {
	OrderItemID         int          `gorm:"primaryKey;autoIncrement:false" json:"order_item_id"`
	CartID              int          `gorm:"index" json:"cart_id"`
	ProductID           uint         `json:"product_id"`
	Name                string       `json:"name"`
	Image               string       `json:"image"`
	SellingPrice        float64      `json:"selling_price"`
	DiscountedPrice     float64      `json:"discounted_price"`
	DiscountType        DiscountType `gorm:"type:VARCHAR(20);default:'none'" json:"discount_type"`
	Discount            float64      `json:"discount"` // selling - discounted, per unit
	Quantity            int          `json:"quantity"`
	TotalPrice          float64      `json:"total_price"` // discounted * quantity
	MinPurchaseQuantity int          `json:"min_purchase_quantity"`
	FreeItemQuantity    int          `json:"free_item_quantity"` // per-offer grant from the free offer
	FreeQuantity        int          `json:"free_quantity"`      // derived bonus units
	FreeItemDescription string       `json:"free_item_description"`
	AddedAt             time.Time    `json:"added_at"`
}
