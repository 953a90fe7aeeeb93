package models

import "time"

type DiscountType string

const (
	DiscountTypeNone       DiscountType = "none"
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFlat       DiscountType = "flat"
	DiscountTypeFree       DiscountType = "free"
)

// FreeOffer is the "buy N get M free" rule attached to a product's pricing.
type FreeOffer struct {
	MinQuantityOfPurchase int    `json:"min_quantity_of_purchase"`
	FreeItemQuantity      int    `json:"free_item_quantity"`
	FreeItemDescription   string `json:"free_item_description"`
}

type Pricing struct {
	CostPrice       float64      `json:"cost_price"`
	SellingPrice    float64      `gorm:"not null" json:"selling_price"`
	Discount        float64      `json:"discount"`
	DiscountType    DiscountType `gorm:"type:VARCHAR(20);default:'none'" json:"discount_type"`
	DiscountedPrice float64      `json:"discounted_price"`
	IsDiscounted    bool         `json:"is_discounted"`
	FreeOffer       FreeOffer    `gorm:"embedded;embeddedPrefix:free_offer_" json:"free_offer"`
}

type Inventory struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `gorm:"index" json:"category"`
	SubCategory string  `gorm:"index" json:"sub_category"`
	Stock       int     `json:"stock"`
	Pricing     Pricing `gorm:"embedded;embeddedPrefix:pricing_" json:"pricing"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
