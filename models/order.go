package models

import "time"

type OrderStatus string
type TransactionStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting fulfilment
	OrderStatusPackaging OrderStatus = "packaging" // Being packed
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCompleted OrderStatus = "completed" // Dispute window closed without issue
	OrderStatusCancelled OrderStatus = "cancelled"

	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// Billing address captured at checkout.
type Billing struct {
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
}

type Delivery struct {
	Description       string `json:"description"`
	EstimatedDelivery string `json:"estimated_delivery"`
}

// Order takes its OrderID from the source cart; at most one order may ever
// reference a given cart's pre-reserved id.
type Order struct {
	OrderID                int               `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	UserID                 string            `gorm:"index" json:"user_id"`
	SessionID              string            `gorm:"index" json:"session_id,omitempty"`
	TransactionID          string            `json:"transaction_id"`
	Items                  []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	SubTotal               float64           `json:"sub_total"`
	TotalDiscount          float64           `json:"total_discount"`
	GrandTotal             float64           `json:"grand_total"`
	Billing                Billing           `gorm:"embedded;embeddedPrefix:billing_" json:"billing"`
	PaymentMethodID        uint              `json:"payment_method_id"`
	TransactionStatus      TransactionStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"transaction_status"`
	OrderStatus            OrderStatus       `gorm:"type:VARCHAR(20);default:'pending'" json:"order_status"`
	DisputeWindowExpiresAt *time.Time        `json:"dispute_window_expires_at"`
	IsDisputed             bool              `json:"is_disputed"`
	HasBeenDisputed        bool              `json:"has_been_disputed"` // sticky once set
	Delivery               Delivery          `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

type OrderItem struct {
	ID                  uint         `gorm:"primaryKey" json:"id"`
	OrderID             int          `gorm:"index" json:"order_id"`
	OrderItemID         int          `json:"order_item_id"`
	ProductID           uint         `json:"product_id"`
	Name                string       `json:"name"`
	Image               string       `json:"image"`
	SellingPrice        float64      `json:"selling_price"`
	DiscountedPrice     float64      `json:"discounted_price"`
	DiscountType        DiscountType `gorm:"type:VARCHAR(20)" json:"discount_type"`
	Discount            float64      `json:"discount"`
	Quantity            int          `json:"quantity"`
	TotalPrice          float64      `json:"total_price"`
	MinPurchaseQuantity int          `json:"min_purchase_quantity"`
	FreeQuantity        int          `json:"free_quantity"`
	FreeItemDescription string       `json:"free_item_description"`
}
