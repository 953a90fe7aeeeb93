package models

import "time"

type ReturnStatus string

const (
	ReturnStatusRequested ReturnStatus = "requested"
	ReturnStatusApproved  ReturnStatus = "approved"
	ReturnStatusRejected  ReturnStatus = "rejected"
	ReturnStatusReceived  ReturnStatus = "received"
)

type ReturnRequest struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int           `gorm:"index" json:"order_id"`
	UserID    string        `gorm:"index" json:"user_id"`
	Reason    string        `json:"reason"`
	Status    ReturnStatus  `gorm:"type:VARCHAR(20);default:'requested'" json:"status"`
	Images    []ReturnImage `gorm:"foreignKey:ReturnRequestID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type ReturnImage struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ReturnRequestID uint   `gorm:"index" json:"return_request_id"`
	URL             string `json:"url"`
}
