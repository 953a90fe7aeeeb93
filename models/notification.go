package models

import "time"

type Notification struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string    `gorm:"index" json:"user_id"`
	AdminID       uint      `gorm:"index" json:"admin_id,omitempty"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Type          string    `json:"type"` // e.g. "order", "booking", "dispute"
	RecipientRole string    `gorm:"type:VARCHAR(20)" json:"recipient_role"`
	Metadata      string    `json:"metadata"` // JSON blob
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}
