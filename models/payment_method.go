package models

type PaymentMethod struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"unique;not null" json:"name"`
	Description string `json:"description"`
	Active      bool   `gorm:"default:true" json:"active"`
}
