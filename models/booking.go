package models

import "time"

type BookingStatus string
type BookingTransactionStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"

	BookingTransactionPending    BookingTransactionStatus = "pending"
	BookingTransactionSuccessful BookingTransactionStatus = "successful"
	BookingTransactionFailed     BookingTransactionStatus = "failed"
)

type ConsultationPlan struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string  `gorm:"not null" json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// ConsultationTimeSlot is a bookable daily time range. IsAvailable is a
// best-effort flag; the authoritative check is the active-booking query.
type ConsultationTimeSlot struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Label       string `gorm:"not null" json:"label"`
	StartTime   string `json:"start_time"` // "HH:MM"
	EndTime     string `json:"end_time"`
	IsAvailable bool   `gorm:"default:true" json:"is_available"`
}

// ConsultationBooking permits one active (non-cancelled) booking per
// (time_slot_id, date); the partial unique index backs the application check.
type ConsultationBooking struct {
	ID                 uint                     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             string                   `gorm:"index" json:"user_id"`
	ConsultationPlanID uint                     `json:"consultation_plan_id"`
	TimeSlotID         uint                     `gorm:"index:idx_active_slot_date,unique,where:status <> 'cancelled'" json:"time_slot_id"`
	Date               string                   `gorm:"index:idx_active_slot_date,unique,where:status <> 'cancelled'" json:"date"` // "2006-01-02"
	Status             BookingStatus            `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TransactionStatus  BookingTransactionStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"transaction_status"`
	TransactionID      string                   `json:"transaction_id"`
	PaymentMethod      string                   `json:"payment_method"`
	PaymentExpiresAt   time.Time                `json:"payment_expires_at"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}
