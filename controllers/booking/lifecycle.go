package bookingControllers

import (
	"errors"
	"strings"
	"time"

	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
)

// PaymentWindow is how long a pending booking may wait for payment
// before the expiry sweep cancels it.
const PaymentWindow = 2 * time.Hour

var (
	ErrInvalidBookingStatus      = errors.New("invalid booking status")
	ErrInvalidBookingTransaction = errors.New("invalid booking transaction status")
	ErrBookingCancelled          = errors.New("Booking is cancelled and can no longer be modified")
	ErrBookingCompleted          = errors.New("Booking is completed and can no longer be modified")
	ErrConfirmRequiresPayment    = errors.New("Booking can only be confirmed after a successful payment")
	ErrCompleteRequiresConfirmed = errors.New("Only a confirmed booking can be completed")
	ErrBookingAlreadyCancelled   = errors.New("Booking is already cancelled")
	ErrStatusRollback            = errors.New("Booking status cannot move backwards")
)

func mapBookingStatus(s string) (models.BookingStatus, error) {
	switch models.BookingStatus(strings.ToLower(s)) {
	case models.BookingStatusPending:
		return models.BookingStatusPending, nil
	case models.BookingStatusConfirmed:
		return models.BookingStatusConfirmed, nil
	case models.BookingStatusCompleted:
		return models.BookingStatusCompleted, nil
	case models.BookingStatusCancelled:
		return models.BookingStatusCancelled, nil
	default:
		return "", ErrInvalidBookingStatus
	}
}

func mapBookingTransactionStatus(s string) (models.BookingTransactionStatus, error) {
	switch models.BookingTransactionStatus(strings.ToLower(s)) {
	case models.BookingTransactionPending:
		return models.BookingTransactionPending, nil
	case models.BookingTransactionSuccessful:
		return models.BookingTransactionSuccessful, nil
	case models.BookingTransactionFailed:
		return models.BookingTransactionFailed, nil
	default:
		return "", ErrInvalidBookingTransaction
	}
}

// BookingChange carries the requested transition; nil fields are left as-is.
type BookingChange struct {
	Status            *models.BookingStatus
	TransactionStatus *models.BookingTransactionStatus
}

// ApplyBookingChange validates and applies a transition in memory.
// On a guard failure the booking is left untouched.
func ApplyBookingChange(b *models.ConsultationBooking, change BookingChange) error {
	if b.Status == models.BookingStatusCancelled {
		return ErrBookingCancelled
	}

	resulting := b.TransactionStatus
	if change.TransactionStatus != nil {
		resulting = *change.TransactionStatus
	}

	if change.Status != nil {
		switch *change.Status {
		case models.BookingStatusConfirmed:
			if resulting != models.BookingTransactionSuccessful {
				return ErrConfirmRequiresPayment
			}
		case models.BookingStatusCompleted:
			if b.Status != models.BookingStatusConfirmed {
				return ErrCompleteRequiresConfirmed
			}
		case models.BookingStatusCancelled:
			if b.Status == models.BookingStatusCompleted {
				return ErrBookingCompleted
			}
		case models.BookingStatusPending:
			if b.Status != models.BookingStatusPending {
				return ErrStatusRollback
			}
		}
	}

	b.TransactionStatus = resulting
	if change.Status != nil {
		b.Status = *change.Status
		return nil
	}
	// Payment landing on a pending booking confirms it without a
	// separate status request.
	if resulting == models.BookingTransactionSuccessful && b.Status == models.BookingStatusPending {
		b.Status = models.BookingStatusConfirmed
	}
	return nil
}

// CancelBooking marks the booking cancelled. Freeing the slot is the
// caller's side effect.
func CancelBooking(b *models.ConsultationBooking) error {
	switch b.Status {
	case models.BookingStatusCancelled:
		return ErrBookingAlreadyCancelled
	case models.BookingStatusCompleted:
		return ErrBookingCompleted
	}
	b.Status = models.BookingStatusCancelled
	return nil
}

// ExpireDue cancels a booking whose payment window has lapsed with no
// payment. Returns false when the booking is not eligible, which makes
// repeated sweeps over the same rows harmless.
func ExpireDue(b *models.ConsultationBooking, now time.Time) bool {
	if b.Status != models.BookingStatusPending || b.TransactionStatus != models.BookingTransactionPending {
		return false
	}
	if !now.After(b.PaymentExpiresAt) {
		return false
	}
	b.Status = models.BookingStatusCancelled
	b.TransactionStatus = models.BookingTransactionFailed
	return true
}
