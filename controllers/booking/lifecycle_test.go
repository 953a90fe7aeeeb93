package bookingControllers

import (
	"testing"
	"time"

	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
)

func bookingStatusPtr(s models.BookingStatus) *models.BookingStatus { return &s }
func bookingTxnPtr(s models.BookingTransactionStatus) *models.BookingTransactionStatus {
	return &s
}

func pendingBooking() models.ConsultationBooking {
	return models.ConsultationBooking{
		ID:                7,
		UserID:            "user-1",
		TimeSlotID:        3,
		Date:              "2025-12-10",
		Status:            models.BookingStatusPending,
		TransactionStatus: models.BookingTransactionPending,
		PaymentExpiresAt:  time.Now().Add(PaymentWindow),
	}
}

func TestConfirmRequiresSuccessfulPayment(t *testing.T) {
	b := pendingBooking()
	err := ApplyBookingChange(&b, BookingChange{Status: bookingStatusPtr(models.BookingStatusConfirmed)})
	if err != ErrConfirmRequiresPayment {
		t.Errorf("got %v, want ErrConfirmRequiresPayment", err)
	}
	if b.Status != models.BookingStatusPending {
		t.Errorf("rejected confirm mutated status to %s", b.Status)
	}

	// Payment arriving in the same request satisfies the guard.
	b = pendingBooking()
	err = ApplyBookingChange(&b, BookingChange{
		Status:            bookingStatusPtr(models.BookingStatusConfirmed),
		TransactionStatus: bookingTxnPtr(models.BookingTransactionSuccessful),
	})
	if err != nil {
		t.Fatalf("confirm with successful payment failed: %v", err)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", b.Status)
	}
}

func TestSuccessfulPaymentAutoConfirms(t *testing.T) {
	b := pendingBooking()
	err := ApplyBookingChange(&b, BookingChange{
		TransactionStatus: bookingTxnPtr(models.BookingTransactionSuccessful),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Errorf("successful payment on pending booking should auto-confirm, got %s", b.Status)
	}

	// A confirmed booking stays confirmed on a repeated payment update.
	err = ApplyBookingChange(&b, BookingChange{
		TransactionStatus: bookingTxnPtr(models.BookingTransactionSuccessful),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", b.Status)
	}
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	b := pendingBooking()
	err := ApplyBookingChange(&b, BookingChange{Status: bookingStatusPtr(models.BookingStatusCompleted)})
	if err != ErrCompleteRequiresConfirmed {
		t.Errorf("got %v, want ErrCompleteRequiresConfirmed", err)
	}

	b.Status = models.BookingStatusConfirmed
	b.TransactionStatus = models.BookingTransactionSuccessful
	if err := ApplyBookingChange(&b, BookingChange{Status: bookingStatusPtr(models.BookingStatusCompleted)}); err != nil {
		t.Fatalf("completing a confirmed booking failed: %v", err)
	}
	if b.Status != models.BookingStatusCompleted {
		t.Errorf("status = %s, want completed", b.Status)
	}
}

func TestCancelledBookingIsTerminal(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingStatusCancelled
	err := ApplyBookingChange(&b, BookingChange{
		Status:            bookingStatusPtr(models.BookingStatusConfirmed),
		TransactionStatus: bookingTxnPtr(models.BookingTransactionSuccessful),
	})
	if err != ErrBookingCancelled {
		t.Errorf("got %v, want ErrBookingCancelled", err)
	}
	if b.TransactionStatus != models.BookingTransactionPending {
		t.Errorf("terminal booking mutated: %s", b.TransactionStatus)
	}
}

func TestCancelBooking(t *testing.T) {
	for _, start := range []models.BookingStatus{models.BookingStatusPending, models.BookingStatusConfirmed} {
		b := pendingBooking()
		b.Status = start
		if err := CancelBooking(&b); err != nil {
			t.Fatalf("cancel from %s failed: %v", start, err)
		}
		if b.Status != models.BookingStatusCancelled {
			t.Errorf("cancel from %s left status %s", start, b.Status)
		}
	}

	b := pendingBooking()
	b.Status = models.BookingStatusCancelled
	if err := CancelBooking(&b); err != ErrBookingAlreadyCancelled {
		t.Errorf("double cancel: got %v, want ErrBookingAlreadyCancelled", err)
	}

	b.Status = models.BookingStatusCompleted
	if err := CancelBooking(&b); err != ErrBookingCompleted {
		t.Errorf("cancel completed: got %v, want ErrBookingCompleted", err)
	}
}

func TestExpireDue(t *testing.T) {
	now := time.Now()

	b := pendingBooking()
	b.PaymentExpiresAt = now.Add(-time.Minute)
	if !ExpireDue(&b, now) {
		t.Fatal("overdue pending booking should expire")
	}
	if b.Status != models.BookingStatusCancelled || b.TransactionStatus != models.BookingTransactionFailed {
		t.Errorf("expired booking = %s/%s, want cancelled/failed", b.Status, b.TransactionStatus)
	}

	// A second pass over the same booking is a no-op.
	if ExpireDue(&b, now) {
		t.Error("expiring an already-cancelled booking must be a no-op")
	}

	fresh := pendingBooking()
	if ExpireDue(&fresh, now) {
		t.Error("booking inside its payment window must not expire")
	}

	paid := pendingBooking()
	paid.PaymentExpiresAt = now.Add(-time.Minute)
	paid.Status = models.BookingStatusConfirmed
	paid.TransactionStatus = models.BookingTransactionSuccessful
	if ExpireDue(&paid, now) {
		t.Error("paid booking must not expire")
	}
}

func TestMapBookingStatusHelpers(t *testing.T) {
	if _, err := mapBookingStatus("Confirmed"); err != nil {
		t.Errorf("status mapping should be case-insensitive: %v", err)
	}
	if _, err := mapBookingStatus("booked"); err != ErrInvalidBookingStatus {
		t.Errorf("unknown status: got %v, want ErrInvalidBookingStatus", err)
	}
	if _, err := mapBookingTransactionStatus("SUCCESSFUL"); err != nil {
		t.Errorf("transaction mapping should be case-insensitive: %v", err)
	}
	if _, err := mapBookingTransactionStatus("paid"); err != ErrInvalidBookingTransaction {
		t.Errorf("unknown transaction status: got %v, want ErrInvalidBookingTransaction", err)
	}
}
