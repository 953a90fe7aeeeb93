package orderControllers

import (
	"testing"
	"time"

	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
)

func orderStatusPtr(s models.OrderStatus) *models.OrderStatus                   { return &s }
func transactionStatusPtr(s models.TransactionStatus) *models.TransactionStatus { return &s }

func pendingOrder() models.Order {
	return models.Order{
		OrderID:           41,
		UserID:            "user-1",
		OrderStatus:       models.OrderStatusPending,
		TransactionStatus: models.TransactionStatusPending,
	}
}

func TestPromotionRequiresSuccessfulTransaction(t *testing.T) {
	for _, target := range []models.OrderStatus{
		models.OrderStatusPackaging,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCompleted,
	} {
		o := pendingOrder()
		err := ApplyStatusChange(&o, StatusChange{OrderStatus: orderStatusPtr(target)}, time.Now())
		if err != ErrPromotionRequiresPayment {
			t.Errorf("promotion to %s with pending transaction: got err %v, want ErrPromotionRequiresPayment", target, err)
		}
		if o.OrderStatus != models.OrderStatusPending || o.TransactionStatus != models.TransactionStatusPending {
			t.Errorf("rejected promotion to %s mutated the order: %s/%s", target, o.OrderStatus, o.TransactionStatus)
		}
	}
}

func TestPromotionWithTransactionSuccessInSameRequest(t *testing.T) {
	o := pendingOrder()
	err := ApplyStatusChange(&o, StatusChange{
		OrderStatus:       orderStatusPtr(models.OrderStatusPackaging),
		TransactionStatus: transactionStatusPtr(models.TransactionStatusSuccess),
	}, time.Now())
	if err != nil {
		t.Fatalf("expected combined success+packaging to pass, got %v", err)
	}
	if o.OrderStatus != models.OrderStatusPackaging || o.TransactionStatus != models.TransactionStatusSuccess {
		t.Errorf("got %s/%s, want packaging/success", o.OrderStatus, o.TransactionStatus)
	}
}

func TestTransactionFailureCascade(t *testing.T) {
	for _, start := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusPackaging,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		o := pendingOrder()
		o.OrderStatus = start
		o.TransactionStatus = models.TransactionStatusSuccess
		err := ApplyStatusChange(&o, StatusChange{
			TransactionStatus: transactionStatusPtr(models.TransactionStatusFailed),
		}, time.Now())
		if err != nil {
			t.Fatalf("failed transaction from %s returned error: %v", start, err)
		}
		if o.OrderStatus != models.OrderStatusCancelled {
			t.Errorf("from %s: order status = %s, want cancelled", start, o.OrderStatus)
		}
		if o.TransactionStatus != models.TransactionStatusFailed {
			t.Errorf("from %s: transaction status = %s, want failed", start, o.TransactionStatus)
		}
	}
}

func TestTransactionFailureOverridesRequestedStatus(t *testing.T) {
	o := pendingOrder()
	err := ApplyStatusChange(&o, StatusChange{
		OrderStatus:       orderStatusPtr(models.OrderStatusPackaging),
		TransactionStatus: transactionStatusPtr(models.TransactionStatusFailed),
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.OrderStatus != models.OrderStatusCancelled {
		t.Errorf("requested packaging alongside failed payment: status = %s, want cancelled", o.OrderStatus)
	}
}

func TestFailureOnCancelledOrderStaysCancelled(t *testing.T) {
	o := pendingOrder()
	o.OrderStatus = models.OrderStatusCancelled
	o.TransactionStatus = models.TransactionStatusFailed
	err := ApplyStatusChange(&o, StatusChange{
		TransactionStatus: transactionStatusPtr(models.TransactionStatusFailed),
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.OrderStatus != models.OrderStatusCancelled {
		t.Errorf("status = %s, want cancelled", o.OrderStatus)
	}
}

func TestCancelledOrderRejectsStatusChanges(t *testing.T) {
	o := pendingOrder()
	o.OrderStatus = models.OrderStatusCancelled
	err := ApplyStatusChange(&o, StatusChange{
		OrderStatus:       orderStatusPtr(models.OrderStatusPackaging),
		TransactionStatus: transactionStatusPtr(models.TransactionStatusSuccess),
	}, time.Now())
	if err != ErrOrderCancelled {
		t.Errorf("got %v, want ErrOrderCancelled", err)
	}
}

func TestDeliveryArmsDisputeWindow(t *testing.T) {
	now := time.Now()
	o := pendingOrder()
	o.TransactionStatus = models.TransactionStatusSuccess
	o.OrderStatus = models.OrderStatusShipped
	o.IsDisputed = true
	o.HasBeenDisputed = true

	err := ApplyStatusChange(&o, StatusChange{OrderStatus: orderStatusPtr(models.OrderStatusDelivered)}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.DisputeWindowExpiresAt == nil {
		t.Fatal("dispute window not armed")
	}
	if got := *o.DisputeWindowExpiresAt; !got.Equal(now.Add(24 * time.Hour)) {
		t.Errorf("window expires %v, want %v", got, now.Add(24*time.Hour))
	}
	if o.IsDisputed || o.HasBeenDisputed {
		t.Errorf("delivery must reset dispute flags, got isDisputed=%v hasBeen=%v", o.IsDisputed, o.HasBeenDisputed)
	}
}

func TestCancellationBoundary(t *testing.T) {
	for _, start := range []models.OrderStatus{models.OrderStatusShipped, models.OrderStatusDelivered} {
		o := pendingOrder()
		o.OrderStatus = start
		o.TransactionStatus = models.TransactionStatusSuccess
		if err := Cancel(&o); err != ErrCancelAfterShipment {
			t.Errorf("cancel from %s: got %v, want ErrCancelAfterShipment", start, err)
		}
		if o.OrderStatus != start {
			t.Errorf("rejected cancel mutated status to %s", o.OrderStatus)
		}
	}

	for _, start := range []models.OrderStatus{models.OrderStatusPending, models.OrderStatusPackaging} {
		o := pendingOrder()
		o.OrderStatus = start
		if err := Cancel(&o); err != nil {
			t.Fatalf("cancel from %s failed: %v", start, err)
		}
		if o.OrderStatus != models.OrderStatusCancelled {
			t.Errorf("cancel from %s left status %s", start, o.OrderStatus)
		}
		if o.TransactionStatus != models.TransactionStatusFailed {
			t.Errorf("pending transaction should flip to failed on cancel, got %s", o.TransactionStatus)
		}
	}

	// A settled transaction status is left untouched by cancellation.
	o := pendingOrder()
	o.OrderStatus = models.OrderStatusPackaging
	o.TransactionStatus = models.TransactionStatusSuccess
	if err := Cancel(&o); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if o.TransactionStatus != models.TransactionStatusSuccess {
		t.Errorf("successful transaction must not change on cancel, got %s", o.TransactionStatus)
	}

	o.OrderStatus = models.OrderStatusCancelled
	if err := Cancel(&o); err != ErrAlreadyCancelled {
		t.Errorf("double cancel: got %v, want ErrAlreadyCancelled", err)
	}
}

func TestDisputeGuards(t *testing.T) {
	now := time.Now()
	window := now.Add(time.Hour)

	o := pendingOrder()
	o.OrderStatus = models.OrderStatusDelivered
	o.TransactionStatus = models.TransactionStatusSuccess
	o.DisputeWindowExpiresAt = &window

	if err := Dispute(&o, now); err != nil {
		t.Fatalf("dispute inside window failed: %v", err)
	}
	if !o.IsDisputed || !o.HasBeenDisputed {
		t.Errorf("dispute flags not set: isDisputed=%v hasBeen=%v", o.IsDisputed, o.HasBeenDisputed)
	}

	if err := Dispute(&o, now); err != ErrAlreadyDisputed {
		t.Errorf("double dispute: got %v, want ErrAlreadyDisputed", err)
	}

	expired := pendingOrder()
	expired.OrderStatus = models.OrderStatusDelivered
	past := now.Add(-time.Minute)
	expired.DisputeWindowExpiresAt = &past
	if err := Dispute(&expired, now); err != ErrDisputeWindowClosed {
		t.Errorf("expired window: got %v, want ErrDisputeWindowClosed", err)
	}

	notDelivered := pendingOrder()
	notDelivered.OrderStatus = models.OrderStatusShipped
	if err := Dispute(&notDelivered, now); err != ErrNotDelivered {
		t.Errorf("dispute before delivery: got %v, want ErrNotDelivered", err)
	}
}

func TestSettleDisputeReArmsWindow(t *testing.T) {
	now := time.Now()
	oldWindow := now.Add(time.Hour)

	o := pendingOrder()
	o.OrderStatus = models.OrderStatusDelivered
	o.DisputeWindowExpiresAt = &oldWindow
	o.IsDisputed = true
	o.HasBeenDisputed = true

	SettleDispute(&o, now)
	if o.IsDisputed {
		t.Error("settle must clear isDisputed")
	}
	if !o.HasBeenDisputed {
		t.Error("hasBeenDisputed is sticky and must survive settlement")
	}
	if !o.DisputeWindowExpiresAt.After(oldWindow) {
		t.Errorf("settlement must re-arm a later window: %v vs %v", o.DisputeWindowExpiresAt, oldWindow)
	}
}

func TestMapStatusHelpers(t *testing.T) {
	if _, err := mapOrderStatus("Packaging"); err != nil {
		t.Errorf("status mapping should be case-insensitive: %v", err)
	}
	if _, err := mapOrderStatus("returned"); err != ErrInvalidOrderStatus {
		t.Errorf("unknown status: got %v, want ErrInvalidOrderStatus", err)
	}
	if _, err := mapTransactionStatus("SUCCESS"); err != nil {
		t.Errorf("transaction mapping should be case-insensitive: %v", err)
	}
	if _, err := mapTransactionStatus("paid"); err != ErrInvalidTransactionStatus {
		t.Errorf("unknown transaction status: got %v, want ErrInvalidTransactionStatus", err)
	}
}
