package orderControllers

import (
	"errors"
	"strings"
	"time"

	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
)

// DisputeWindow is how long after delivery a buyer may raise a dispute.
const DisputeWindow = 24 * time.Hour

var (
	ErrInvalidOrderStatus       = errors.New("invalid order status")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrOrderCancelled           = errors.New("order is cancelled and can no longer change status")
	ErrPromotionRequiresPayment = errors.New("order status requires a successful transaction")
	ErrAlreadyCancelled         = errors.New("order is already cancelled")
	ErrCancelAfterShipment      = errors.New("order cannot be cancelled once shipped")
	ErrNotDelivered             = errors.New("only delivered orders can be disputed")
	ErrAlreadyDisputed          = errors.New("order is already disputed")
	ErrDisputeWindowClosed      = errors.New("dispute window has expired")
)

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusPackaging):
		return models.OrderStatusPackaging, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

func mapTransactionStatus(status string) (models.TransactionStatus, error) {
	switch strings.ToLower(status) {
	case string(models.TransactionStatusPending):
		return models.TransactionStatusPending, nil
	case string(models.TransactionStatusSuccess):
		return models.TransactionStatusSuccess, nil
	case string(models.TransactionStatusFailed):
		return models.TransactionStatusFailed, nil
	default:
		return "", ErrInvalidTransactionStatus
	}
}

func isFulfillment(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusPackaging, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCompleted:
		return true
	}
	return false
}

// StatusChange is a request to move one or both status axes.
type StatusChange struct {
	OrderStatus       *models.OrderStatus
	TransactionStatus *models.TransactionStatus
}

// ApplyStatusChange runs the state-machine guards against o and mutates it
// only when every guard passes.
//
//   - Promotion into a fulfilment state requires the resulting transaction
//     status (the new value if supplied, else the current one) to be success.
//   - transaction_status = failed forces order_status = cancelled, overriding
//     any requested order status. An already-cancelled order stays cancelled.
//   - Reaching delivered arms a fresh dispute window.
func ApplyStatusChange(o *models.Order, change StatusChange, now time.Time) error {
	resulting := o.TransactionStatus
	if change.TransactionStatus != nil {
		resulting = *change.TransactionStatus
	}

	if resulting == models.TransactionStatusFailed {
		o.TransactionStatus = models.TransactionStatusFailed
		o.OrderStatus = models.OrderStatusCancelled
		return nil
	}

	if change.OrderStatus != nil {
		next := *change.OrderStatus
		if o.OrderStatus == models.OrderStatusCancelled && next != models.OrderStatusCancelled {
			return ErrOrderCancelled
		}
		if isFulfillment(next) && resulting != models.TransactionStatusSuccess {
			return ErrPromotionRequiresPayment
		}
		if next == models.OrderStatusCancelled && next != o.OrderStatus {
			if o.OrderStatus == models.OrderStatusShipped || o.OrderStatus == models.OrderStatusDelivered {
				return ErrCancelAfterShipment
			}
			o.TransactionStatus = resulting
			return Cancel(o)
		}
		wasDelivered := o.OrderStatus == models.OrderStatusDelivered
		o.OrderStatus = next
		if next == models.OrderStatusDelivered && !wasDelivered {
			expires := now.Add(DisputeWindow)
			o.DisputeWindowExpiresAt = &expires
			o.IsDisputed = false
			o.HasBeenDisputed = false
		}
	}

	o.TransactionStatus = resulting
	return nil
}

// Cancel applies the cancellation guards: not already cancelled, not past
// the shipped boundary. A pending transaction flips to failed.
func Cancel(o *models.Order) error {
	if o.OrderStatus == models.OrderStatusCancelled {
		return ErrAlreadyCancelled
	}
	if o.OrderStatus == models.OrderStatusShipped || o.OrderStatus == models.OrderStatusDelivered {
		return ErrCancelAfterShipment
	}
	o.OrderStatus = models.OrderStatusCancelled
	if o.TransactionStatus == models.TransactionStatusPending {
		o.TransactionStatus = models.TransactionStatusFailed
	}
	return nil
}

// Dispute flags a delivered order inside its dispute window.
func Dispute(o *models.Order, now time.Time) error {
	if o.OrderStatus != models.OrderStatusDelivered {
		return ErrNotDelivered
	}
	if o.IsDisputed {
		return ErrAlreadyDisputed
	}
	if o.DisputeWindowExpiresAt == nil || !now.Before(*o.DisputeWindowExpiresAt) {
		return ErrDisputeWindowClosed
	}
	o.IsDisputed = true
	o.HasBeenDisputed = true
	return nil
}

// SettleDispute clears the dispute flag and re-arms a fresh window. It is
// callable even when the order is not currently disputed.
func SettleDispute(o *models.Order, now time.Time) {
	o.IsDisputed = false
	expires := now.Add(DisputeWindow)
	o.DisputeWindowExpiresAt = &expires
}
