package ledger

// PaymentStatus is the label carried by a transaction status event.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusCompleted PaymentStatus = "COMPLETED"
	StatusReleased  PaymentStatus = "RELEASED"
	StatusFailed    PaymentStatus = "FAILED"
	StatusCancelled PaymentStatus = "CANCELLED"
	StatusFrozen    PaymentStatus = "FROZEN"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusReleased, StatusFailed, StatusCancelled, StatusFrozen:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether settlement has finished for the transaction.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case StatusReleased, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return status, nil
}

// ShippingStatus is the label carried by a shipping status event.
type ShippingStatus string

const (
	ShippingDispatchPending ShippingStatus = "DISPATCH PENDING"
	ShippingDispatched      ShippingStatus = "DISPATCHED"
	ShippingDelivered       ShippingStatus = "DELIVERED"
)

// DefaultShippingStatus is reported when no shipping event exists yet.
const DefaultShippingStatus = ShippingDispatchPending

func (s ShippingStatus) String() string {
	return string(s)
}

func (s ShippingStatus) IsValid() bool {
	switch s {
	case ShippingDispatchPending, ShippingDispatched, ShippingDelivered:
		return true
	default:
		return false
	}
}

func NewShippingStatus(s string) (ShippingStatus, error) {
	status := ShippingStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidShippingStatus
	}
	return status, nil
}

// Name of each sub-ledger, used in metrics and history output.
const (
	LedgerStatus   = "status"
	LedgerShipping = "shipping"
)
