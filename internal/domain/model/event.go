package model

const (
	// EventKindChargeSuccess is the only event kind that mutates order state.
	EventKindChargeSuccess = "charge.success"
	// EventStatusSuccess is the nested status a relevant charge must carry.
	EventStatusSuccess = "success"
)

// PaymentEvent is a relay-delivered provider event, already authenticated.
// It lives only for the duration of one request.
type PaymentEvent struct {
	Kind      string
	Status    string
	Reference string
	OrderID   string
}

// Relevant reports whether the event should be reconciled against an order.
// Everything else is acknowledged as a no-op.
func (e PaymentEvent) Relevant() bool {
	return e.Kind == EventKindChargeSuccess && e.Status == EventStatusSuccess
}
