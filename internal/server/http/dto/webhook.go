package dto

// PaymentEventRequest mirrors the relay's event envelope. Unknown fields are
// ignored; required fields are validated downstream before use.
type PaymentEventRequest struct {
	Event string           `json:"event"`
	Data  PaymentEventData `json:"data"`
}

// PaymentEventData is the provider payload nested inside the envelope.
type PaymentEventData struct {
	Status    string               `json:"status"`
	Reference string               `json:"reference"`
	Metadata  PaymentEventMetadata `json:"metadata"`
}

// PaymentEventMetadata carries the business keys attached to the charge.
type PaymentEventMetadata struct {
	OrderID string `json:"orderId"`
}
