package entities

// PaymentStatus represents the terminal outcome of a dispatch call.
//
// A dispatch always ends in a definite status: approved (reference issued)
// or rejected (card failed the family's validation). Pending exists for
// completeness; the current flow never leaves a payment pending.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// GatewaySelector identifies a payment-gateway family at dispatch time.
//
// The set is open: new families register themselves with the gateway
// registry under a new selector value. An unregistered selector is a hard
// error (ErrUnsupportedGateway), never a silent default.

type GatewaySelector string

const (
	GatewayPagSeguro   GatewaySelector = "pagseguro"
	GatewayMercadoPago GatewaySelector = "mercadopago"
	GatewayStripe      GatewaySelector = "stripe"
)

// PaymentRequest is the per-dispatch input. It is created by the caller,
// lives for the duration of one dispatch call and is never mutated.

type PaymentRequest struct {
	Amount     float64 `json:"amount"`
	CardNumber string  `json:"card_number"`
}

// TransactionResult is what a family's processor produces for a validated
// request: an opaque, family-prefixed reference that is never reused.

type TransactionResult struct {
	Reference string `json:"reference"`
	Succeeded bool   `json:"succeeded"`
}

// PaymentOutcome is the result a gateway family hands back to the
// dispatcher: approved with a reference, or rejected with a reason.

type PaymentOutcome struct {
	Status    PaymentStatus `json:"status"`
	Reference string        `json:"reference,omitempty"`
	Reason    string        `json:"reason,omitempty"`
}
