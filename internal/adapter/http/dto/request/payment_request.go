package request

// PaymentDispatchRequest is the payload for the "dispatch payment" route.
//
// `gateway` selects the family; anything unregistered is answered with
// UNSUPPORTED_GATEWAY. Amount and card format rules belong to the selected
// family, so only shape constraints are enforced here.

type PaymentDispatchRequest struct {
	Gateway    string  `json:"gateway" binding:"required"`
	Amount     float64 `json:"amount" binding:"gte=0"`
	CardNumber string  `json:"card_number" binding:"required"`
}
