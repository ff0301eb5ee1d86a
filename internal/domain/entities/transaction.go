package entities

import "time"

// Transaction is the persisted record of one dispatch call.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (gateway-index): gateway
//
// Card data:
//   - Only the last four digits are stored; the full PAN never leaves the
//     dispatch call.

type Transaction struct {
	ID        string          `json:"id"`
	Gateway   GatewaySelector `json:"gateway"`
	Amount    float64         `json:"amount"`
	CardLast4 string          `json:"card_last4"`
	Reference string          `json:"reference,omitempty"`
	Status    PaymentStatus   `json:"status"`
	Reason    string          `json:"reason,omitempty"`
	Date      time.Time       `json:"date"`
}
