package response

import (
	"time"

	"paydispatch/internal/domain/entities"
)

type TransactionResponse struct {
	TransactionID string    `json:"transaction_id"`
	Gateway       string    `json:"gateway"`
	Amount        float64   `json:"amount"`
	CardLast4     string    `json:"card_last4"`
	Reference     string    `json:"reference,omitempty"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason,omitempty"`
	Date          time.Time `json:"date"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.ID,
		Gateway:       string(t.Gateway),
		Amount:        t.Amount,
		CardLast4:     t.CardLast4,
		Reference:     t.Reference,
		Status:        string(t.Status),
		Reason:        t.Reason,
		Date:          t.Date,
	}
}

type GatewayListResponse struct {
	Gateways []string `json:"gateways"`
}

func FromSelectors(selectors []entities.GatewaySelector) GatewayListResponse {
	out := make([]string, 0, len(selectors))
	for _, s := range selectors {
		out = append(out, string(s))
	}
	return GatewayListResponse{Gateways: out}
}
