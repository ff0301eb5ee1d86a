package response

import (
	"testing"
	"time"

	"paydispatch/internal/domain/entities"
)

func TestFromTransaction(t *testing.T) {
	now := time.Now().UTC()

	tr := entities.Transaction{
		ID:        "tx-1",
		Gateway:   entities.GatewayStripe,
		Amount:    99.9,
		CardLast4: "4242",
		Reference: "STRP-ABC",
		Status:    entities.PaymentStatusApproved,
		Date:      now,
	}

	res := FromTransaction(tr)
	if res.TransactionID != "tx-1" {
		t.Fatalf("unexpected id: %+v", res)
	}
	if res.Gateway != "stripe" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.CardLast4 != "4242" || res.Reference != "STRP-ABC" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}

func TestFromSelectors(t *testing.T) {
	res := FromSelectors([]entities.GatewaySelector{entities.GatewayPagSeguro, entities.GatewayStripe})
	if len(res.Gateways) != 2 || res.Gateways[0] != "pagseguro" || res.Gateways[1] != "stripe" {
		t.Fatalf("unexpected list: %+v", res)
	}
}
