package gateways

import (
	"context"
	"errors"
	"testing"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"
)

type memorySink struct {
	entries []entities.AuditEntry
}

func (s *memorySink) Append(entry entities.AuditEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func TestRegistryCreate(t *testing.T) {
	t.Run("unsupported selector", func(t *testing.T) {
		r := NewRegistry(&memorySink{})
		gw, err := r.Create("unknown-family")
		if !errors.Is(err, ErrUnsupportedGateway) {
			t.Fatalf("expected ErrUnsupportedGateway, got %v", err)
		}
		if gw != nil {
			t.Fatalf("no gateway instance may be produced for an unknown selector")
		}
	})

	t.Run("builtins registered", func(t *testing.T) {
		r := NewRegistry(&memorySink{})
		for _, selector := range []entities.GatewaySelector{entities.GatewayPagSeguro, entities.GatewayMercadoPago, entities.GatewayStripe} {
			gw, err := r.Create(selector)
			if err != nil {
				t.Fatalf("create %s: %v", selector, err)
			}
			if gw.Name() != selector {
				t.Fatalf("expected family %s, got %s", selector, gw.Name())
			}
		}
	})

	t.Run("independent instances", func(t *testing.T) {
		r := NewRegistry(&memorySink{})
		a, _ := r.Create(entities.GatewayStripe)
		b, _ := r.Create(entities.GatewayStripe)
		if a == b {
			t.Fatalf("factory must produce independent instances")
		}
	})
}

func TestRegistrySelectors(t *testing.T) {
	r := NewRegistry(&memorySink{})
	got := r.Selectors()
	want := []entities.GatewaySelector{entities.GatewayMercadoPago, entities.GatewayPagSeguro, entities.GatewayStripe}
	if len(got) != len(want) {
		t.Fatalf("expected %d selectors, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry(&memorySink{})
	r.Register("acme", func(sink interfaces.IAuditSink) interfaces.IPaymentGateway {
		return &family{
			name:      "acme",
			validator: &countingValidator{ok: true},
			processor: &countingProcessor{ref: "ACME-1"},
			logger:    &countingLogger{},
		}
	})

	gw, err := r.Create("acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outcome, err := gw.ProcessPayment(context.Background(), entities.PaymentRequest{Amount: 5, CardNumber: "1111222233334444"})
	if err != nil || outcome.Reference != "ACME-1" {
		t.Fatalf("custom family not dispatched: outcome=%+v err=%v", outcome, err)
	}
}
