package gateways

import (
	"context"
	"errors"
	"strings"
	"testing"

	"paydispatch/internal/domain/entities"
)

type countingValidator struct {
	calls int
	ok    bool
}

func (v *countingValidator) Validate(string) bool {
	v.calls++
	return v.ok
}

type countingProcessor struct {
	calls int
	ref   string
	err   error
}

func (p *countingProcessor) Process(context.Context, float64, string) (entities.TransactionResult, error) {
	p.calls++
	if p.err != nil {
		return entities.TransactionResult{}, p.err
	}
	return entities.TransactionResult{Reference: p.ref, Succeeded: true}, nil
}

type countingLogger struct {
	calls    int
	messages []string
}

func (l *countingLogger) Log(message string) {
	l.calls++
	l.messages = append(l.messages, message)
}

func TestFamilyProcessPayment(t *testing.T) {
	t.Run("rejected card invokes neither processor nor logger", func(t *testing.T) {
		validator := &countingValidator{ok: false}
		processor := &countingProcessor{ref: "TEST-1"}
		logger := &countingLogger{}
		f := &family{name: entities.GatewayPagSeguro, validator: validator, processor: processor, logger: logger}

		outcome, err := f.ProcessPayment(context.Background(), entities.PaymentRequest{Amount: 10, CardNumber: "bad"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Status != entities.PaymentStatusRejected {
			t.Fatalf("expected rejected, got %s", outcome.Status)
		}
		if outcome.Reference != "" {
			t.Fatalf("rejected outcome must carry no reference, got %q", outcome.Reference)
		}
		if validator.calls != 1 {
			t.Fatalf("expected 1 validator call, got %d", validator.calls)
		}
		if processor.calls != 0 || logger.calls != 0 {
			t.Fatalf("processor/logger must stay uninvoked, got %d/%d", processor.calls, logger.calls)
		}
	})

	t.Run("approved card logs the reference", func(t *testing.T) {
		validator := &countingValidator{ok: true}
		processor := &countingProcessor{ref: "TEST-REF"}
		logger := &countingLogger{}
		f := &family{name: entities.GatewayStripe, validator: validator, processor: processor, logger: logger}

		outcome, err := f.ProcessPayment(context.Background(), entities.PaymentRequest{Amount: 42.5, CardNumber: "4242424242424242"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", outcome.Status)
		}
		if outcome.Reference != "TEST-REF" {
			t.Fatalf("unexpected reference: %q", outcome.Reference)
		}
		if processor.calls != 1 || logger.calls != 1 {
			t.Fatalf("expected 1 processor and 1 logger call, got %d/%d", processor.calls, logger.calls)
		}
		if !strings.Contains(logger.messages[0], "TEST-REF") {
			t.Fatalf("audit line must embed the reference, got %q", logger.messages[0])
		}
		if strings.Contains(logger.messages[0], "4242424242424242") {
			t.Fatalf("audit line must not carry the full card number: %q", logger.messages[0])
		}
	})

	t.Run("processor error aborts without logging", func(t *testing.T) {
		validator := &countingValidator{ok: true}
		processor := &countingProcessor{err: errors.New("provider down")}
		logger := &countingLogger{}
		f := &family{name: entities.GatewayMercadoPago, validator: validator, processor: processor, logger: logger}

		_, err := f.ProcessPayment(context.Background(), entities.PaymentRequest{Amount: 1, CardNumber: "5234567890123456"})
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down error, got %v", err)
		}
		if logger.calls != 0 {
			t.Fatalf("logger must stay uninvoked on processor failure, got %d calls", logger.calls)
		}
	})
}
