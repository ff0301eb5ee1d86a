package gateways

import (
	"context"
	"log"
	"time"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"
)

const stripePrefix = "STRP"

// Stripe-like rules: 16 digits passing the Luhn check.

type stripeValidator struct{}

func (stripeValidator) Validate(cardNumber string) bool {
	return len(cardNumber) == 16 && allDigits(cardNumber) && luhnValid(cardNumber)
}

// luhnValid implements the standard Luhn mod-10 check. Callers guarantee
// a digits-only input.
func luhnValid(cardNumber string) bool {
	sum := 0
	double := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		d := int(cardNumber[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

type stripeProcessor struct{}

func (stripeProcessor) Process(_ context.Context, amount float64, cardNumber string) (entities.TransactionResult, error) {
	ref := newReference(stripePrefix)
	log.Printf("[gateway][stripe] processing amount=%.2f card=%s reference=%s", amount, maskCard(cardNumber), ref)
	return entities.TransactionResult{Reference: ref, Succeeded: true}, nil
}

type stripeLogger struct {
	sink interfaces.IAuditSink
}

func (l stripeLogger) Log(message string) {
	if l.sink == nil {
		return
	}
	if err := l.sink.Append(entities.AuditEntry{
		Timestamp: time.Now().UTC(),
		Gateway:   entities.GatewayStripe,
		Message:   message,
	}); err != nil {
		log.Printf("[gateway][stripe] audit append failed err=%v", err)
	}
}

func init() {
	registerBuiltin(entities.GatewayStripe, func(sink interfaces.IAuditSink) interfaces.IPaymentGateway {
		return &family{
			name:      entities.GatewayStripe,
			validator: stripeValidator{},
			processor: stripeProcessor{},
			logger:    stripeLogger{sink: sink},
		}
	})
}
