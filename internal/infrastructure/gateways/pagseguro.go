package gateways

import (
	"context"
	"log"
	"time"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"
)

const pagSeguroPrefix = "PAGS"

// PagSeguro-like rules: any 16-digit card number is acceptable.

type pagSeguroValidator struct{}

func (pagSeguroValidator) Validate(cardNumber string) bool {
	return len(cardNumber) == 16 && allDigits(cardNumber)
}

type pagSeguroProcessor struct{}

func (pagSeguroProcessor) Process(_ context.Context, amount float64, cardNumber string) (entities.TransactionResult, error) {
	ref := newReference(pagSeguroPrefix)
	log.Printf("[gateway][pagseguro] processing amount=%.2f card=%s reference=%s", amount, maskCard(cardNumber), ref)
	return entities.TransactionResult{Reference: ref, Succeeded: true}, nil
}

type pagSeguroLogger struct {
	sink interfaces.IAuditSink
}

func (l pagSeguroLogger) Log(message string) {
	if l.sink == nil {
		return
	}
	if err := l.sink.Append(entities.AuditEntry{
		Timestamp: time.Now().UTC(),
		Gateway:   entities.GatewayPagSeguro,
		Message:   message,
	}); err != nil {
		log.Printf("[gateway][pagseguro] audit append failed err=%v", err)
	}
}

func init() {
	registerBuiltin(entities.GatewayPagSeguro, func(sink interfaces.IAuditSink) interfaces.IPaymentGateway {
		return &family{
			name:      entities.GatewayPagSeguro,
			validator: pagSeguroValidator{},
			processor: pagSeguroProcessor{},
			logger:    pagSeguroLogger{sink: sink},
		}
	})
}
