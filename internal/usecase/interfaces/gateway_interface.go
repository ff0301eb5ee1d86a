package interfaces

import (
	"context"

	"paydispatch/internal/domain/entities"
)

// ICardValidator decides whether a card number is acceptable for one
// gateway family. Pure predicate: malformed input is simply invalid,
// never an error.
type ICardValidator interface {
	Validate(cardNumber string) bool
}

// ITransactionProcessor turns a validated amount + card number into a
// family-prefixed transaction reference.
//
// Precondition: the family's validator already accepted the card number;
// the orchestrator enforces this, the processor does not re-check.
type ITransactionProcessor interface {
	Process(ctx context.Context, amount float64, cardNumber string) (entities.TransactionResult, error)
}

// ITransactionLogger records one family-tagged audit line for a completed
// transaction. It never fails the caller's flow: sink errors are swallowed
// and surfaced only as diagnostics.
type ITransactionLogger interface {
	Log(message string)
}

// IPaymentGateway is the capability bundle every gateway family satisfies:
// one validator, one processor and one logger from the same family behind
// a single orchestration entry point.
type IPaymentGateway interface {
	Name() entities.GatewaySelector
	ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentOutcome, error)
}

// IGatewayFactory produces a fully-composed, independent IPaymentGateway
// for a selector, or ErrUnsupportedGateway for an unregistered one.
type IGatewayFactory interface {
	Create(selector entities.GatewaySelector) (IPaymentGateway, error)
	Selectors() []entities.GatewaySelector
}
