package gateways

import (
	"context"
	"fmt"
	"log"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"
)

// family composes exactly one validator, one processor and one logger
// from the same gateway family behind the IPaymentGateway contract.
//
// The type and the component types it composes are unexported: the only
// way to obtain a family is through a registry factory, so a PagSeguro
// validator can never end up next to a Stripe processor.

type family struct {
	name      entities.GatewaySelector
	validator interfaces.ICardValidator
	processor interfaces.ITransactionProcessor
	logger    interfaces.ITransactionLogger
}

var _ interfaces.IPaymentGateway = (*family)(nil)

func (f *family) Name() entities.GatewaySelector { return f.name }

// ProcessPayment runs the validate -> process -> log sequence.
//
// A card failing validation short-circuits: neither the processor nor the
// logger runs and the outcome is rejected. A processor error aborts the
// dispatch with no outcome and no audit line; no retry is attempted here,
// retry policy belongs to callers wrapping the processor.
func (f *family) ProcessPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentOutcome, error) {
	if !f.validator.Validate(req.CardNumber) {
		log.Printf("[gateway][%s] card rejected card=%s", f.name, maskCard(req.CardNumber))
		return entities.PaymentOutcome{
			Status: entities.PaymentStatusRejected,
			Reason: "card rejected",
		}, nil
	}

	res, err := f.processor.Process(ctx, req.Amount, req.CardNumber)
	if err != nil {
		log.Printf("[gateway][%s] processing failed err=%v", f.name, err)
		return entities.PaymentOutcome{}, err
	}

	f.logger.Log(fmt.Sprintf("transaction %s approved amount=%.2f card=%s", res.Reference, req.Amount, maskCard(req.CardNumber)))

	return entities.PaymentOutcome{
		Status:    entities.PaymentStatusApproved,
		Reference: res.Reference,
	}, nil
}
