package gateways

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const mercadoPagoPrefix = "MPAGO"

// MercadoPago-like rules: 16 digits starting with "5" (the family's card
// scheme prefix).

type mercadoPagoValidator struct{}

func (mercadoPagoValidator) Validate(cardNumber string) bool {
	return len(cardNumber) == 16 && allDigits(cardNumber) && strings.HasPrefix(cardNumber, "5")
}

// mercadoPagoProcessor issues local references by default. When a
// MERCADOPAGO_ACCESS_TOKEN is configured and mock mode is off, it creates
// the payment through the Mercado Pago SDK and embeds the provider
// payment id in the reference instead.

type mercadoPagoProcessor struct {
	client payment.Client
}

func newMercadoPagoProcessor() *mercadoPagoProcessor {
	if isGatewayMockEnabled() {
		return &mercadoPagoProcessor{}
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if accessToken == "" {
		return &mercadoPagoProcessor{}
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[gateway][mercadopago] sdk config failed err=%v; using local references", err)
		return &mercadoPagoProcessor{}
	}
	log.Printf("[gateway][mercadopago] live client initialized")
	return &mercadoPagoProcessor{client: payment.NewClient(cfg)}
}

func (p *mercadoPagoProcessor) Process(ctx context.Context, amount float64, cardNumber string) (entities.TransactionResult, error) {
	if p == nil || p.client == nil {
		ref := newReference(mercadoPagoPrefix)
		log.Printf("[gateway][mercadopago] processing amount=%.2f card=%s reference=%s", amount, maskCard(cardNumber), ref)
		return entities.TransactionResult{Reference: ref, Succeeded: true}, nil
	}

	log.Printf("[gateway][mercadopago] live create start amount=%.2f card=%s", amount, maskCard(cardNumber))
	resp, err := p.client.Create(ctx, payment.Request{
		TransactionAmount: amount,
		Description:       fmt.Sprintf("paydispatch card %s", maskCard(cardNumber)),
	})
	if err != nil {
		log.Printf("[gateway][mercadopago] live create failed err=%v", err)
		return entities.TransactionResult{}, err
	}
	log.Printf("[gateway][mercadopago] live create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return entities.TransactionResult{
		Reference: fmt.Sprintf("%s-%d", mercadoPagoPrefix, resp.ID),
		Succeeded: true,
	}, nil
}

type mercadoPagoLogger struct {
	sink interfaces.IAuditSink
}

func (l mercadoPagoLogger) Log(message string) {
	if l.sink == nil {
		return
	}
	if err := l.sink.Append(entities.AuditEntry{
		Timestamp: time.Now().UTC(),
		Gateway:   entities.GatewayMercadoPago,
		Message:   message,
	}); err != nil {
		log.Printf("[gateway][mercadopago] audit append failed err=%v", err)
	}
}

func isGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func init() {
	registerBuiltin(entities.GatewayMercadoPago, func(sink interfaces.IAuditSink) interfaces.IPaymentGateway {
		return &family{
			name:      entities.GatewayMercadoPago,
			validator: mercadoPagoValidator{},
			processor: newMercadoPagoProcessor(),
			logger:    mercadoPagoLogger{sink: sink},
		}
	})
}
