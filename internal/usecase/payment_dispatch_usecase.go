package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrInvalidGateway       = errors.New("invalid gateway")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidCardNumber    = errors.New("invalid card number")
)

// IPaymentDispatchUseCase is the caller-facing dispatch entry point.
//
// Dispatch resolves the selector to a gateway family, forwards the payment
// request to it and persists the resulting transaction. It holds no
// gateway-specific logic: every family goes through the exact same path.

type IPaymentDispatchUseCase interface {
	Dispatch(ctx context.Context, gateway string, amount float64, cardNumber string) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByGateway(ctx context.Context, gateway string) ([]entities.Transaction, error)
}

type PaymentDispatchUseCase struct {
	factory interfaces.IGatewayFactory
	repo    interfaces.ITransactionRepository
}

var _ IPaymentDispatchUseCase = (*PaymentDispatchUseCase)(nil)

func NewPaymentDispatchUseCase(factory interfaces.IGatewayFactory, repo interfaces.ITransactionRepository) *PaymentDispatchUseCase {
	return &PaymentDispatchUseCase{factory: factory, repo: repo}
}

func (u *PaymentDispatchUseCase) Dispatch(ctx context.Context, gateway string, amount float64, cardNumber string) (entities.Transaction, error) {
	gateway = strings.TrimSpace(gateway)
	log.Printf("[dispatch][usecase] dispatch start gateway=%s amount=%.2f", gateway, amount)

	if gateway == "" {
		return entities.Transaction{}, ErrInvalidGateway
	}
	if amount < 0 {
		return entities.Transaction{}, ErrInvalidAmount
	}
	if strings.TrimSpace(cardNumber) == "" {
		return entities.Transaction{}, ErrInvalidCardNumber
	}
	if u.factory == nil {
		return entities.Transaction{}, errors.New("gateway factory not configured")
	}

	gw, err := u.factory.Create(entities.GatewaySelector(gateway))
	if err != nil {
		log.Printf("[dispatch][usecase] gateway resolution failed gateway=%s err=%v", gateway, err)
		return entities.Transaction{}, err
	}

	outcome, err := gw.ProcessPayment(ctx, entities.PaymentRequest{Amount: amount, CardNumber: cardNumber})
	if err != nil {
		log.Printf("[dispatch][usecase] processing failed gateway=%s err=%v", gateway, err)
		return entities.Transaction{}, err
	}

	t := entities.Transaction{
		ID:        uuid.NewString(),
		Gateway:   gw.Name(),
		Amount:    amount,
		CardLast4: cardLast4(cardNumber),
		Reference: outcome.Reference,
		Status:    outcome.Status,
		Reason:    outcome.Reason,
		Date:      time.Now().UTC(),
	}

	if u.repo == nil {
		return entities.Transaction{}, errors.New("transaction repository not configured")
	}
	created, err := u.repo.Create(ctx, t)
	if err != nil {
		log.Printf("[dispatch][usecase] transaction create failed gateway=%s transaction_id=%s err=%v", gateway, t.ID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[dispatch][usecase] dispatch done gateway=%s transaction_id=%s status=%s reference=%s", gateway, created.ID, created.Status, created.Reference)
	return created, nil
}

func (u *PaymentDispatchUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *PaymentDispatchUseCase) ListByGateway(ctx context.Context, gateway string) ([]entities.Transaction, error) {
	gateway = strings.TrimSpace(gateway)
	if gateway == "" {
		return nil, ErrInvalidGateway
	}
	return u.repo.ListByGateway(ctx, entities.GatewaySelector(gateway))
}

func cardLast4(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
