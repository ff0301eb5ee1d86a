package interfaces

import (
	"context"

	"paydispatch/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByGateway(ctx context.Context, gateway entities.GatewaySelector) ([]entities.Transaction, error)
}
