package repository

import (
	"context"
	"strconv"
	"time"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsGatewayIndex     = "gateway-index"
)

type transactionItem struct {
	ID        string `dynamodbav:"id"`
	Gateway   string `dynamodbav:"gateway"`
	Amount    string `dynamodbav:"amount"`
	CardLast4 string `dynamodbav:"card_last4"`
	Reference string `dynamodbav:"reference,omitempty"`
	Status    string `dynamodbav:"status"`
	Reason    string `dynamodbav:"reason,omitempty"`
	Date      string `dynamodbav:"date"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: gateway-index (PK: gateway)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByGateway(ctx context.Context, gateway entities.GatewaySelector) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsGatewayIndex),
		KeyConditionExpression: aws.String("gateway = :gw"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gw": &types.AttributeValueMemberS{Value: string(gateway)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:        t.ID,
		Gateway:   string(t.Gateway),
		Amount:    strconv.FormatFloat(t.Amount, 'f', 2, 64),
		CardLast4: t.CardLast4,
		Reference: t.Reference,
		Status:    string(t.Status),
		Reason:    t.Reason,
		Date:      t.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Transaction{
		ID:        it.ID,
		Gateway:   entities.GatewaySelector(it.Gateway),
		Amount:    amount,
		CardLast4: it.CardLast4,
		Reference: it.Reference,
		Status:    entities.PaymentStatus(it.Status),
		Reason:    it.Reason,
		Date:      dt,
	}
}
