package repository

import (
	"context"
	"time"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const (
	defaultAuditTableName = "audit_entries"
	auditAppendTimeout    = 2 * time.Second
)

type auditItem struct {
	ID        string `dynamodbav:"id"`
	Timestamp string `dynamodbav:"timestamp"`
	Gateway   string `dynamodbav:"gateway"`
	Message   string `dynamodbav:"message"`
}

// AuditDynamoRepository is an audit sink backed by a DynamoDB table.
//
// It is write-only from the service's point of view: entries are appended
// for external collaborators (aggregation, reconciliation) to consume.
// Appends run under their own short timeout so a slow table cannot stall
// a dispatch; the caller swallows the error either way.

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditSink = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Append(entry entities.AuditEntry) error {
	it := auditItem{
		ID:        uuid.NewString(),
		Timestamp: entry.Timestamp.UTC().Format(time.RFC3339Nano),
		Gateway:   string(entry.Gateway),
		Message:   entry.Message,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), auditAppendTimeout)
	defer cancel()

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
