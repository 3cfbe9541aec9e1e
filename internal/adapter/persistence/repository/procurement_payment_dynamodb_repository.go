package repository

import (
	"context"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName     = "procurement_payments"
	paymentsPurchaseOrderIDIndex = "purchase_order_id-index"
)

type procurementPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	PurchaseOrderID    string                 `dynamodbav:"purchase_order_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// ProcurementPaymentDynamoRepository persists ProcurementPayment entities
// in DynamoDB.
//
// Table requirements:
//   - PK: id (string, provider payment id)
//   - GSI: purchase_order_id-index (PK: purchase_order_id)

type ProcurementPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProcurementPaymentRepository = (*ProcurementPaymentDynamoRepository)(nil)

func NewProcurementPaymentDynamoRepository(ddb *dynamodb.Client) *ProcurementPaymentDynamoRepository {
	return &ProcurementPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *ProcurementPaymentDynamoRepository) Create(ctx context.Context, p entities.ProcurementPayment) (entities.ProcurementPayment, error) {
	av, err := attributevalue.MarshalMap(toProcurementPaymentItem(p))
	if err != nil {
		return entities.ProcurementPayment{}, err
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
		return entities.ProcurementPayment{}, err
	}
	return p, nil
}

func (r *ProcurementPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProcurementPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProcurementPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProcurementPayment{}, nil
	}

	var it procurementPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProcurementPayment{}, err
	}
	return fromProcurementPaymentItem(it), nil
}

func (r *ProcurementPaymentDynamoRepository) ListByPurchaseOrderID(ctx context.Context, poID string) ([]entities.ProcurementPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsPurchaseOrderIDIndex),
		KeyConditionExpression: aws.String("purchase_order_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: poID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProcurementPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it procurementPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProcurementPaymentItem(it))
	}
	return items, nil
}

func toProcurementPaymentItem(p entities.ProcurementPayment) procurementPaymentItem {
	return procurementPaymentItem{
		ID:                 p.ID,
		PurchaseOrderID:    p.PurchaseOrderID,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromProcurementPaymentItem(it procurementPaymentItem) entities.ProcurementPayment {
	return entities.ProcurementPayment{
		ID:                 it.ID,
		PurchaseOrderID:    it.PurchaseOrderID,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
