package repository

import (
	"context"
	"encoding/json"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMemosTableName          = "memos"
	defaultPurchaseOrdersTableName = "purchase_orders"
	memosMemoNumberIndex           = "memo_number-index"
	purchaseOrdersPONumberIndex    = "po_number-index"
)

type memoItem struct {
	ID            string `dynamodbav:"id"`
	MemoNumber    string `dynamodbav:"memo_number"`
	Subject       string `dynamodbav:"subject"`
	Justification string `dynamodbav:"justification"`
	EstimatedCost string `dynamodbav:"estimated_cost"`
	Status        string `dynamodbav:"status"`
	RequestedByID string `dynamodbav:"requested_by_id"`
	ApprovedByID  string `dynamodbav:"approved_by_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// MemoDynamoRepository persists InternalOfficeMemo entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: memo_number-index (PK: memo_number)

type MemoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMemoRepository = (*MemoDynamoRepository)(nil)

func NewMemoDynamoRepository(ddb *dynamodb.Client) *MemoDynamoRepository {
	return &MemoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEMOS_TABLE", defaultMemosTableName),
	}
}

func (r *MemoDynamoRepository) Create(ctx context.Context, m entities.InternalOfficeMemo) (entities.InternalOfficeMemo, error) {
	av, err := attributevalue.MarshalMap(toMemoItem(m))
	if err != nil {
		return entities.InternalOfficeMemo{}, err
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
		return entities.InternalOfficeMemo{}, err
	}
	return m, nil
}

func (r *MemoDynamoRepository) GetByID(ctx context.Context, id string) (entities.InternalOfficeMemo, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InternalOfficeMemo{}, err
	}
	if len(out.Item) == 0 {
		return entities.InternalOfficeMemo{}, nil
	}

	var it memoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InternalOfficeMemo{}, err
	}
	return fromMemoItem(it), nil
}

func (r *MemoDynamoRepository) GetByMemoNumber(ctx context.Context, memoNumber string) (entities.InternalOfficeMemo, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(memosMemoNumberIndex),
		KeyConditionExpression: aws.String("memo_number = :mn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mn": &types.AttributeValueMemberS{Value: memoNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.InternalOfficeMemo{}, err
	}
	if len(out.Items) == 0 {
		return entities.InternalOfficeMemo{}, nil
	}

	var it memoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.InternalOfficeMemo{}, err
	}
	return fromMemoItem(it), nil
}

func (r *MemoDynamoRepository) List(ctx context.Context, filter interfaces.MemoFilter) ([]entities.InternalOfficeMemo, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	newScanFilter().
		eq("status", string(filter.Status)).
		eq("requested_by_id", filter.RequestedByID).
		apply(in)

	memos := []entities.InternalOfficeMemo{}
	err := scanAll(ctx, r.ddb, in, func(raw map[string]types.AttributeValue) error {
		var it memoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		memos = append(memos, fromMemoItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return memos, nil
}

func (r *MemoDynamoRepository) Update(ctx context.Context, m entities.InternalOfficeMemo) (entities.InternalOfficeMemo, error) {
	av, err := attributevalue.MarshalMap(toMemoItem(m))
	if err != nil {
		return entities.InternalOfficeMemo{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.InternalOfficeMemo{}, nil
		}
		return entities.InternalOfficeMemo{}, err
	}
	return m, nil
}

func (r *MemoDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toMemoItem(m entities.InternalOfficeMemo) memoItem {
	return memoItem{
		ID:            m.ID,
		MemoNumber:    m.MemoNumber,
		Subject:       m.Subject,
		Justification: m.Justification,
		EstimatedCost: floatToString(m.EstimatedCost),
		Status:        string(m.Status),
		RequestedByID: m.RequestedByID,
		ApprovedByID:  strPtrValue(m.ApprovedByID),
		CreatedAt:     formatTime(m.CreatedAt),
		UpdatedAt:     formatTime(m.UpdatedAt),
	}
}

func fromMemoItem(it memoItem) entities.InternalOfficeMemo {
	return entities.InternalOfficeMemo{
		ID:            it.ID,
		MemoNumber:    it.MemoNumber,
		Subject:       it.Subject,
		Justification: it.Justification,
		EstimatedCost: parseFloat(it.EstimatedCost),
		Status:        entities.MemoStatus(it.Status),
		RequestedByID: it.RequestedByID,
		ApprovedByID:  strPtrOrNil(it.ApprovedByID),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

type purchaseOrderItem struct {
	ID            string `dynamodbav:"id"`
	PONumber      string `dynamodbav:"po_number"`
	VendorID      string `dynamodbav:"vendor_id"`
	MemoID        string `dynamodbav:"memo_id,omitempty"`
	Lines         string `dynamodbav:"lines"`
	TotalAmount   string `dynamodbav:"total_amount"`
	Status        string `dynamodbav:"status"`
	RequestedByID string `dynamodbav:"requested_by_id"`
	ApprovedByID  string `dynamodbav:"approved_by_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PurchaseOrderDynamoRepository persists PurchaseOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: po_number-index (PK: po_number)
//
// Lines are stored as a JSON string attribute; no query ever needs to
// filter on an individual line.

type PurchaseOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderDynamoRepository)(nil)

func NewPurchaseOrderDynamoRepository(ddb *dynamodb.Client) *PurchaseOrderDynamoRepository {
	return &PurchaseOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PURCHASE_ORDERS_TABLE", defaultPurchaseOrdersTableName),
	}
}

func (r *PurchaseOrderDynamoRepository) Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	it, err := toPurchaseOrderItem(po)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PurchaseOrder{}, err
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
		return entities.PurchaseOrder{}, err
	}
	return po, nil
}

func (r *PurchaseOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PurchaseOrder{}, nil
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it)
}

func (r *PurchaseOrderDynamoRepository) GetByPONumber(ctx context.Context, poNumber string) (entities.PurchaseOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(purchaseOrdersPONumberIndex),
		KeyConditionExpression: aws.String("po_number = :pn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pn": &types.AttributeValueMemberS{Value: poNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.PurchaseOrder{}, nil
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it)
}

func (r *PurchaseOrderDynamoRepository) List(ctx context.Context, filter interfaces.PurchaseOrderFilter) ([]entities.PurchaseOrder, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	newScanFilter().
		eq("status", string(filter.Status)).
		eq("vendor_id", filter.VendorID).
		eq("requested_by_id", filter.RequestedByID).
		apply(in)

	orders := []entities.PurchaseOrder{}
	err := scanAll(ctx, r.ddb, in, func(raw map[string]types.AttributeValue) error {
		var it purchaseOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		po, err := fromPurchaseOrderItem(it)
		if err != nil {
			return err
		}
		orders = append(orders, po)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PurchaseOrderDynamoRepository) Update(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	it, err := toPurchaseOrderItem(po)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PurchaseOrder{}, nil
		}
		return entities.PurchaseOrder{}, err
	}
	return po, nil
}

func (r *PurchaseOrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPurchaseOrderItem(po entities.PurchaseOrder) (purchaseOrderItem, error) {
	lines, err := json.Marshal(po.Lines)
	if err != nil {
		return purchaseOrderItem{}, err
	}
	return purchaseOrderItem{
		ID:            po.ID,
		PONumber:      po.PONumber,
		VendorID:      po.VendorID,
		MemoID:        strPtrValue(po.MemoID),
		Lines:         string(lines),
		TotalAmount:   floatToString(po.TotalAmount),
		Status:        string(po.Status),
		RequestedByID: po.RequestedByID,
		ApprovedByID:  strPtrValue(po.ApprovedByID),
		CreatedAt:     formatTime(po.CreatedAt),
		UpdatedAt:     formatTime(po.UpdatedAt),
	}, nil
}

func fromPurchaseOrderItem(it purchaseOrderItem) (entities.PurchaseOrder, error) {
	var lines []entities.PurchaseOrderLine
	if it.Lines != "" {
		if err := json.Unmarshal([]byte(it.Lines), &lines); err != nil {
			return entities.PurchaseOrder{}, err
		}
	}
	return entities.PurchaseOrder{
		ID:            it.ID,
		PONumber:      it.PONumber,
		VendorID:      it.VendorID,
		MemoID:        strPtrOrNil(it.MemoID),
		Lines:         lines,
		TotalAmount:   parseFloat(it.TotalAmount),
		Status:        entities.PurchaseOrderStatus(it.Status),
		RequestedByID: it.RequestedByID,
		ApprovedByID:  strPtrOrNil(it.ApprovedByID),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}, nil
}
