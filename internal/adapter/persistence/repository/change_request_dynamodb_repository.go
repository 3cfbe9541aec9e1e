package repository

import (
	"context"
	"errors"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChangeRequestsTableName = "change_requests"
	changeRequestsChangeIDIndex    = "change_id-index"
)

type changeRequestItem struct {
	ID            string `dynamodbav:"id"`
	ChangeID      string `dynamodbav:"change_id"`
	Title         string `dynamodbav:"title"`
	Description   string `dynamodbav:"description"`
	Reason        string `dynamodbav:"reason,omitempty"`
	Impact        string `dynamodbav:"impact"`
	Status        string `dynamodbav:"status"`
	RequestedByID string `dynamodbav:"requested_by_id"`
	ApprovedByID  string `dynamodbav:"approved_by_id,omitempty"`
	ScheduledFor  string `dynamodbav:"scheduled_for,omitempty"`
	CompletedAt   string `dynamodbav:"completed_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ChangeRequestDynamoRepository persists ChangeRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: change_id-index (PK: change_id)

type ChangeRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChangeRequestRepository = (*ChangeRequestDynamoRepository)(nil)

func NewChangeRequestDynamoRepository(ddb *dynamodb.Client) *ChangeRequestDynamoRepository {
	return &ChangeRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHANGE_REQUESTS_TABLE", defaultChangeRequestsTableName),
	}
}

func (r *ChangeRequestDynamoRepository) Create(ctx context.Context, cr entities.ChangeRequest) (entities.ChangeRequest, error) {
	av, err := attributevalue.MarshalMap(toChangeRequestItem(cr))
	if err != nil {
		return entities.ChangeRequest{}, err
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
		return entities.ChangeRequest{}, err
	}
	return cr, nil
}

func (r *ChangeRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChangeRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChangeRequest{}, nil
	}

	var it changeRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChangeRequest{}, err
	}
	return fromChangeRequestItem(it), nil
}

func (r *ChangeRequestDynamoRepository) GetByChangeID(ctx context.Context, changeID string) (entities.ChangeRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(changeRequestsChangeIDIndex),
		KeyConditionExpression: aws.String("change_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: changeID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.ChangeRequest{}, nil
	}

	var it changeRequestItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ChangeRequest{}, err
	}
	return fromChangeRequestItem(it), nil
}

func (r *ChangeRequestDynamoRepository) List(ctx context.Context, filter interfaces.ChangeRequestFilter) ([]entities.ChangeRequest, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	newScanFilter().
		eq("status", string(filter.Status)).
		eq("impact", string(filter.Impact)).
		eq("requested_by_id", filter.RequestedByID).
		apply(in)

	requests := []entities.ChangeRequest{}
	err := scanAll(ctx, r.ddb, in, func(raw map[string]types.AttributeValue) error {
		var it changeRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		requests = append(requests, fromChangeRequestItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ChangeRequestDynamoRepository) Update(ctx context.Context, cr entities.ChangeRequest) (entities.ChangeRequest, error) {
	av, err := attributevalue.MarshalMap(toChangeRequestItem(cr))
	if err != nil {
		return entities.ChangeRequest{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ChangeRequest{}, nil
		}
		return entities.ChangeRequest{}, err
	}
	return cr, nil
}

func (r *ChangeRequestDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toChangeRequestItem(cr entities.ChangeRequest) changeRequestItem {
	return changeRequestItem{
		ID:            cr.ID,
		ChangeID:      cr.ChangeID,
		Title:         cr.Title,
		Description:   cr.Description,
		Reason:        cr.Reason,
		Impact:        string(cr.Impact),
		Status:        string(cr.Status),
		RequestedByID: cr.RequestedByID,
		ApprovedByID:  strPtrValue(cr.ApprovedByID),
		ScheduledFor:  formatTimePtr(cr.ScheduledFor),
		CompletedAt:   formatTimePtr(cr.CompletedAt),
		CreatedAt:     formatTime(cr.CreatedAt),
		UpdatedAt:     formatTime(cr.UpdatedAt),
	}
}

func fromChangeRequestItem(it changeRequestItem) entities.ChangeRequest {
	return entities.ChangeRequest{
		ID:            it.ID,
		ChangeID:      it.ChangeID,
		Title:         it.Title,
		Description:   it.Description,
		Reason:        it.Reason,
		Impact:        entities.ChangeImpact(it.Impact),
		Status:        entities.ChangeRequestStatus(it.Status),
		RequestedByID: it.RequestedByID,
		ApprovedByID:  strPtrOrNil(it.ApprovedByID),
		ScheduledFor:  parseTimePtr(it.ScheduledFor),
		CompletedAt:   parseTimePtr(it.CompletedAt),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
