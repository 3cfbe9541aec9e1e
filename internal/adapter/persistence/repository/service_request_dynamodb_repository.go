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
	defaultServiceRequestsTableName = "service_requests"
	serviceRequestsRequestIDIndex   = "request_id-index"
)

type serviceRequestItem struct {
	ID              string `dynamodbav:"id"`
	RequestID       string `dynamodbav:"request_id"`
	Title           string `dynamodbav:"title"`
	Description     string `dynamodbav:"description"`
	Category        string `dynamodbav:"category"`
	Priority        string `dynamodbav:"priority"`
	Status          string `dynamodbav:"status"`
	RequestedByID   string `dynamodbav:"requested_by_id"`
	AssignedToID    string `dynamodbav:"assigned_to_id,omitempty"`
	ResolutionNotes string `dynamodbav:"resolution_notes,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	ResolvedAt      string `dynamodbav:"resolved_at,omitempty"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)

type ServiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
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
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceRequestsRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) List(ctx context.Context, filter interfaces.ServiceRequestFilter) ([]entities.ServiceRequest, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	newScanFilter().
		eq("status", string(filter.Status)).
		eq("category", string(filter.Category)).
		eq("priority", string(filter.Priority)).
		eq("requested_by_id", filter.RequestedByID).
		eq("assigned_to_id", filter.AssignedToID).
		apply(in)

	requests := []entities.ServiceRequest{}
	err := scanAll(ctx, r.ddb, in, func(raw map[string]types.AttributeValue) error {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		requests = append(requests, fromServiceRequestItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ServiceRequestDynamoRepository) Update(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
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
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		ID:              sr.ID,
		RequestID:       sr.RequestID,
		Title:           sr.Title,
		Description:     sr.Description,
		Category:        string(sr.Category),
		Priority:        string(sr.Priority),
		Status:          string(sr.Status),
		RequestedByID:   sr.RequestedByID,
		AssignedToID:    strPtrValue(sr.AssignedToID),
		ResolutionNotes: strPtrValue(sr.ResolutionNotes),
		CreatedAt:       formatTime(sr.CreatedAt),
		UpdatedAt:       formatTime(sr.UpdatedAt),
		ResolvedAt:      formatTimePtr(sr.ResolvedAt),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:              it.ID,
		RequestID:       it.RequestID,
		Title:           it.Title,
		Description:     it.Description,
		Category:        entities.ServiceRequestCategory(it.Category),
		Priority:        entities.Priority(it.Priority),
		Status:          entities.ServiceRequestStatus(it.Status),
		RequestedByID:   it.RequestedByID,
		AssignedToID:    strPtrOrNil(it.AssignedToID),
		ResolutionNotes: strPtrOrNil(it.ResolutionNotes),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		ResolvedAt:      parseTimePtr(it.ResolvedAt),
	}
}
