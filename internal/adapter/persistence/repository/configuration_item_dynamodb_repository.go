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
	defaultConfigItemsTableName = "configuration_items"
	configItemsCINumberIndex    = "ci_number-index"
)

type configurationItemItem struct {
	ID          string `dynamodbav:"id"`
	CINumber    string `dynamodbav:"ci_number"`
	Name        string `dynamodbav:"name"`
	Type        string `dynamodbav:"type"`
	Status      string `dynamodbav:"status"`
	Environment string `dynamodbav:"environment"`
	Description string `dynamodbav:"description,omitempty"`
	AssetID     string `dynamodbav:"asset_id,omitempty"`
	OwnerID     string `dynamodbav:"owner_id,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ConfigurationItemDynamoRepository persists ConfigurationItem entities
// in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: ci_number-index (PK: ci_number)

type ConfigurationItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConfigurationItemRepository = (*ConfigurationItemDynamoRepository)(nil)

func NewConfigurationItemDynamoRepository(ddb *dynamodb.Client) *ConfigurationItemDynamoRepository {
	return &ConfigurationItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONFIGURATION_ITEMS_TABLE", defaultConfigItemsTableName),
	}
}

func (r *ConfigurationItemDynamoRepository) Create(ctx context.Context, ci entities.ConfigurationItem) (entities.ConfigurationItem, error) {
	av, err := attributevalue.MarshalMap(toConfigurationItemItem(ci))
	if err != nil {
		return entities.ConfigurationItem{}, err
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
		return entities.ConfigurationItem{}, err
	}
	return ci, nil
}

func (r *ConfigurationItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConfigurationItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConfigurationItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConfigurationItem{}, nil
	}

	var it configurationItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConfigurationItem{}, err
	}
	return fromConfigurationItemItem(it), nil
}

func (r *ConfigurationItemDynamoRepository) GetByCINumber(ctx context.Context, ciNumber string) (entities.ConfigurationItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(configItemsCINumberIndex),
		KeyConditionExpression: aws.String("ci_number = :cn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cn": &types.AttributeValueMemberS{Value: ciNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ConfigurationItem{}, err
	}
	if len(out.Items) == 0 {
		return entities.ConfigurationItem{}, nil
	}

	var it configurationItemItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ConfigurationItem{}, err
	}
	return fromConfigurationItemItem(it), nil
}

func (r *ConfigurationItemDynamoRepository) List(ctx context.Context, filter interfaces.ConfigurationItemFilter) ([]entities.ConfigurationItem, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	newScanFilter().
		eq("type", string(filter.Type)).
		eq("status", string(filter.Status)).
		eq("environment", string(filter.Environment)).
		eq("owner_id", filter.OwnerID).
		apply(in)

	items := []entities.ConfigurationItem{}
	err := scanAll(ctx, r.ddb, in, func(raw map[string]types.AttributeValue) error {
		var it configurationItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, fromConfigurationItemItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ConfigurationItemDynamoRepository) Update(ctx context.Context, ci entities.ConfigurationItem) (entities.ConfigurationItem, error) {
	av, err := attributevalue.MarshalMap(toConfigurationItemItem(ci))
	if err != nil {
		return entities.ConfigurationItem{}, err
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
			return entities.ConfigurationItem{}, nil
		}
		return entities.ConfigurationItem{}, err
	}
	return ci, nil
}

func (r *ConfigurationItemDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toConfigurationItemItem(ci entities.ConfigurationItem) configurationItemItem {
	return configurationItemItem{
		ID:          ci.ID,
		CINumber:    ci.CINumber,
		Name:        ci.Name,
		Type:        string(ci.Type),
		Status:      string(ci.Status),
		Environment: string(ci.Environment),
		Description: ci.Description,
		AssetID:     strPtrValue(ci.AssetID),
		OwnerID:     strPtrValue(ci.OwnerID),
		CreatedAt:   formatTime(ci.CreatedAt),
		UpdatedAt:   formatTime(ci.UpdatedAt),
	}
}

func fromConfigurationItemItem(it configurationItemItem) entities.ConfigurationItem {
	return entities.ConfigurationItem{
		ID:          it.ID,
		CINumber:    it.CINumber,
		Name:        it.Name,
		Type:        entities.CIType(it.Type),
		Status:      entities.CIStatus(it.Status),
		Environment: entities.CIEnvironment(it.Environment),
		Description: it.Description,
		AssetID:     strPtrOrNil(it.AssetID),
		OwnerID:     strPtrOrNil(it.OwnerID),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
