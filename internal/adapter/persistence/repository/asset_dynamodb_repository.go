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
	defaultAssetsTableName = "assets"
	assetsTagIndex         = "asset_tag-index"
)

type assetItem struct {
	ID           string `dynamodbav:"id"`
	AssetTag     string `dynamodbav:"asset_tag"`
	Name         string `dynamodbav:"name"`
	SerialNumber string `dynamodbav:"serial_number,omitempty"`
	Status       string `dynamodbav:"status"`
	CategoryID   string `dynamodbav:"category_id,omitempty"`
	LocationID   string `dynamodbav:"location_id,omitempty"`
	VendorID     string `dynamodbav:"vendor_id,omitempty"`
	AssignedToID string `dynamodbav:"assigned_to_id,omitempty"`
	PurchaseDate string `dynamodbav:"purchase_date,omitempty"`
	PurchaseCost string `dynamodbav:"purchase_cost"`
	Notes        string `dynamodbav:"notes,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// AssetDynamoRepository persists Asset entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: asset_tag-index (PK: asset_tag)

type AssetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssetRepository = (*AssetDynamoRepository)(nil)

func NewAssetDynamoRepository(ddb *dynamodb.Client) *AssetDynamoRepository {
	return &AssetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSETS_TABLE", defaultAssetsTableName),
	}
}

func (r *AssetDynamoRepository) Create(ctx context.Context, a entities.Asset) (entities.Asset, error) {
	av, err := attributevalue.MarshalMap(toAssetItem(a))
	if err != nil {
		return entities.Asset{}, err
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
		return entities.Asset{}, err
	}
	return a, nil
}

func (r *AssetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Asset, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Asset{}, err
	}
	if len(out.Item) == 0 {
		return entities.Asset{}, nil
	}

	var it assetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Asset{}, err
	}
	return fromAssetItem(it), nil
}

func (r *AssetDynamoRepository) GetByTag(ctx context.Context, tag string) (entities.Asset, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(assetsTagIndex),
		KeyConditionExpression: aws.String("asset_tag = :tag"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tag": &types.AttributeValueMemberS{Value: tag},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Asset{}, err
	}
	if len(out.Items) == 0 {
		return entities.Asset{}, nil
	}

	var it assetItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Asset{}, err
	}
	return fromAssetItem(it), nil
}

func (r *AssetDynamoRepository) List(ctx context.Context, filter interfaces.AssetFilter) ([]entities.Asset, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	newScanFilter().
		eq("status", string(filter.Status)).
		eq("category_id", filter.CategoryID).
		eq("location_id", filter.LocationID).
		eq("vendor_id", filter.VendorID).
		eq("assigned_to_id", filter.AssignedToID).
		apply(in)

	assets := []entities.Asset{}
	err := scanAll(ctx, r.ddb, in, func(raw map[string]types.AttributeValue) error {
		var it assetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		assets = append(assets, fromAssetItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *AssetDynamoRepository) Update(ctx context.Context, a entities.Asset) (entities.Asset, error) {
	av, err := attributevalue.MarshalMap(toAssetItem(a))
	if err != nil {
		return entities.Asset{}, err
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
			return entities.Asset{}, nil
		}
		return entities.Asset{}, err
	}
	return a, nil
}

func (r *AssetDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toAssetItem(a entities.Asset) assetItem {
	return assetItem{
		ID:           a.ID,
		AssetTag:     a.AssetTag,
		Name:         a.Name,
		SerialNumber: a.SerialNumber,
		Status:       string(a.Status),
		CategoryID:   strPtrValue(a.CategoryID),
		LocationID:   strPtrValue(a.LocationID),
		VendorID:     strPtrValue(a.VendorID),
		AssignedToID: strPtrValue(a.AssignedToID),
		PurchaseDate: formatTimePtr(a.PurchaseDate),
		PurchaseCost: floatToString(a.PurchaseCost),
		Notes:        a.Notes,
		CreatedAt:    formatTime(a.CreatedAt),
		UpdatedAt:    formatTime(a.UpdatedAt),
	}
}

func fromAssetItem(it assetItem) entities.Asset {
	return entities.Asset{
		ID:           it.ID,
		AssetTag:     it.AssetTag,
		Name:         it.Name,
		SerialNumber: it.SerialNumber,
		Status:       entities.AssetStatus(it.Status),
		CategoryID:   strPtrOrNil(it.CategoryID),
		LocationID:   strPtrOrNil(it.LocationID),
		VendorID:     strPtrOrNil(it.VendorID),
		AssignedToID: strPtrOrNil(it.AssignedToID),
		PurchaseDate: parseTimePtr(it.PurchaseDate),
		PurchaseCost: parseFloat(it.PurchaseCost),
		Notes:        it.Notes,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
