package repository

import (
	"context"
	"strconv"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCatalogCategoriesTableName = "catalog_categories"
	defaultCatalogItemsTableName      = "catalog_items"
	catalogItemsItemNumberIndex       = "item_number-index"
)

type catalogCategoryItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Description  string `dynamodbav:"description,omitempty"`
	DisplayOrder string `dynamodbav:"display_order"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// CatalogCategoryDynamoRepository persists CatalogCategory entities in
// DynamoDB. Same layout as the lookup tables: PK id, GSI name-index.

type CatalogCategoryDynamoRepository struct {
	store lookupStore
}

var _ interfaces.ICatalogCategoryRepository = (*CatalogCategoryDynamoRepository)(nil)

func NewCatalogCategoryDynamoRepository(ddb *dynamodb.Client) *CatalogCategoryDynamoRepository {
	return &CatalogCategoryDynamoRepository{store: lookupStore{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_CATEGORIES_TABLE", defaultCatalogCategoriesTableName),
	}}
}

func (r *CatalogCategoryDynamoRepository) Create(ctx context.Context, c entities.CatalogCategory) (entities.CatalogCategory, error) {
	if err := r.store.put(ctx, toCatalogCategoryItem(c), "attribute_not_exists(#id)"); err != nil {
		return entities.CatalogCategory{}, err
	}
	return c, nil
}

func (r *CatalogCategoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogCategory, error) {
	var it catalogCategoryItem
	found, err := r.store.getByID(ctx, id, &it)
	if err != nil || !found {
		return entities.CatalogCategory{}, err
	}
	return fromCatalogCategoryItem(it), nil
}

func (r *CatalogCategoryDynamoRepository) GetByName(ctx context.Context, name string) (entities.CatalogCategory, error) {
	var it catalogCategoryItem
	found, err := r.store.getByName(ctx, name, &it)
	if err != nil || !found {
		return entities.CatalogCategory{}, err
	}
	return fromCatalogCategoryItem(it), nil
}

func (r *CatalogCategoryDynamoRepository) List(ctx context.Context) ([]entities.CatalogCategory, error) {
	categories := []entities.CatalogCategory{}
	err := scanAll(ctx, r.store.ddb, &dynamodb.ScanInput{TableName: aws.String(r.store.tableName)}, func(raw map[string]types.AttributeValue) error {
		var it catalogCategoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		categories = append(categories, fromCatalogCategoryItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogCategoryDynamoRepository) Update(ctx context.Context, c entities.CatalogCategory) (entities.CatalogCategory, error) {
	if err := r.store.put(ctx, toCatalogCategoryItem(c), "attribute_exists(#id)"); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.CatalogCategory{}, nil
		}
		return entities.CatalogCategory{}, err
	}
	return c, nil
}

func (r *CatalogCategoryDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.delete(ctx, id)
}

func toCatalogCategoryItem(c entities.CatalogCategory) catalogCategoryItem {
	return catalogCategoryItem{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: strconv.Itoa(c.DisplayOrder),
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromCatalogCategoryItem(it catalogCategoryItem) entities.CatalogCategory {
	order, _ := strconv.Atoi(it.DisplayOrder)
	return entities.CatalogCategory{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		DisplayOrder: order,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

type catalogItemItem struct {
	ID                  string `dynamodbav:"id"`
	ItemNumber          string `dynamodbav:"item_number"`
	Name                string `dynamodbav:"name"`
	ShortDescription    string `dynamodbav:"short_description,omitempty"`
	Description         string `dynamodbav:"description,omitempty"`
	CategoryID          string `dynamodbav:"category_id,omitempty"`
	Status              string `dynamodbav:"status"`
	FulfillmentSLAHours string `dynamodbav:"fulfillment_sla_hours"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// CatalogItemDynamoRepository persists CatalogItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: item_number-index (PK: item_number)

type CatalogItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogItemRepository = (*CatalogItemDynamoRepository)(nil)

func NewCatalogItemDynamoRepository(ddb *dynamodb.Client) *CatalogItemDynamoRepository {
	return &CatalogItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_ITEMS_TABLE", defaultCatalogItemsTableName),
	}
}

func (r *CatalogItemDynamoRepository) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogItemItem(item))
	if err != nil {
		return entities.CatalogItem{}, err
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
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}

	var it catalogItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItemItem(it), nil
}

func (r *CatalogItemDynamoRepository) GetByItemNumber(ctx context.Context, itemNumber string) (entities.CatalogItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(catalogItemsItemNumberIndex),
		KeyConditionExpression: aws.String("item_number = :n"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: itemNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Items) == 0 {
		return entities.CatalogItem{}, nil
	}

	var it catalogItemItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItemItem(it), nil
}

func (r *CatalogItemDynamoRepository) List(ctx context.Context, filter interfaces.CatalogItemFilter) ([]entities.CatalogItem, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	newScanFilter().
		eq("status", string(filter.Status)).
		eq("category_id", filter.CategoryID).
		apply(in)

	items := []entities.CatalogItem{}
	err := scanAll(ctx, r.ddb, in, func(raw map[string]types.AttributeValue) error {
		var it catalogItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, fromCatalogItemItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogItemDynamoRepository) Update(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogItemItem(item))
	if err != nil {
		return entities.CatalogItem{}, err
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
			return entities.CatalogItem{}, nil
		}
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogItemDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toCatalogItemItem(item entities.CatalogItem) catalogItemItem {
	return catalogItemItem{
		ID:                  item.ID,
		ItemNumber:          item.ItemNumber,
		Name:                item.Name,
		ShortDescription:    item.ShortDescription,
		Description:         item.Description,
		CategoryID:          strPtrValue(item.CategoryID),
		Status:              string(item.Status),
		FulfillmentSLAHours: strconv.Itoa(item.FulfillmentSLAHours),
		CreatedAt:           formatTime(item.CreatedAt),
		UpdatedAt:           formatTime(item.UpdatedAt),
	}
}

func fromCatalogItemItem(it catalogItemItem) entities.CatalogItem {
	sla, _ := strconv.Atoi(it.FulfillmentSLAHours)
	return entities.CatalogItem{
		ID:                  it.ID,
		ItemNumber:          it.ItemNumber,
		Name:                it.Name,
		ShortDescription:    it.ShortDescription,
		Description:         it.Description,
		CategoryID:          strPtrOrNil(it.CategoryID),
		Status:              entities.CatalogItemStatus(it.Status),
		FulfillmentSLAHours: sla,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
