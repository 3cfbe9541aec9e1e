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

// The three lookup repositories (categories, locations, vendors) share
// one table layout:
//   - PK: id (string)
//   - GSI: name-index (PK: name)
//
// They are kept separate types so wiring stays explicit at the routes
// layer, but the Dynamo plumbing is shared through lookupStore.

const (
	defaultCategoriesTableName = "categories"
	defaultLocationsTableName  = "locations"
	defaultVendorsTableName    = "vendors"
	lookupNameIndex            = "name-index"
)

type lookupStore struct {
	ddb       *dynamodb.Client
	tableName string
}

func (s lookupStore) put(ctx context.Context, item interface{}, condition string) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (s lookupStore) getByID(ctx context.Context, id string, out interface{}) (bool, error) {
	res, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

func (s lookupStore) getByName(ctx context.Context, name string, out interface{}) (bool, error) {
	res, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(lookupNameIndex),
		KeyConditionExpression: aws.String("#name = :n"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: name},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	if len(res.Items) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Items[0], out)
}

func (s lookupStore) delete(ctx context.Context, id string) (bool, error) {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
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

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

type categoryItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type CategoryDynamoRepository struct {
	store lookupStore
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb *dynamodb.Client) *CategoryDynamoRepository {
	return &CategoryDynamoRepository{store: lookupStore{
		ddb:       ddb,
		tableName: getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
	}}
}

func (r *CategoryDynamoRepository) Create(ctx context.Context, c entities.Category) (entities.Category, error) {
	if err := r.store.put(ctx, toCategoryItem(c), "attribute_not_exists(#id)"); err != nil {
		return entities.Category{}, err
	}
	return c, nil
}

func (r *CategoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Category, error) {
	var it categoryItem
	found, err := r.store.getByID(ctx, id, &it)
	if err != nil || !found {
		return entities.Category{}, err
	}
	return fromCategoryItem(it), nil
}

func (r *CategoryDynamoRepository) GetByName(ctx context.Context, name string) (entities.Category, error) {
	var it categoryItem
	found, err := r.store.getByName(ctx, name, &it)
	if err != nil || !found {
		return entities.Category{}, err
	}
	return fromCategoryItem(it), nil
}

func (r *CategoryDynamoRepository) List(ctx context.Context) ([]entities.Category, error) {
	categories := []entities.Category{}
	err := scanAll(ctx, r.store.ddb, &dynamodb.ScanInput{TableName: aws.String(r.store.tableName)}, func(raw map[string]types.AttributeValue) error {
		var it categoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		categories = append(categories, fromCategoryItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryDynamoRepository) Update(ctx context.Context, c entities.Category) (entities.Category, error) {
	if err := r.store.put(ctx, toCategoryItem(c), "attribute_exists(#id)"); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Category{}, nil
		}
		return entities.Category{}, err
	}
	return c, nil
}

func (r *CategoryDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.delete(ctx, id)
}

func toCategoryItem(c entities.Category) categoryItem {
	return categoryItem{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

func fromCategoryItem(it categoryItem) entities.Category {
	return entities.Category{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

type locationItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type LocationDynamoRepository struct {
	store lookupStore
}

var _ interfaces.ILocationRepository = (*LocationDynamoRepository)(nil)

func NewLocationDynamoRepository(ddb *dynamodb.Client) *LocationDynamoRepository {
	return &LocationDynamoRepository{store: lookupStore{
		ddb:       ddb,
		tableName: getenvDefault("LOCATIONS_TABLE", defaultLocationsTableName),
	}}
}

func (r *LocationDynamoRepository) Create(ctx context.Context, l entities.Location) (entities.Location, error) {
	if err := r.store.put(ctx, toLocationItem(l), "attribute_not_exists(#id)"); err != nil {
		return entities.Location{}, err
	}
	return l, nil
}

func (r *LocationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Location, error) {
	var it locationItem
	found, err := r.store.getByID(ctx, id, &it)
	if err != nil || !found {
		return entities.Location{}, err
	}
	return fromLocationItem(it), nil
}

func (r *LocationDynamoRepository) GetByName(ctx context.Context, name string) (entities.Location, error) {
	var it locationItem
	found, err := r.store.getByName(ctx, name, &it)
	if err != nil || !found {
		return entities.Location{}, err
	}
	return fromLocationItem(it), nil
}

func (r *LocationDynamoRepository) List(ctx context.Context) ([]entities.Location, error) {
	locations := []entities.Location{}
	err := scanAll(ctx, r.store.ddb, &dynamodb.ScanInput{TableName: aws.String(r.store.tableName)}, func(raw map[string]types.AttributeValue) error {
		var it locationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		locations = append(locations, fromLocationItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationDynamoRepository) Update(ctx context.Context, l entities.Location) (entities.Location, error) {
	if err := r.store.put(ctx, toLocationItem(l), "attribute_exists(#id)"); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Location{}, nil
		}
		return entities.Location{}, err
	}
	return l, nil
}

func (r *LocationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.delete(ctx, id)
}

func toLocationItem(l entities.Location) locationItem {
	return locationItem{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		CreatedAt: formatTime(l.CreatedAt),
		UpdatedAt: formatTime(l.UpdatedAt),
	}
}

func fromLocationItem(it locationItem) entities.Location {
	return entities.Location{
		ID:        it.ID,
		Name:      it.Name,
		Address:   it.Address,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

type vendorItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type VendorDynamoRepository struct {
	store lookupStore
}

var _ interfaces.IVendorRepository = (*VendorDynamoRepository)(nil)

func NewVendorDynamoRepository(ddb *dynamodb.Client) *VendorDynamoRepository {
	return &VendorDynamoRepository{store: lookupStore{
		ddb:       ddb,
		tableName: getenvDefault("VENDORS_TABLE", defaultVendorsTableName),
	}}
}

func (r *VendorDynamoRepository) Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error) {
	if err := r.store.put(ctx, toVendorItem(v), "attribute_not_exists(#id)"); err != nil {
		return entities.Vendor{}, err
	}
	return v, nil
}

func (r *VendorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vendor, error) {
	var it vendorItem
	found, err := r.store.getByID(ctx, id, &it)
	if err != nil || !found {
		return entities.Vendor{}, err
	}
	return fromVendorItem(it), nil
}

func (r *VendorDynamoRepository) GetByName(ctx context.Context, name string) (entities.Vendor, error) {
	var it vendorItem
	found, err := r.store.getByName(ctx, name, &it)
	if err != nil || !found {
		return entities.Vendor{}, err
	}
	return fromVendorItem(it), nil
}

func (r *VendorDynamoRepository) List(ctx context.Context) ([]entities.Vendor, error) {
	vendors := []entities.Vendor{}
	err := scanAll(ctx, r.store.ddb, &dynamodb.ScanInput{TableName: aws.String(r.store.tableName)}, func(raw map[string]types.AttributeValue) error {
		var it vendorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		vendors = append(vendors, fromVendorItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *VendorDynamoRepository) Update(ctx context.Context, v entities.Vendor) (entities.Vendor, error) {
	if err := r.store.put(ctx, toVendorItem(v), "attribute_exists(#id)"); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Vendor{}, nil
		}
		return entities.Vendor{}, err
	}
	return v, nil
}

func (r *VendorDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.delete(ctx, id)
}

func toVendorItem(v entities.Vendor) vendorItem {
	return vendorItem{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func fromVendorItem(it vendorItem) entities.Vendor {
	return entities.Vendor{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
