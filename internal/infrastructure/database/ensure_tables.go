package database

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type tableSpec struct {
	envVar  string
	name    string
	pk      string
	gsi     string
	gsiAttr string
}

// serviceDeskTables describes every table the repositories expect,
// keyed by the same env vars the repositories read.
var serviceDeskTables = []tableSpec{
	{envVar: "USERS_TABLE", name: "users", pk: "id", gsi: "username-index", gsiAttr: "username"},
	{envVar: "TOKENS_TABLE", name: "auth_tokens", pk: "token"},
	{envVar: "SEQUENCES_TABLE", name: "sequences", pk: "name"},
	{envVar: "SERVICE_REQUESTS_TABLE", name: "service_requests", pk: "id", gsi: "request_id-index", gsiAttr: "request_id"},
	{envVar: "CATEGORIES_TABLE", name: "categories", pk: "id", gsi: "name-index", gsiAttr: "name"},
	{envVar: "LOCATIONS_TABLE", name: "locations", pk: "id", gsi: "name-index", gsiAttr: "name"},
	{envVar: "VENDORS_TABLE", name: "vendors", pk: "id", gsi: "name-index", gsiAttr: "name"},
	{envVar: "ASSETS_TABLE", name: "assets", pk: "id", gsi: "asset_tag-index", gsiAttr: "asset_tag"},
	{envVar: "CHANGE_REQUESTS_TABLE", name: "change_requests", pk: "id", gsi: "change_id-index", gsiAttr: "change_id"},
	{envVar: "CONFIGURATION_ITEMS_TABLE", name: "configuration_items", pk: "id", gsi: "ci_number-index", gsiAttr: "ci_number"},
	{envVar: "CATALOG_CATEGORIES_TABLE", name: "catalog_categories", pk: "id", gsi: "name-index", gsiAttr: "name"},
	{envVar: "CATALOG_ITEMS_TABLE", name: "catalog_items", pk: "id", gsi: "item_number-index", gsiAttr: "item_number"},
	{envVar: "MEMOS_TABLE", name: "memos", pk: "id", gsi: "memo_number-index", gsiAttr: "memo_number"},
	{envVar: "PURCHASE_ORDERS_TABLE", name: "purchase_orders", pk: "id", gsi: "po_number-index", gsiAttr: "po_number"},
	{envVar: "PAYMENTS_TABLE", name: "procurement_payments", pk: "id", gsi: "purchase_order_id-index", gsiAttr: "purchase_order_id"},
}

// EnsureTables creates every missing table. Intended for local DynamoDB
// only; gated behind AUTO_CREATE_TABLES so production deployments manage
// tables through infrastructure tooling instead.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client) error {
	if !isTruthy(os.Getenv("AUTO_CREATE_TABLES")) {
		return nil
	}

	for _, spec := range serviceDeskTables {
		name := getenvDefault(spec.envVar, spec.name)
		if err := ensureTable(ctx, ddb, name, spec); err != nil {
			return err
		}
	}
	return nil
}

func ensureTable(ctx context.Context, ddb *dynamodb.Client, name string, spec tableSpec) error {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(spec.pk), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(spec.pk), KeyType: types.KeyTypeHash},
		},
	}
	if spec.gsi != "" {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(spec.gsiAttr),
			AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName: aws.String(spec.gsi),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(spec.gsiAttr), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
	}

	_, err := ddb.CreateTable(ctx, in)
	if err != nil {
		var exists *types.ResourceInUseException
		if errors.As(err, &exists) {
			return nil
		}
		return err
	}
	log.Printf("[database] created table %s", name)
	return nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
