package repository

import (
	"context"
	"errors"
	"strconv"

	"servicedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "sequences"

// SequenceDynamoRepository issues monotonically increasing record numbers
// through an atomic ADD. Concurrent callers never receive the same value.
//
// Table requirements:
//   - PK: name (string)
type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errSequenceAttribute
	}
	return strconv.ParseInt(attr.Value, 10, 64)
}

var errSequenceAttribute = errors.New("sequence value attribute missing or not numeric")
