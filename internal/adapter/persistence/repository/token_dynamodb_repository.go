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

const defaultTokensTableName = "auth_tokens"

type tokenItem struct {
	Token     string `dynamodbav:"token"`
	UserID    string `dynamodbav:"user_id"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt string `dynamodbav:"expires_at"`
}

// TokenDynamoRepository persists opaque bearer tokens in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//
// Expiry is enforced in the usecase, not by a TTL attribute, so an
// expired token still produces a clean 401 instead of a silent miss.

type TokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITokenRepository = (*TokenDynamoRepository)(nil)

func NewTokenDynamoRepository(ddb *dynamodb.Client) *TokenDynamoRepository {
	return &TokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TOKENS_TABLE", defaultTokensTableName),
	}
}

func (r *TokenDynamoRepository) Create(ctx context.Context, t entities.AuthToken) (entities.AuthToken, error) {
	av, err := attributevalue.MarshalMap(tokenItem{
		Token:     t.Token,
		UserID:    t.UserID,
		CreatedAt: formatTime(t.CreatedAt),
		ExpiresAt: formatTime(t.ExpiresAt),
	})
	if err != nil {
		return entities.AuthToken{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	if err != nil {
		return entities.AuthToken{}, err
	}
	return t, nil
}

func (r *TokenDynamoRepository) GetByToken(ctx context.Context, token string) (entities.AuthToken, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AuthToken{}, err
	}
	if len(out.Item) == 0 {
		return entities.AuthToken{}, nil
	}

	var it tokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AuthToken{}, err
	}
	return entities.AuthToken{
		Token:     it.Token,
		UserID:    it.UserID,
		CreatedAt: parseTime(it.CreatedAt),
		ExpiresAt: parseTime(it.ExpiresAt),
	}, nil
}

func (r *TokenDynamoRepository) Delete(ctx context.Context, token string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConditionExpression: aws.String("attribute_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
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
