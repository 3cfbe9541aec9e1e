package interfaces

import (
	"context"

	"servicedesk/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// Repositories follow the zero-value convention: a lookup that finds
// nothing returns an empty entity and a nil error; usecases translate
// the empty ID into their own not-found sentinel.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}

// ITokenRepository persists opaque bearer tokens.
type ITokenRepository interface {
	Create(ctx context.Context, t entities.AuthToken) (entities.AuthToken, error)
	GetByToken(ctx context.Context, token string) (entities.AuthToken, error)
	Delete(ctx context.Context, token string) (bool, error)
}
