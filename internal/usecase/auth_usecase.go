package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid or expired")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidUserInput   = errors.New("invalid user input")
	ErrUserNotFound       = errors.New("user not found")
)

const defaultTokenTTLHours = 24

type CreateUserInput struct {
	Username string
	Password string
	FullName string
	Email    string
	Role     entities.UserRole
}

// IAuthUseCase covers login, token validation and user administration.
//
// Tokens are opaque uuids persisted server-side with a TTL; there is no
// refresh rotation, an expired token is simply rejected.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (entities.AuthToken, entities.User, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (entities.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (entities.User, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	EnsureSeedAdmin(ctx context.Context) error
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenRepository) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.AuthToken, entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.AuthToken{}, entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return entities.AuthToken{}, entities.User{}, err
	}
	if user.ID == "" {
		return entities.AuthToken{}, entities.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entities.AuthToken{}, entities.User{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token := entities.AuthToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(tokenTTL()),
	}
	created, err := u.tokens.Create(ctx, token)
	if err != nil {
		return entities.AuthToken{}, entities.User{}, err
	}
	log.Printf("[auth][usecase] login success user=%s", user.Username)
	return created, user, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrTokenInvalid
	}
	_, err := u.tokens.Delete(ctx, token)
	return err
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, ErrTokenInvalid
	}

	t, err := u.tokens.GetByToken(ctx, token)
	if err != nil {
		return entities.User{}, err
	}
	if t.Token == "" || t.Expired(time.Now().UTC()) {
		return entities.User{}, ErrTokenInvalid
	}

	user, err := u.users.GetByID(ctx, t.UserID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrTokenInvalid
	}
	return user, nil
}

func (u *AuthUseCase) CreateUser(ctx context.Context, input CreateUserInput) (entities.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || len(input.Password) < 8 {
		return entities.User{}, ErrInvalidUserInput
	}
	switch input.Role {
	case entities.UserRoleAdmin, entities.UserRoleAgent, entities.UserRoleRequester:
	case "":
		input.Role = entities.UserRoleRequester
	default:
		return entities.User{}, ErrInvalidUserInput
	}

	existing, err := u.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		FullName:     strings.TrimSpace(input.FullName),
		Email:        strings.TrimSpace(input.Email),
		Role:         input.Role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	return u.users.Create(ctx, user)
}

func (u *AuthUseCase) GetUser(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *AuthUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	return u.users.List(ctx)
}

// EnsureSeedAdmin creates the bootstrap admin account from ADMIN_USERNAME /
// ADMIN_PASSWORD when no users exist yet. A no-op otherwise.
func (u *AuthUseCase) EnsureSeedAdmin(ctx context.Context) error {
	username := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	existing, err := u.users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	_, err = u.CreateUser(ctx, CreateUserInput{
		Username: username,
		Password: password,
		FullName: "Administrator",
		Role:     entities.UserRoleAdmin,
	})
	if err != nil {
		return err
	}
	log.Printf("[auth][usecase] seeded admin user=%s", username)
	return nil
}

func tokenTTL() time.Duration {
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultTokenTTLHours * time.Hour
}
