package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"servicedesk/internal/domain/entities"
	mock_interfaces "servicedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return string(hash)
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("empty credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAuthUseCase(mock_interfaces.NewMockIUserRepository(ctrl), mock_interfaces.NewMockITokenRepository(ctrl))

		_, _, err := uc.Login(ctx, "  ", "pw")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, mock_interfaces.NewMockITokenRepository(ctrl))

		users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entities.User{}, nil)

		_, _, err := uc.Login(ctx, "ghost", "whatever")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, mock_interfaces.NewMockITokenRepository(ctrl))

		users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(entities.User{
			ID: "u1", Username: "alice", PasswordHash: hashPassword(t, "right"),
		}, nil)

		_, _, err := uc.Login(ctx, "alice", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success issues a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenRepository(ctrl)
		uc := NewAuthUseCase(users, tokens)

		users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(entities.User{
			ID: "u1", Username: "alice", PasswordHash: hashPassword(t, "s3cret-pw"),
		}, nil)
		tokens.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tok entities.AuthToken) (entities.AuthToken, error) {
				if tok.Token == "" {
					t.Fatalf("expected generated token")
				}
				if tok.UserID != "u1" {
					t.Fatalf("expected token bound to u1, got %s", tok.UserID)
				}
				if !tok.ExpiresAt.After(tok.CreatedAt) {
					t.Fatalf("expected expiry after creation")
				}
				return tok, nil
			})

		token, user, err := uc.Login(ctx, "alice", "s3cret-pw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "alice" || token.UserID != "u1" {
			t.Fatalf("unexpected result %+v / %+v", token, user)
		}
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenRepository(ctrl)
		uc := NewAuthUseCase(mock_interfaces.NewMockIUserRepository(ctrl), tokens)

		tokens.EXPECT().GetByToken(gomock.Any(), "nope").Return(entities.AuthToken{}, nil)

		_, err := uc.Authenticate(ctx, "nope")
		if !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenRepository(ctrl)
		uc := NewAuthUseCase(mock_interfaces.NewMockIUserRepository(ctrl), tokens)

		tokens.EXPECT().GetByToken(gomock.Any(), "old").Return(entities.AuthToken{
			Token: "old", UserID: "u1", ExpiresAt: time.Now().UTC().Add(-time.Hour),
		}, nil)

		_, err := uc.Authenticate(ctx, "old")
		if !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("valid token resolves user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenRepository(ctrl)
		uc := NewAuthUseCase(users, tokens)

		tokens.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.AuthToken{
			Token: "tok", UserID: "u1", ExpiresAt: time.Now().UTC().Add(time.Hour),
		}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Username: "alice"}, nil)

		user, err := uc.Authenticate(ctx, "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "alice" {
			t.Fatalf("expected alice, got %s", user.Username)
		}
	})
}

func TestAuthUseCase_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAuthUseCase(mock_interfaces.NewMockIUserRepository(ctrl), mock_interfaces.NewMockITokenRepository(ctrl))

		_, err := uc.CreateUser(ctx, CreateUserInput{Username: "bob", Password: "short"})
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, mock_interfaces.NewMockITokenRepository(ctrl))

		users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(entities.User{ID: "u1", Username: "alice"}, nil)

		_, err := uc.CreateUser(ctx, CreateUserInput{Username: "alice", Password: "long-enough"})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("defaults to requester role and hashes the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, mock_interfaces.NewMockITokenRepository(ctrl))

		users.EXPECT().GetByUsername(gomock.Any(), "bob").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.UserRoleRequester {
					t.Fatalf("expected requester default, got %s", u.Role)
				}
				if u.PasswordHash == "hunter2-hunter2" {
					t.Fatalf("password stored in the clear")
				}
				if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2-hunter2")) != nil {
					t.Fatalf("stored hash does not match the password")
				}
				return u, nil
			})

		user, err := uc.CreateUser(ctx, CreateUserInput{Username: "bob", Password: "hunter2-hunter2", FullName: " Bob B. "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.FullName != "Bob B." {
			t.Fatalf("expected trimmed full name, got %q", user.FullName)
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tokens := mock_interfaces.NewMockITokenRepository(ctrl)
	uc := NewAuthUseCase(mock_interfaces.NewMockIUserRepository(ctrl), tokens)

	tokens.EXPECT().Delete(gomock.Any(), "tok").Return(true, nil)

	if err := uc.Logout(ctx, "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Logout(ctx, "  "); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for blank token, got %v", err)
	}
}
