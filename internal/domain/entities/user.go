package entities

import "time"

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleAgent     UserRole = "agent"
	UserRoleRequester UserRole = "requester"
)

// User is an account that can authenticate against the service desk.
//
// Storage model (DynamoDB):
//   - PK: id
//   - username is enforced unique by a conditional lookup item.
//
// PasswordHash is a bcrypt hash and must never leave the server; response
// DTOs only ever carry UserRef projections.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRef is the nested reference shape embedded in read responses.
// Write payloads carry the bare id instead.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username, FullName: u.FullName}
}

// AuthToken is an opaque bearer token persisted server-side.
// There is no refresh rotation; expired tokens are simply rejected.
type AuthToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (t AuthToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}
