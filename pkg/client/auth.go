package client

import (
	"context"
	"net/http"
	"time"
)

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login exchanges credentials for a bearer token and installs it on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &result); err != nil {
		return LoginResult{}, err
	}
	c.SetToken(result.Token)
	return result, nil
}

// Logout invalidates the current token server-side and clears it from
// the client.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}
