package gateway

import (
	"context"
	"encoding/json"

	"github.com/bgshelf/bgshelf/internal/model"
)

// Login submits credentials and returns the raw response body.
// Backends vary in where they put the token and user data, so the
// auth service normalises the raw payload rather than this client.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Post(ctx, "/api/login", creds, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Signup registers a new account and returns the raw response body
func (c *Client) Signup(ctx context.Context, creds model.SignupCredentials) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Post(ctx, "/api/signup", creds, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Me fetches the authenticated user. Requires a token to be set.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.Get(ctx, "/api/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
