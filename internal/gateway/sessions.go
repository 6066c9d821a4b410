package gateway

import (
	"context"
	"fmt"

	"github.com/bgshelf/bgshelf/internal/model"
)

// ListSessions fetches all play sessions recorded for a game
func (c *Client) ListSessions(ctx context.Context, gameID model.GameID) ([]model.Session, error) {
	var sessions []model.Session
	if err := c.Get(ctx, fmt.Sprintf("/api/games/%s/sessions", gameID), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateSession records a new play session for a game
func (c *Client) CreateSession(ctx context.Context, gameID model.GameID, input model.SessionInput) (*model.Session, error) {
	var session model.Session
	if err := c.Post(ctx, fmt.Sprintf("/api/games/%s/sessions/", gameID), input, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSession updates an existing play session
func (c *Client) UpdateSession(ctx context.Context, id model.SessionID, input model.SessionInput) (*model.Session, error) {
	var session model.Session
	if err := c.Put(ctx, fmt.Sprintf("/api/sessions/%s", id), input, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession deletes a play session
func (c *Client) DeleteSession(ctx context.Context, id model.SessionID) error {
	return c.Delete(ctx, fmt.Sprintf("/api/sessions/%s", id))
}
