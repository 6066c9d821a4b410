package gateway

import (
	"context"

	"github.com/bgshelf/bgshelf/internal/model"
)

// ListPlayers fetches all known players
func (c *Client) ListPlayers(ctx context.Context) ([]model.Player, error) {
	var players []model.Player
	if err := c.Get(ctx, "/api/players", &players); err != nil {
		return nil, err
	}
	return players, nil
}

// CreatePlayer creates a new player record with the given name
func (c *Client) CreatePlayer(ctx context.Context, name string) (*model.Player, error) {
	req := map[string]string{"name": name}
	var player model.Player
	if err := c.Post(ctx, "/api/players", req, &player); err != nil {
		return nil, err
	}
	return &player, nil
}
