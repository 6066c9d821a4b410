package gateway

import (
	"context"
	"fmt"

	"github.com/bgshelf/bgshelf/internal/model"
)

// ListGames fetches the full game collection
func (c *Client) ListGames(ctx context.Context) ([]model.Game, error) {
	var games []model.Game
	if err := c.Get(ctx, "/api/games", &games); err != nil {
		return nil, err
	}
	return games, nil
}

// GetGame fetches a single game by ID
func (c *Client) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var game model.Game
	if err := c.Get(ctx, fmt.Sprintf("/api/games/%s", id), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// CreateGame adds a new game to the collection
func (c *Client) CreateGame(ctx context.Context, input model.GameInput) (*model.Game, error) {
	var game model.Game
	if err := c.Post(ctx, "/api/games/", input, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// UpdateGame updates an existing game
func (c *Client) UpdateGame(ctx context.Context, id model.GameID, input model.GameInput) (*model.Game, error) {
	var game model.Game
	if err := c.Put(ctx, fmt.Sprintf("/api/games/%s", id), input, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// DeleteGame removes a game from the collection
func (c *Client) DeleteGame(ctx context.Context, id model.GameID) error {
	return c.Delete(ctx, fmt.Sprintf("/api/games/%s", id))
}

// TopGames fetches the ranked "hottest" games for the landing page
func (c *Client) TopGames(ctx context.Context) ([]model.Game, error) {
	var games []model.Game
	if err := c.Get(ctx, "/api/games/top", &games); err != nil {
		return nil, err
	}
	return games, nil
}
