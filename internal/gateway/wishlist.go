package gateway

import (
	"context"
	"fmt"

	"github.com/bgshelf/bgshelf/internal/model"
)

// ListWishlist fetches the games currently on the owner's wishlist
func (c *Client) ListWishlist(ctx context.Context) ([]model.Game, error) {
	var games []model.Game
	if err := c.Get(ctx, "/api/games/wishlist", &games); err != nil {
		return nil, err
	}
	return games, nil
}

// AddToWishlist flags a game as desired-but-not-owned
func (c *Client) AddToWishlist(ctx context.Context, id model.GameID, reason string) error {
	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	return c.Post(ctx, fmt.Sprintf("/api/games/%s/addWishlist", id), body, nil)
}

// RemoveFromWishlist removes a game from the wishlist
func (c *Client) RemoveFromWishlist(ctx context.Context, id model.GameID) error {
	return c.Post(ctx, fmt.Sprintf("/api/games/%s/removeWishlist", id), nil, nil)
}
