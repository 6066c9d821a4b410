package gateway

import (
	"context"

	"github.com/bgshelf/bgshelf/internal/model"
)

// ListTags fetches the tag vocabulary used for autocomplete
func (c *Client) ListTags(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := c.Get(ctx, "/api/tags", &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
