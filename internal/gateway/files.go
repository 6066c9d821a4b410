package gateway

import (
	"context"
	"fmt"

	"github.com/bgshelf/bgshelf/internal/model"
)

// ListFiles fetches the reference files attached to a game
func (c *Client) ListFiles(ctx context.Context, gameID model.GameID) ([]model.File, error) {
	var files []model.File
	if err := c.Get(ctx, fmt.Sprintf("/api/games/%s/files", gameID), &files); err != nil {
		return nil, err
	}
	return files, nil
}

// CreateFile attaches a reference file to a game
func (c *Client) CreateFile(ctx context.Context, gameID model.GameID, input model.FileInput) (*model.File, error) {
	var file model.File
	if err := c.Post(ctx, fmt.Sprintf("/api/games/%s/files", gameID), input, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteFile removes a file attachment
func (c *Client) DeleteFile(ctx context.Context, id model.FileID) error {
	return c.Delete(ctx, fmt.Sprintf("/api/files/%s", id))
}
