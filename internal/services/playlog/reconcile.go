package playlog

import (
	"context"
	"log/slog"

	"github.com/bgshelf/bgshelf/internal/model"
)

// PlayerDirectory is the subset of the gateway used to resolve player names
type PlayerDirectory interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	CreatePlayer(ctx context.Context, name string) (*model.Player, error)
}

// Resolver maps player display names to durable player identifiers,
// creating new player records for unrecognised names.
type Resolver struct {
	directory PlayerDirectory
	logger    *slog.Logger
}

// NewResolver creates a Resolver backed by the given directory
func NewResolver(directory PlayerDirectory, logger *slog.Logger) *Resolver {
	return &Resolver{directory: directory, logger: logger}
}

// Resolve resolves each name independently, preserving selection order.
// Resolution is best-effort: a name whose lookup or creation fails is
// dropped from the result and reported in dropped rather than aborting
// the whole submission.
func (r *Resolver) Resolve(ctx context.Context, names []string) (ids []model.PlayerID, dropped []string) {
	for _, name := range names {
		id, err := r.resolveOne(ctx, name)
		if err != nil {
			r.logger.Warn("dropping unresolved player",
				slog.String("name", name),
				slog.String("error", err.Error()),
			)
			dropped = append(dropped, name)
			continue
		}
		ids = append(ids, id)
	}
	return ids, dropped
}

// resolveOne looks the name up against the current server-side player list
// and creates a new record if it is not found. Name matching is exact.
func (r *Resolver) resolveOne(ctx context.Context, name string) (model.PlayerID, error) {
	players, err := r.directory.ListPlayers(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range players {
		if p.Name == name {
			return p.ID, nil
		}
	}

	created, err := r.directory.CreatePlayer(ctx, name)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}
