package playlog

import (
	"context"
	"log/slog"

	"github.com/bgshelf/bgshelf/internal/model"
)

// SessionWriter is the subset of the gateway used to submit sessions
type SessionWriter interface {
	CreateSession(ctx context.Context, gameID model.GameID, input model.SessionInput) (*model.Session, error)
	UpdateSession(ctx context.Context, id model.SessionID, input model.SessionInput) (*model.Session, error)
}

// Service runs the full submit flow: guard, reconciliation, submission.
// The caller re-fetches the session list after a successful mutation;
// the service never patches any local copy.
type Service struct {
	writer   SessionWriter
	resolver *Resolver
	logger   *slog.Logger
}

// New creates a playlog Service
func New(writer SessionWriter, resolver *Resolver, logger *slog.Logger) *Service {
	return &Service{writer: writer, resolver: resolver, logger: logger}
}

// Result reports the outcome of a submission
type Result struct {
	Session *model.Session
	// Dropped lists player names excluded because their resolution failed
	Dropped []string
}

// LogSession validates the form, resolves its players, and creates a new
// session for the game. The form is left untouched on failure so the user
// can retry.
func (s *Service) LogSession(ctx context.Context, gameID model.GameID, form *Form) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	ids, dropped := s.resolver.Resolve(ctx, form.Players())

	session, err := s.writer.CreateSession(ctx, gameID, model.SessionInput{
		Date:      form.Date,
		Notes:     form.Notes,
		PlayerIDs: ids,
	})
	if err != nil {
		return nil, err
	}

	form.Reset()
	return &Result{Session: session, Dropped: dropped}, nil
}

// UpdateSession validates the form, resolves its players, and updates an
// existing session in place.
func (s *Service) UpdateSession(ctx context.Context, id model.SessionID, form *Form) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	ids, dropped := s.resolver.Resolve(ctx, form.Players())

	session, err := s.writer.UpdateSession(ctx, id, model.SessionInput{
		Date:      form.Date,
		Notes:     form.Notes,
		PlayerIDs: ids,
	})
	if err != nil {
		return nil, err
	}

	form.Reset()
	return &Result{Session: session, Dropped: dropped}, nil
}
