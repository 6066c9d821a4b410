// Package auth holds the client's auth state: the current user and token,
// persisted between runs and attached to every gateway request.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/bgshelf/bgshelf/internal/model"
)

// API is the subset of the gateway the auth service uses
type API interface {
	Login(ctx context.Context, creds model.Credentials) (json.RawMessage, error)
	Signup(ctx context.Context, creds model.SignupCredentials) (json.RawMessage, error)
	Me(ctx context.Context) (*model.User, error)
	SetToken(token string)
}

// Service is the process-wide holder of the current user and token.
// It is the single read/write boundary for auth state.
type Service struct {
	api    API
	store  *Store
	logger *slog.Logger
	now    func() time.Time

	token string
	user  *model.User
}

// New creates an auth Service and loads any persisted state
func New(api API, store *Store, logger *slog.Logger) (*Service, error) {
	s := &Service{
		api:    api,
		store:  store,
		logger: logger,
		now:    time.Now,
	}

	token, err := store.LoadToken()
	if err != nil {
		return nil, err
	}
	user, err := store.LoadUser()
	if err != nil {
		return nil, err
	}

	s.token = token
	s.user = user
	if token != "" {
		api.SetToken(token)
	}
	return s, nil
}

// Authenticated reports whether a user is logged in
func (s *Service) Authenticated() bool {
	return s.user != nil && s.token != ""
}

// CurrentUser returns the logged-in user, or nil
func (s *Service) CurrentUser() *model.User {
	return s.user
}

// Token returns the current bearer token, empty when logged out
func (s *Service) Token() string {
	return s.token
}

// Login authenticates against the backend and persists the result.
// When the response omits user data the service falls back to fetching
// /api/me with the new token, and failing that constructs a minimal user
// from the submitted email.
func (s *Service) Login(ctx context.Context, creds model.Credentials) (*model.User, error) {
	raw, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	normalized, err := NormalizeAuthResponse(raw)
	if err != nil {
		return nil, err
	}

	s.api.SetToken(normalized.Token)

	user := normalized.User
	if user == nil {
		fetched, err := s.api.Me(ctx)
		if err != nil {
			s.logger.Debug("could not fetch user after login", slog.String("error", err.Error()))
		} else {
			user = fetched
		}
	}
	if user == nil {
		user = &model.User{
			Email:     creds.Email,
			CreatedAt: s.now(),
		}
	}

	if err := s.store.Save(normalized.Token, user); err != nil {
		return nil, err
	}

	s.token = normalized.Token
	s.user = user
	return user, nil
}

// Signup registers a new account and persists the issued session.
// Unlike login, a signup response without user data is an error.
func (s *Service) Signup(ctx context.Context, creds model.SignupCredentials) (*model.User, error) {
	raw, err := s.api.Signup(ctx, creds)
	if err != nil {
		return nil, err
	}

	normalized, err := NormalizeAuthResponse(raw)
	if err != nil {
		return nil, err
	}
	if normalized.User == nil {
		return nil, model.ErrMissingUser
	}

	if err := s.store.Save(normalized.Token, normalized.User); err != nil {
		return nil, err
	}

	s.api.SetToken(normalized.Token)
	s.token = normalized.Token
	s.user = normalized.User
	return normalized.User, nil
}

// Logout clears the persisted and in-memory auth state
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.token = ""
	s.user = nil
	s.api.SetToken("")
	return nil
}
