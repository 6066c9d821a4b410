package model

import "errors"

// Common errors used across the application
var (
	// Auth errors
	ErrNotAuthenticated = errors.New("not logged in")
	ErrMissingToken     = errors.New("auth response contains no recognised token field")
	ErrMissingUser      = errors.New("auth response contains no recognised user data")

	// Session form errors
	ErrEmptySessionDate  = errors.New("session date is required")
	ErrNoPlayersSelected = errors.New("at least one player is required")
	ErrDuplicatePlayer   = errors.New("player is already selected")
	ErrEmptyPlayerName   = errors.New("player name is empty")
	ErrPlayerNotSelected = errors.New("player is not selected")

	// File attachment errors
	ErrEmptyFileTitle = errors.New("file title is required")
	ErrEmptyFileLink  = errors.New("file link is required")

	// Game form errors
	ErrEmptyGameTitle = errors.New("game title is required")
)
