package model

import "time"

// UserID uniquely identifies a user
type UserID string

// User is the single authenticated identity owning the collection
type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials are submitted to the login endpoint
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupCredentials are submitted to the signup endpoint
type SignupCredentials struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}
