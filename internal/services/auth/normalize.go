package auth

import (
	"encoding/json"
	"fmt"

	"github.com/bgshelf/bgshelf/internal/model"
)

// Backends differ in where login/signup responses carry the token and the
// user object. Normalisation probes an explicit, ordered list of accepted
// shapes and produces one canonical record; an unrecognised shape is a
// typed error rather than a silent guess.

// tokenFields are the accepted token field names, in probe order
var tokenFields = []string{"token", "accessToken", "jwt", "authToken", "access_token"}

// userFields are the accepted wrapper field names for the user object,
// in probe order. A response may also carry user fields at the top level.
var userFields = []string{"user", "userData", "userInfo"}

// Normalized is the canonical auth response
type Normalized struct {
	Token string
	// User is nil when the response carried no recognisable user data
	User *model.User
}

// NormalizeAuthResponse extracts the token and user from a raw auth
// response body. A missing token is model.ErrMissingToken; a missing user
// is not an error here since login has fallbacks for it.
func NormalizeAuthResponse(raw json.RawMessage) (*Normalized, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("auth response is not a JSON object: %w", err)
	}

	out := &Normalized{}

	for _, name := range tokenFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		var token string
		if err := json.Unmarshal(v, &token); err == nil && token != "" {
			out.Token = token
			break
		}
	}
	if out.Token == "" {
		return nil, model.ErrMissingToken
	}

	for _, name := range userFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		var user model.User
		if err := json.Unmarshal(v, &user); err == nil && (user.ID != "" || user.Email != "") {
			out.User = &user
			return out, nil
		}
	}

	// Last accepted shape: user fields at the top level of the response
	var top model.User
	if err := json.Unmarshal(raw, &top); err == nil && (top.ID != "" || top.Email != "") {
		out.User = &top
	}

	return out, nil
}
