package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgshelf/bgshelf/internal/model"
)

func TestNormalizeTokenFieldVariants(t *testing.T) {
	for _, field := range []string{"token", "accessToken", "jwt", "authToken", "access_token"} {
		raw, err := json.Marshal(map[string]string{field: "tok-1"})
		require.NoError(t, err)

		got, err := NormalizeAuthResponse(raw)
		require.NoError(t, err, "field %q", field)
		assert.Equal(t, "tok-1", got.Token, "field %q", field)
	}
}

func TestNormalizeTokenProbeOrder(t *testing.T) {
	// token wins over accessToken when both are present
	raw := json.RawMessage(`{"accessToken": "second", "token": "first"}`)

	got, err := NormalizeAuthResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Token)
}

func TestNormalizeMissingTokenIsTypedError(t *testing.T) {
	raw := json.RawMessage(`{"user": {"id": "u1", "email": "a@example.com"}}`)

	_, err := NormalizeAuthResponse(raw)
	assert.ErrorIs(t, err, model.ErrMissingToken)
}

func TestNormalizeNonObjectResponse(t *testing.T) {
	_, err := NormalizeAuthResponse(json.RawMessage(`"just a string"`))
	assert.Error(t, err)
}

func TestNormalizeUserWrapperVariants(t *testing.T) {
	for _, field := range []string{"user", "userData", "userInfo"} {
		raw, err := json.Marshal(map[string]any{
			"token": "tok-1",
			field:   map[string]string{"id": "u1", "email": "a@example.com"},
		})
		require.NoError(t, err)

		got, err := NormalizeAuthResponse(raw)
		require.NoError(t, err, "field %q", field)
		require.NotNil(t, got.User, "field %q", field)
		assert.Equal(t, model.UserID("u1"), got.User.ID)
	}
}

func TestNormalizeTopLevelUserFields(t *testing.T) {
	raw := json.RawMessage(`{"token": "tok-1", "id": "u1", "email": "a@example.com"}`)

	got, err := NormalizeAuthResponse(raw)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "a@example.com", got.User.Email)
}

func TestNormalizeNoUserDataYieldsNilUser(t *testing.T) {
	raw := json.RawMessage(`{"token": "tok-1"}`)

	got, err := NormalizeAuthResponse(raw)
	require.NoError(t, err)
	assert.Nil(t, got.User)
}
