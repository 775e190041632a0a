package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	identity := Identity{
		UserID: "u1",
		Name:   "Maria Silva",
		Email:  "maria@example.com",
		Admin:  true,
	}

	token, err := NewToken(identity, testSecret, time.Hour)
	require.NoError(t, err)

	parsed, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewToken(Identity{UserID: "u1"}, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := NewToken(Identity{UserID: "u1"}, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	identity := Identity{UserID: "u1"}

	ctx := ToContext(context.Background(), identity)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, identity, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
