package auth

import (
	"testing"
	"time"

	"circula/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(config.JWT{Secret: "s3cret", TTL: time.Hour})

	token, err := m.Issue(42)
	require.NoError(t, err)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	issuer := NewTokenManager(config.JWT{Secret: "one", TTL: time.Hour})
	verifier := NewTokenManager(config.JWT{Secret: "two", TTL: time.Hour})

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := &tokenManagerImpl{secret: []byte("s"), ttl: time.Minute, now: time.Now}

	m.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := m.Issue(7)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := NewTokenManager(config.JWT{Secret: "s", TTL: time.Hour})

	_, err := m.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
