package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, exp, err := NewSessionToken("secret", "12345", "Ada Lovelace", 30)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	sess, err := ParseSessionToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "12345", sess.UserID)
	assert.Equal(t, "Ada Lovelace", sess.FullName)
	assert.WithinDuration(t, exp, sess.Exp, time.Second)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, _, err := NewSessionToken("secret", "12345", "Ada", 30)
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionTokenTampered(t *testing.T) {
	token, _, err := NewSessionToken("secret", "12345", "Ada", 30)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseSessionToken("secret", tampered)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionTokenExpired(t *testing.T) {
	token, _, err := NewSessionToken("secret", "12345", "Ada", -1)
	require.NoError(t, err)

	_, err = ParseSessionToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken("secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}
