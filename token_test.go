package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := issueToken("alice@example.com", secret, 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)

	subject, err := verifyToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestVerifyToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := issueToken("alice@example.com", secret, -1*time.Minute)
	require.NoError(t, err)

	_, err = verifyToken(token, secret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := issueToken("alice@example.com", []byte("right-secret"), time.Minute)
	require.NoError(t, err)

	_, err = verifyToken(token, []byte("wrong-secret"))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_TamperedSegments(t *testing.T) {
	secret := []byte("test-secret")
	token, err := issueToken("alice@example.com", secret, time.Minute)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	flip := func(s string) string {
		b := []byte(s)
		if b[0] == 'A' {
			b[0] = 'B'
		} else {
			b[0] = 'A'
		}
		return string(b)
	}

	// tampering with any segment must fail verification
	for i := range parts {
		tampered := make([]string, 3)
		copy(tampered, parts)
		tampered[i] = flip(tampered[i])
		_, err := verifyToken(strings.Join(tampered, "."), secret)
		assert.Error(t, err, "segment %d", i)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	_, err := verifyToken("not.a.jwt", []byte("k"))
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = verifyToken("", []byte("k"))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
