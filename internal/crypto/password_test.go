package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Small parameters keep the KDF fast in tests.
func testParams() Argon2Params {
	return Argon2Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", testParams())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	ok, err := VerifyPassword("s3cret-pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong-pass", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, err := HashPassword("same", testParams())
	require.NoError(t, err)
	b, err := HashPassword("same", testParams())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	_, err := HashPassword("", testParams())
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPassword_EmptyNeverMatches(t *testing.T) {
	hash, err := HashPassword("anything", testParams())
	require.NoError(t, err)

	ok, err := VerifyPassword("", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	bad := []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2Fs$aGFzaA",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2Fs$aGFzaA",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdHNhbHRzYWx0c2Fs$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2Fs$c2hvcnQ",
	}
	for _, h := range bad {
		_, err := VerifyPassword("pw", h)
		assert.ErrorIs(t, err, ErrBadHash, "hash %q", h)
	}
}
