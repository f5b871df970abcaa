package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUnsign(t *testing.T) {
	signed := Sign("abc123", "secret-key")
	assert.NotEqual(t, "abc123", signed)

	value, err := Unsign(signed, "secret-key")
	require.NoError(t, err)
	assert.Equal(t, "abc123", value)
}

func TestUnsignTamperedValue(t *testing.T) {
	signed := Sign("abc123", "secret-key")

	_, err := Unsign("x"+signed, "secret-key")
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestUnsignWrongSecret(t *testing.T) {
	signed := Sign("abc123", "secret-key")

	_, err := Unsign(signed, "another-key")
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestUnsignWithoutSignature(t *testing.T) {
	_, err := Unsign("no-dot-here", "secret-key")
	assert.ErrorIs(t, err, ErrBadSignature)
}
