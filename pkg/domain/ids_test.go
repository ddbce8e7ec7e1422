package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNationalID(t *testing.T) {
	t.Run("accepts valid identifiers", func(t *testing.T) {
		for _, in := range []string{"AB123456", "123456", "A1B2-C3D4", "12345678901234567890"} {
			nid, err := ParseNationalID(in)
			require.NoError(t, err, in)
			assert.Equal(t, in, nid.String())
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		nid, err := ParseNationalID("  ab123456 ")
		require.NoError(t, err)
		assert.Equal(t, "AB123456", nid.String())
	})

	t.Run("rejects invalid identifiers", func(t *testing.T) {
		for _, in := range []string{"", "AB123", "123456789012345678901", "AB 1234", "AB_12345", "AB@12345"} {
			_, err := ParseNationalID(in)
			assert.Error(t, err, in)
		}
	})
}

func TestNationalIDHash(t *testing.T) {
	nid, err := ParseNationalID("AB123456")
	require.NoError(t, err)

	hash := nid.Hash()
	assert.Len(t, hash, 64)
	assert.NotContains(t, hash, nid.String())
	assert.Equal(t, hash, nid.Hash())

	other, err := ParseNationalID("AB123457")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other.Hash())
}

func TestParseApplicationID(t *testing.T) {
	t.Run("accepts a valid uuid", func(t *testing.T) {
		raw := uuid.NewString()
		id, err := ParseApplicationID(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
		assert.False(t, id.IsNil())
	})

	t.Run("rejects empty, malformed, and nil values", func(t *testing.T) {
		for _, in := range []string{"", "not-a-uuid", uuid.Nil.String()} {
			_, err := ParseApplicationID(in)
			assert.Error(t, err, in)
		}
	})
}
