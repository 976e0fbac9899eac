package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTemporaryPassword(t *testing.T) {
	t.Run("Length", func(t *testing.T) {
		password, err := GenerateTemporaryPassword(8)
		require.NoError(t, err)
		assert.Len(t, password, 8, "password should be exactly 8 characters")
	})

	t.Run("Alphanumeric Only", func(t *testing.T) {
		alphanumeric := regexp.MustCompile(`^[a-zA-Z0-9]+$`)
		for i := 0; i < 20; i++ {
			password, err := GenerateTemporaryPassword(8)
			require.NoError(t, err)
			assert.Regexp(t, alphanumeric, password, "password should contain only alphanumeric characters")
		}
	})

	t.Run("Not Repeating", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 10; i++ {
			password, err := GenerateTemporaryPassword(8)
			require.NoError(t, err)
			seen[password] = true
		}
		assert.Greater(t, len(seen), 1, "consecutive passwords should differ")
	})
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.Contains(t, first, "LXBK_SVC_", "request id should carry the service prefix")
	assert.NotEqual(t, first, second, "request ids should be unique")
}
