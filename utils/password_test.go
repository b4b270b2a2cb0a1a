package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret123", hash)

	assert.True(t, CheckPassword(hash, "Secret123"))
	assert.False(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword("not-a-hash", "Secret123"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("Secret123")
	require.NoError(t, err)
	second, err := HashPassword("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSanitizeStripsScript(t *testing.T) {
	out := Sanitize(`<p>hello</p><script>alert(1)</script>`)
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, "script")
}

func TestSanitizeTextStripsAllMarkup(t *testing.T) {
	out := SanitizeText(`<b>Go</b> tips & tricks`)
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "Go")
}
