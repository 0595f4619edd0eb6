package codes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	code, err := Generate(DefaultLength)
	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestGenerate_NonPositiveLengthFallsBackToDefault(t *testing.T) {
	code, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)

	code, err = Generate(-3)
	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)
}

func TestGenerate_AvoidsAmbiguousCharacters(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
	}
}
