package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, 6)
	assert.Regexp(t, "^[A-Za-z0-9]+$", first)
	assert.NotEqual(t, first, second)
}
