package utils_test

import (
	"testing"

	"github.com/blogrest/blog_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pw", hash)

	// Salted: hashing the same password twice yields different strings.
	hash2, err := utils.HashPassword("s3cret-pw")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pw")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("s3cret-pw", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-pw", hash))
	assert.False(t, utils.CheckPasswordHash("", hash))
}
