package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", "configured")
	assert.Equal(t, "configured", GetEnvString("TEST_ENV_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("TEST_ENV_STRING_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "42")
	t.Setenv("TEST_ENV_INT_BAD", "not-a-number")

	assert.Equal(t, 42, GetEnvInt("TEST_ENV_INT", 7))
	assert.Equal(t, 7, GetEnvInt("TEST_ENV_INT_MISSING", 7))
	assert.Equal(t, 7, GetEnvInt("TEST_ENV_INT_BAD", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_ENV_BOOL", "true")
	t.Setenv("TEST_ENV_BOOL_BAD", "maybe")

	assert.True(t, GetEnvBool("TEST_ENV_BOOL", false))
	assert.False(t, GetEnvBool("TEST_ENV_BOOL_MISSING", false))
	assert.True(t, GetEnvBool("TEST_ENV_BOOL_BAD", true))
}
