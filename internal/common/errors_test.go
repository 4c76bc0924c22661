package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("Groq API key is required", ErrMissingConfig)

	assert.True(t, IsConfigError(err))
	assert.ErrorIs(t, err, ErrMissingConfig)
	assert.Contains(t, err.Error(), "Groq API key is required")

	// Without a cause, ConfigError still unwraps to ErrInvalidConfig.
	bare := NewConfigError("duplicate category id", nil)
	assert.True(t, IsConfigError(bare))
	assert.ErrorIs(t, bare, ErrInvalidConfig)
}

func TestIsConfigErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading taxonomy: %w", NewConfigError("empty alias", nil))
	assert.True(t, IsConfigError(wrapped))

	assert.False(t, IsConfigError(errors.New("plain error")))
	assert.False(t, IsConfigError(ErrEmptyTitle))
}
