package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIError(t *testing.T) {
	plain := NewCLIError(ExitBadInput, "bad mode token")
	assert.Equal(t, "bad mode token", plain.Error())
	assert.Equal(t, ExitBadInput, plain.Code)
	assert.Nil(t, plain.Unwrap())

	cause := errors.New("no such file")
	wrapped := WrapCLIError(ExitConfigError, "loading config", cause)
	assert.Equal(t, "loading config: no such file", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)

	var cliErr *CLIError
	assert.ErrorAs(t, error(wrapped), &cliErr)
	assert.Equal(t, ExitConfigError, cliErr.Code)
}
