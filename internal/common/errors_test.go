package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewUserError("could not save the expense", cause)

	assert.Equal(t, "could not save the expense: disk full", err.Error())
	assert.ErrorIs(t, err, cause, "the cause stays reachable through Unwrap")

	var userErr *UserError
	assert.ErrorAs(t, err, &userErr)
	assert.Equal(t, "could not save the expense", userErr.UserMessage)

	// Wrapping layers do not hide the user message.
	wrapped := fmt.Errorf("command failed: %w", err)
	userErr = nil
	assert.ErrorAs(t, wrapped, &userErr)
	assert.Equal(t, "could not save the expense", userErr.UserMessage)
}

func TestUserError_NoCause(t *testing.T) {
	err := NewUserError("nothing to report", nil)
	assert.Equal(t, "nothing to report", err.Error())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRateFetchFailed))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", ErrRateFetchFailed)))
	assert.False(t, IsRetryable(errors.New("plain failure")))
	assert.False(t, IsRetryable(ErrNotFound))

	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("flaky"), Retryable: true}))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("permanent"), Retryable: false}))
}
