package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	err := NewDomainError(ErrCodeNotFound, "movie not found")
	assert.Equal(t, "[NOT_FOUND] movie not found", err.Error())

	cause := errors.New("boom")
	wrapped := NewDomainErrorWithCause(ErrCodeNetwork, "unreachable", cause)
	assert.Equal(t, "[NETWORK_ERROR] unreachable: boom", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestWrap_KeepsSentinelIdentity(t *testing.T) {
	cause := errors.New("Incorrect IMDb ID.")
	err := fmt.Errorf("detail tt1: %w", Wrap(ErrMovieNotFound, cause))

	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrSessionNotFound)

	var de *DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeNotFound, de.Code)
}
