package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolationNeedsMappedError(t *testing.T) {
	// Raw driver errors never match the sentinel; callers must run them
	// through MapPgError before asking.
	raw := errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE=23505)")
	assert.False(t, IsUniqueViolation(raw))

	assert.True(t, IsUniqueViolation(ErrConflict))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert cart item: %w", ErrConflict)))
}

func TestMapPgErrorPassesThroughSentinels(t *testing.T) {
	assert.Equal(t, ErrConflict, MapPgError(ErrConflict))
	assert.Equal(t, ErrNotFound, MapPgError(ErrNotFound))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, MapPgError(plain))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("load order: %w", ErrNotFound)))
	assert.False(t, IsNotFound(ErrConflict))
	assert.False(t, IsNotFound(nil))
}
