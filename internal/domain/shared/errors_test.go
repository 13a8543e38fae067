package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := NewDomainError("PRODUCT_LOCKED", "Product has recorded sales")

	assert.ErrorIs(t, err, ErrLocked)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDomainError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("updating product: %w", NewDomainError("INVALID_HIERARCHY", "Main user is itself a sub-user"))

	assert.ErrorIs(t, err, ErrInvalidHierarchy)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", CodeOf(ErrNotFound))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}
