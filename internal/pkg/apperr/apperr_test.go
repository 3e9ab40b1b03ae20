package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errGone := NotFound("rental not found")

	assert.Equal(t, KindNotFound, KindOf(errGone))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("load: %w", errGone)))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.True(t, errors.Is(fmt.Errorf("load: %w", errGone), errGone))
}

func TestMessageOfHidesInternalDetail(t *testing.T) {
	err := Internal(errors.New("pq: connection refused"))

	assert.Equal(t, "internal server error", MessageOf(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "amount must be positive", MessageOf(InvalidInput("amount must be positive")))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindInvalidInput.Status())
	assert.Equal(t, http.StatusUnauthorized, KindUnauthenticated.Status())
	assert.Equal(t, http.StatusForbidden, KindForbidden.Status())
	assert.Equal(t, http.StatusNotFound, KindNotFound.Status())
	assert.Equal(t, http.StatusConflict, KindConflict.Status())
	assert.Equal(t, http.StatusTooManyRequests, KindTooManyRequests.Status())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.Status())
}
