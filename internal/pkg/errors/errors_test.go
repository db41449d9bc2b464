package errors_test

import (
	"net/http"
	"testing"

	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := errors.New("SOME_CODE", "something broke", http.StatusBadGateway)
	assert.Equal(t, "SOME_CODE: something broke", err.Error())
}

func TestAppError_WithDetailsLeavesReceiverUntouched(t *testing.T) {
	base := errors.ErrPermissionDenied

	withDetails := base.WithDetails(map[string]interface{}{"permission": "denied"})

	require.NotSame(t, base, withDetails)
	assert.Equal(t, "denied", withDetails.Details["permission"])
	assert.Equal(t, base.Code, withDetails.Code)
	assert.Equal(t, base.StatusCode, withDetails.StatusCode)
	assert.NotContains(t, base.Details, "permission")
}

func TestAppError_WithDetailsIndependentCopies(t *testing.T) {
	first := errors.ErrPositionUnavailable.WithDetails(map[string]interface{}{"reason": "stale_position"})
	second := errors.ErrPositionUnavailable.WithDetails(map[string]interface{}{"reason": "no_fix"})

	assert.Equal(t, "stale_position", first.Details["reason"])
	assert.Equal(t, "no_fix", second.Details["reason"])
}
