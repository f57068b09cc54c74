package apperrors_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestBlocked(t *testing.T) {
	err := apperrors.Blocked("career track", 3, "employee skills")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "3 employee skills")
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to begin transaction", inner)

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "failed to begin transaction: connection reset", err.Error())
}
