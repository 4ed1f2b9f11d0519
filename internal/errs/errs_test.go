package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	cause := errors.New("boom")

	pe := fmt.Errorf("wrapped: %w", &PersistenceError{Path: "/tmp/x.json", Err: cause})
	assert.True(t, IsPersistence(pe))
	assert.ErrorIs(t, pe, cause)

	pr := &ProviderError{Op: "describe", Kind: "EC2", ID: "i-1", Err: cause}
	var target *ProviderError
	assert.True(t, errors.As(pr, &target))
	assert.Equal(t, "detail", target.Op)
	assert.Equal(t, "describe EC2 i-1: boom", pr.Error())

	v := &ValidationError{Field: "name", Reason: "must not be empty"}
	assert.True(t, IsValidation(v))
	assert.Equal(t, "invalid name: must not be empty", v.Error())
}

func TestNoBlueprintOpenIsNotFound(t *testing.T) {
	assert.ErrorIs(t, ErrNoBlueprintOpen, ErrNotFound)
}
