package perrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractViolationMessage(t *testing.T) {
	err := NewContractViolation("wire missing key %q", "total")
	assert.EqualError(t, err, `wire missing key "total"`)

	var cv *ContractViolation
	assert.True(t, errors.As(err, &cv))
}

func TestBranchTagViolationMessage(t *testing.T) {
	err := NewBranchTagViolation("unrecognised tag %d", 3)
	assert.EqualError(t, err, "unrecognised tag 3")

	var btv *BranchTagViolation
	assert.True(t, errors.As(err, &btv))
}

func TestUserTaskFailureUnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewUserTaskFailure(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestUserTaskFailureWithNonErrorCause(t *testing.T) {
	err := NewUserTaskFailure("panic: index out of range")
	assert.Contains(t, err.Error(), "index out of range")

	var utf *UserTaskFailure
	assert.True(t, errors.As(err, &utf))
	assert.Nil(t, errors.Unwrap(err))
}

func TestAsErrorPassesThroughAnExistingError(t *testing.T) {
	cause := errors.New("boom")
	assert.Same(t, cause, AsError(cause))
}

func TestAsErrorWrapsANonErrorCause(t *testing.T) {
	err := AsError("index out of range")
	var utf *UserTaskFailure
	assert.True(t, errors.As(err, &utf))
	assert.Contains(t, err.Error(), "index out of range")
}
