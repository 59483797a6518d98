package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string  `json:"username" validate:"max=5"`
	MajorIDs []int64 `json:"major_ids" validate:"dive,gt=0"`
	Note     string  `validate:"omitempty,min=2"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Username: "bob", MajorIDs: []int64{1}}))

	err := v.Validate(&sample{Username: "robert", MajorIDs: []int64{0}, Note: "x"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "max=5", fields["username"])
	assert.Equal(t, "gt=0", fields["major_ids[0]"])
	assert.Equal(t, "min=2", fields["Note"])
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
