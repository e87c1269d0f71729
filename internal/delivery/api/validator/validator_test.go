package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Qty   int    `json:"quantidade" validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "Ana", Email: "ana@example.com", Qty: 1}))

	err := v.Validate(&sample{Email: "not-an-email"})
	require.Error(t, err)

	var fieldErrs ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.ElementsMatch(t, ValidationErrors{
		{Field: "nome", Rule: "required"},
		{Field: "email", Rule: "email"},
		{Field: "quantidade", Rule: "gt", Param: "0"},
	}, fieldErrs)
	assert.Contains(t, err.Error(), "nome failed on required")
}
