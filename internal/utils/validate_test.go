package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields(t *testing.T) {
	missing := MissingFields(
		Field{Name: "full_name", Value: "Ada"},
		Field{Name: "email", Value: ""},
		Field{Name: "password", Value: "   "},
		Field{Name: "phone", Value: "123"},
	)
	assert.Equal(t, []string{"email", "password"}, missing)
}

func TestMissingFieldsNoneMissing(t *testing.T) {
	missing := MissingFields(
		Field{Name: "email", Value: "a@b.c"},
		Field{Name: "password", Value: "x"},
	)
	assert.Empty(t, missing)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.True(t, ValidEmail("a@b.c"))
	assert.False(t, ValidEmail("userexample.com"))
	assert.False(t, ValidEmail("user@examplecom"))
	assert.False(t, ValidEmail(""))
}
