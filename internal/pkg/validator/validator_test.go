package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("priya.verma@aligna.io"))
	assert.True(t, IsValidEmail("a+b@example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@aligna.io"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-06-03")
	assert.True(t, ok)

	_, ok = IsValidDate("03-06-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-40")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP-101"))
	assert.True(t, IsValidEmployeeCode("EMP-1234"))
	assert.False(t, IsValidEmployeeCode("EMP-12"))
	assert.False(t, IsValidEmployeeCode("emp-101"))
	assert.False(t, IsValidEmployeeCode("101"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid email address"},
		{Field: "reason", Message: "is required"},
	}

	assert.Equal(t, "email: invalid email address; reason: is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":  "invalid email address",
		"reason": "is required",
	}, errs.ToMap())
}
