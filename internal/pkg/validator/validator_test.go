package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAccountCode(t *testing.T) {
	valid := []string{"CASH", "ACCOUNTS_RECEIVABLE", "VAT_PAYABLE", "A1", "DELIVERY_VANS_2"}
	for _, code := range valid {
		assert.True(t, IsValidAccountCode(code), "expected %q valid", code)
	}

	invalid := []string{"", "C", "cash", "Cash", "1CASH", "_CASH", "CASH ", "CA-SH"}
	for _, code := range invalid {
		assert.False(t, IsValidAccountCode(code), "expected %q invalid", code)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-06-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), date)

	for _, s := range []string{"", "15-06-2025", "2025/06/15", "2025-13-01", "yesterday"} {
		_, ok := IsValidDate(s)
		assert.False(t, ok, "expected %q invalid", s)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "code", Message: "is required"},
		{Field: "type", Message: "unknown"},
	}

	assert.Equal(t, "code: is required; type: unknown", errs.Error())
	assert.Equal(t, map[string]string{"code": "is required", "type": "unknown"}, errs.ToMap())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsInSlice(t *testing.T) {
	methods := []string{"cash", "bank"}
	assert.True(t, IsInSlice("cash", methods))
	assert.False(t, IsInSlice("credit", methods))
	assert.False(t, IsInSlice("", methods))
}
