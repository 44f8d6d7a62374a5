package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCustomerPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		phone   string
		ok      bool
		message string
	}{
		{name: "valid", phone: "9876543210", ok: true},
		{name: "empty", phone: "", ok: false, message: "phone must not be empty"},
		{name: "too short", phone: "98765", ok: false, message: "phone must be 10 digits"},
		{name: "too long", phone: "98765432101", ok: false, message: "phone must be 10 digits"},
		{name: "contains letters", phone: "98765ABCDE", ok: false, message: "phone must not contain letters"},
		// length is counted in characters, not bytes
		{name: "arabic-indic digits", phone: "٠١٢٣٤٥٦٧٨٩", ok: true},
		{name: "nine chars multibyte", phone: "01234567٠", ok: false, message: "phone must be 10 digits"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := ValidateCustomerPhone(tt.phone)
			assert.Equal(t, tt.ok, res.Successful)
			if !tt.ok {
				assert.Equal(t, tt.message, res.Message)
			}
		})
	}
}

func TestValidateAddressName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		ok      bool
	}{
		{name: "valid", value: "Home", ok: true},
		{name: "two chars", value: "Ab", ok: true},
		{name: "empty", value: "", ok: false},
		{name: "one char", value: "A", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := ValidateAddressName(tt.value)
			assert.Equal(t, tt.ok, res.Successful)
		})
	}
}

func TestValidateAddressShortName(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateAddressShortName("HM").Successful)
	assert.False(t, ValidateAddressShortName("").Successful)
	assert.False(t, ValidateAddressShortName("H").Successful)
}

func TestValidateEmployeeName(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateEmployeeName("John Doe").Successful)
	assert.False(t, ValidateEmployeeName("").Successful)
	assert.False(t, ValidateEmployeeName("Jo").Successful)
}

func TestValidatePrice(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidatePrice(9.5).Successful)
	assert.False(t, ValidatePrice(0).Successful)
	assert.False(t, ValidatePrice(-1).Successful)
}

func TestValidateResolvedID(t *testing.T) {
	t.Parallel()

	id := uint(3)
	zero := uint(0)

	assert.True(t, ValidateResolvedID(&id, "customer").Successful)

	missing := ValidateResolvedID(nil, "customer")
	assert.False(t, missing.Successful)
	assert.Equal(t, "customer is required for dine-out orders", missing.Message)

	invalid := ValidateResolvedID(&zero, "customer")
	assert.False(t, invalid.Successful)
	assert.Equal(t, "customer is invalid", invalid.Message)
}
