// Package validation holds the pure field validators shared by the
// services. Every function is total: it never touches the database and
// reports failures as a ValidationResult instead of an error.
package validation

import (
	"unicode"
	"unicode/utf8"
)

type ValidationResult struct {
	Successful bool   `json:"successful"`
	Message    string `json:"message,omitempty"`
}

func ok() ValidationResult {
	return ValidationResult{Successful: true}
}

func fail(msg string) ValidationResult {
	return ValidationResult{Successful: false, Message: msg}
}

// ValidateCustomerPhone requires a 10 character phone with no letters.
func ValidateCustomerPhone(phone string) ValidationResult {
	if phone == "" {
		return fail("phone must not be empty")
	}
	if utf8.RuneCountInString(phone) != 10 {
		return fail("phone must be 10 digits")
	}
	for _, r := range phone {
		if unicode.IsLetter(r) {
			return fail("phone must not contain letters")
		}
	}
	return ok()
}

func ValidateAddressName(name string) ValidationResult {
	if name == "" {
		return fail("address name must not be empty")
	}
	if len(name) < 2 {
		return fail("address name must be at least 2 characters")
	}
	return ok()
}

func ValidateAddressShortName(shortName string) ValidationResult {
	if shortName == "" {
		return fail("address short name must not be empty")
	}
	if len(shortName) < 2 {
		return fail("address short name must be at least 2 characters")
	}
	return ok()
}

func ValidateEmployeeName(name string) ValidationResult {
	if name == "" {
		return fail("employee name must not be empty")
	}
	if len(name) < 4 {
		return fail("employee name must be at least 4 characters")
	}
	return ok()
}

// ValidateEmployeePhone uses the same rule as customer phones.
func ValidateEmployeePhone(phone string) ValidationResult {
	if res := ValidateCustomerPhone(phone); !res.Successful {
		return res
	}
	return ok()
}

func ValidatePrice(price float64) ValidationResult {
	if price <= 0 {
		return fail("price must be greater than zero")
	}
	return ok()
}

func ValidateExpenseAmount(amount float64) ValidationResult {
	if amount <= 0 {
		return fail("amount must be greater than zero")
	}
	return ok()
}

// ValidateResolvedID checks the resolver output for a dine-out order.
// A missing id and a negative/zero candidate id are reported with
// distinct messages so the UI can tell "not provided" from "invalid".
func ValidateResolvedID(id *uint, field string) ValidationResult {
	if id == nil {
		return fail(field + " is required for dine-out orders")
	}
	if *id == 0 {
		return fail(field + " is invalid")
	}
	return ok()
}
