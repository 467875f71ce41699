package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// Lao mobile numbers: +856 20 followed by exactly 8 digits
	phonePattern = regexp.MustCompile(`^\+85620\d{8}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidationError represents a client-side validation failure
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidPhone reports whether the value is a Lao mobile number in
// +85620XXXXXXXX form
func IsValidPhone(tel string) bool {
	return phonePattern.MatchString(tel)
}

// IsValidEmail reports whether the value has an @ and a domain segment
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsPositivePrice reports whether the price is strictly positive
func IsPositivePrice(price float64) bool {
	return price > 0
}

// RegisterCustomValidations installs the dashboard's custom rules on the
// validator engine gin binding uses
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("laophone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
}
