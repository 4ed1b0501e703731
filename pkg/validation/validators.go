package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters, digits, spaces, and common name punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// E164-like phone: optional +, 7 to 15 digits
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// New builds a validator with the custom rules registered. Every layer
// shares one instance so struct tags mean the same thing everywhere.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	return v
}

// ValidName accepts names in any script, rejecting control characters
// and most symbols. Emptiness is left to the required rule.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates phone number structure.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}
