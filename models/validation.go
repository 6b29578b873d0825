package models

import (
	"regexp"

	"github.com/go-playground/validator"
)

var (
	// optionalCountryCode-xxx-xxx-xxxx e.g. 1-234-567-8901, 234-567-8901, (234) 567 8901
	phoneNumberRegEx = regexp.MustCompile(`^(\d{1,4}-)?\(?(\d{3})\)?[- ]?(\d{3})[- ]?(\d{4})$`)

	// username@domain-name
	emailAddressRegEx = regexp.MustCompile(`(?i)^[\w.-]+@([\w-]+\.)+[A-Z]{2,4}$`)

	validate *validator.Validate
)

func init() {
	validate = validator.New()
	if err := RegisterValidators(validate); err != nil {
		panic(err)
	}
}

// IsValidPhoneNumber reports whether val is a phone number like 1-234-567-8901,
// 234-567-8901 or (234) 567 8901.
func IsValidPhoneNumber(val string) bool {
	return phoneNumberRegEx.MatchString(val)
}

// IsValidEmailAddress reports whether val looks like username@domain.tld.
func IsValidEmailAddress(val string) bool {
	return emailAddressRegEx.MatchString(val)
}

// RegisterValidators adds the 'phone_number' & 'email_address' tags to validate,
// so config structs and entries share the same rules.
func RegisterValidators(validate *validator.Validate) error {
	err := validate.RegisterValidation("phone_number", func(fl validator.FieldLevel) bool {
		return IsValidPhoneNumber(fl.Field().String())
	})
	if err != nil {
		return err
	}

	return validate.RegisterValidation("email_address", func(fl validator.FieldLevel) bool {
		return IsValidEmailAddress(fl.Field().String())
	})
}
