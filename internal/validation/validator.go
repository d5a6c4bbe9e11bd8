package validation

import (
	"reflect"
	"regexp"
	"strings"

	"customer-console/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the draft field rules and
// error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with the custom draft rules
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("mailbox", validateMailbox)
	_ = v.RegisterValidation("tendigits", validateTenDigits)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// draftMessages maps field name and failing rule to the message rendered next
// to the field. Within a field the required rule wins over the format rule,
// which the per-field tag order already guarantees.
var draftMessages = map[string]map[string]string{
	models.FieldName: {
		"notblank": "Name is required",
	},
	models.FieldEmail: {
		"notblank": "Email is required",
		"mailbox":  "Invalid email format",
	},
	models.FieldPhone: {
		"notblank":  "Phone number is required",
		"tendigits": "Phone must be 10 digits",
	},
}

// DraftErrors validates a candidate draft and returns the field-keyed
// messages. All fields are checked independently; an empty map means the
// draft may be sent to the record service.
func (v *Validator) DraftErrors(draft models.CustomerDraft) models.ValidationErrors {
	errs := models.ValidationErrors{}

	err := v.validate.Struct(draft)
	if err == nil {
		return errs
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs[models.FieldName] = "Validation failed"
		return errs
	}

	for _, fe := range fieldErrors {
		field := fe.Field()
		if messages, ok := draftMessages[field]; ok {
			if msg, ok := messages[fe.Tag()]; ok {
				errs[field] = msg
				continue
			}
		}
		errs[field] = "Invalid value"
	}

	return errs
}

// Custom validation functions

var (
	// Minimal mailbox shape, not full RFC validation: something@something.tld
	// with no whitespace and no second @ in any part.
	mailboxRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	tenDigitsRegex = regexp.MustCompile(`^\d{10}$`)
)

// validateNotBlank fails when the value is empty after trimming surrounding
// whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateMailbox validates the minimal mailbox shape
func validateMailbox(fl validator.FieldLevel) bool {
	return mailboxRegex.MatchString(fl.Field().String())
}

// validateTenDigits validates exactly 10 decimal digits, with no spaces,
// dashes or country code tolerated
func validateTenDigits(fl validator.FieldLevel) bool {
	return tenDigitsRegex.MatchString(fl.Field().String())
}
