package validation

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxCategoryNameLength bounds category names in runes
	MaxCategoryNameLength = 64
	// MaxKeywordLength bounds keywords in runes
	MaxKeywordLength = 100
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category_name", validateCategoryName)
	_ = v.RegisterValidation("keyword", validateKeyword)
	_ = v.RegisterValidation("input_format", validateInputFormat)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateCategoryName accepts names that are non-blank after trimming, fit
// MaxCategoryNameLength and contain no control characters
func validateCategoryName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" || utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return false
	}
	return !containsControl(name)
}

// validateKeyword only rejects what can never be stored. A keyword that is
// blank after trimming is accepted here and reported as not added.
func validateKeyword(fl validator.FieldLevel) bool {
	keyword := fl.Field().String()
	if utf8.RuneCountInString(strings.TrimSpace(keyword)) > MaxKeywordLength {
		return false
	}
	return !containsControl(keyword)
}

func validateInputFormat(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "", "csv", "xlsx":
		return true
	default:
		return false
	}
}

func containsControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}
