package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
// Err optionally holds a domain error exposed through Unwrap.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Err               error
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithCause returns a copy of the rule whose error wraps cause.
func (r Rule) WithCause(cause error) Rule {
	r.Error.Err = cause
	return r
}

// When returns the rule unchanged if cond holds, otherwise a rule that always passes.
// It keeps conditional checks in place inside an ordered rule list.
func (r Rule) When(cond bool) Rule {
	if cond {
		return r
	}
	return Rule{Check: func() bool { return true }, Error: r.Error}
}

// Apply executes all rules and returns every failure.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// First executes rules in order and returns the error of the first failing one.
// Rules after the failing one are not evaluated.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// ExtractValidationErrors extracts ValidationErrors from an error.
// A single ValidationError is returned as a one-element collection.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var many ValidationErrors
	if errors.As(err, &many) {
		return many
	}

	var one ValidationError
	if errors.As(err, &one) {
		return ValidationErrors{one}
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
