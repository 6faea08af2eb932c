// Package validator provides small, composable validation rules.
//
// A Rule couples a boolean Check with translation-friendly error metadata.
// Rules are evaluated either with Apply, which aggregates every failure into
// ValidationErrors, or with First, which stops at the first failing rule and
// reports only that one. First is the building block for pipelines where
// the order of checks decides which error the user sees.
//
// # Usage
//
//	err := validator.First(
//	    validator.Required("name", name),
//	    validator.MaxLen("name", name, 64),
//	    validator.ValidEmail("email", email),
//	)
//
// A rule may carry a domain error via WithCause; the ValidationError returned
// by First unwraps to it, so callers can match it with errors.Is/As:
//
//	rule := validator.Required("email", email).WithCause(ErrEmailRequired)
//
// # Error Handling
//
// ValidationError and ValidationErrors both implement error. ExtractValidationErrors
// and IsValidationError recognise either form.
//
// The package holds no state and is safe for concurrent use.
package validator
