package comment

import (
	"errors"
	"fmt"
)

// Kind classifies why a submission was rejected.
type Kind int

const (
	KindSpamSuspected Kind = iota + 1
	KindRequiredFieldMissing
	KindInvalidID
	KindFieldTooLong
	KindInvalidEmail
	KindUnsafeWebsite
	KindEmptyMessage
	KindMessageTooLong
)

var kindNames = map[Kind]string{
	KindSpamSuspected:        "spam_suspected",
	KindRequiredFieldMissing: "required_field_missing",
	KindInvalidID:            "invalid_id",
	KindFieldTooLong:         "field_too_long",
	KindInvalidEmail:         "invalid_email",
	KindUnsafeWebsite:        "unsafe_website",
	KindEmptyMessage:         "empty_message",
	KindMessageTooLong:       "message_too_long",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Stable error codes.
const (
	CodeIDNotInteger   = 100
	CodeIDNotPositive  = 101
	CodeNameRequired   = 301
	CodeNameTooLong    = 302
	CodeEmailRequired  = 303
	CodeEmailInvalid   = 304
	CodeEmailTooLong   = 305
	CodeWebsiteUnsafe  = 306
	CodeWebsiteTooLong = 307
	CodeMessageEmpty   = 308
	CodeMessageTooLong = 309
	CodeSpamSuspected  = 310
	CodeFieldRequired  = 312
)

// Error is a rejected submission. Field names the offending field (the
// field title for custom fields) and Limit carries the configured maximum
// for length failures.
type Error struct {
	Kind  Kind
	Code  int
	Field string
	Limit int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindSpamSuspected:
		return "Comment must be written by a human being."
	case KindRequiredFieldMissing:
		return fmt.Sprintf("The %s field is required.", fieldLabel(e.Field))
	case KindInvalidID:
		if e.Code == CodeIDNotInteger {
			return "The ID of a comment must be of the type integer."
		}
		return "The ID of a comment must be bigger than 0."
	case KindFieldTooLong:
		return fmt.Sprintf("The %s is too long.", fieldLabel(e.Field))
	case KindInvalidEmail:
		return "The email address is not valid."
	case KindUnsafeWebsite:
		return "The website address may not contain JavaScript code."
	case KindEmptyMessage:
		return "The message must not be empty."
	case KindMessageTooLong:
		return fmt.Sprintf("The message is too long. (A maximum of %d characters is allowed.)", e.Limit)
	default:
		return "invalid comment"
	}
}

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// TranslationKey returns the i18n key of the error.
func (e *Error) TranslationKey() string {
	return "comment.errors." + e.Kind.String()
}

// TranslationValues returns the placeholders for TranslationKey.
func (e *Error) TranslationValues() map[string]any {
	return map[string]any{
		"field": fieldLabel(e.Field),
		"limit": e.Limit,
		"code":  e.Code,
	}
}

func fieldLabel(field string) string {
	switch field {
	case fieldEmail:
		return "email address"
	case fieldWebsite:
		return "website address"
	default:
		return field
	}
}

var (
	ErrSpamSuspected        = &Error{Kind: KindSpamSuspected}
	ErrRequiredFieldMissing = &Error{Kind: KindRequiredFieldMissing}
	ErrInvalidID            = &Error{Kind: KindInvalidID}
	ErrFieldTooLong         = &Error{Kind: KindFieldTooLong}
	ErrInvalidEmail         = &Error{Kind: KindInvalidEmail}
	ErrUnsafeWebsite        = &Error{Kind: KindUnsafeWebsite}
	ErrEmptyMessage         = &Error{Kind: KindEmptyMessage}
	ErrMessageTooLong       = &Error{Kind: KindMessageTooLong}
)

// AsError extracts the *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Field type registry errors.
var (
	ErrInvalidFieldType   = errors.New("comment: field type needs a name")
	ErrDuplicateFieldType = errors.New("comment: duplicate field type")
	ErrParseFieldTypes    = errors.New("comment: failed to parse field types")
)

// ErrRender is returned when the message cannot be converted to HTML.
var ErrRender = errors.New("comment: failed to render message")
