package comment

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/comments/pkg/logger"
	"github.com/dmitrymomot/comments/pkg/sanitizer"
	"github.com/dmitrymomot/comments/pkg/validator"
)

// Validator turns raw submissions into comments.
// It is immutable and safe for concurrent use.
type Validator struct {
	cfg    Config
	fields *FieldTypeRegistry
	logger *slog.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithLogger sets the logger used to report rejected submissions.
func WithLogger(l *slog.Logger) ValidatorOption {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithFieldTypes registers custom field types. Without it no custom fields are read.
func WithFieldTypes(r *FieldTypeRegistry) ValidatorOption {
	return func(v *Validator) {
		if r != nil {
			v.fields = r
		}
	}
}

// NewValidator creates a Validator for cfg.
func NewValidator(cfg Config, opts ...ValidatorOption) *Validator {
	v := &Validator{
		cfg:    cfg,
		fields: &FieldTypeRegistry{},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks a submission and builds the comment. id is the identifier
// assigned by storage and must be a positive integer of any Go integer type.
//
// Checks run in a fixed order and the first failure is returned as *Error:
// honeypot, required custom fields, id, name, email, website, message.
func (v *Validator) Validate(src Source, page ContentPage, id any, postedAt time.Time) (*Comment, error) {
	cfg := v.cfg

	// Nothing else is read from a submission that fails the honeypot.
	if cfg.Honeypot.Enabled && !sanitizer.IsHuman(value(src, cfg.Form.Honeypot), cfg.Honeypot.HumanValue) {
		err := &Error{Kind: KindSpamSuspected, Code: CodeSpamSuspected}
		v.logger.Warn("comment rejected as spam", pageAttr(page), logger.Code(err.Code))
		return nil, err
	}

	name := sanitizer.Trim(value(src, cfg.Form.Name))
	email := sanitizer.Trim(value(src, cfg.Form.Email))
	website := sanitizer.Trim(value(src, cfg.Form.Website))
	message := sanitizer.Trim(value(src, cfg.Form.Message))
	preview := present(src, cfg.Form.Preview)

	fields := make([]CustomField, 0, v.fields.Len())
	for _, t := range v.fields.types {
		val, _ := src.Lookup(t.Key())
		rule := validator.Required(t.Name, val).
			When(t.Required).
			WithCause(&Error{Kind: KindRequiredFieldMissing, Code: CodeFieldRequired, Field: t.Label()})
		if err := validator.First(rule); err != nil {
			return nil, v.reject(page, err)
		}
		fields = append(fields, NewCustomField(t, val, page))
	}

	n, isInt := validator.Integer(fieldID, id)
	err := validator.First(
		isInt.WithCause(&Error{Kind: KindInvalidID, Code: CodeIDNotInteger, Field: fieldID}),
		validator.MinNum(fieldID, n, 1).
			WithCause(&Error{Kind: KindInvalidID, Code: CodeIDNotPositive, Field: fieldID}),

		validator.Required(fieldName, name).When(cfg.Name.Required).
			WithCause(&Error{Kind: KindRequiredFieldMissing, Code: CodeNameRequired, Field: fieldName}),
		validator.MaxLen(fieldName, name, cfg.Name.MaxLength).
			WithCause(tooLong(CodeNameTooLong, fieldName, cfg.Name.MaxLength)),

		validator.Required(fieldEmail, email).When(cfg.Email.Required).
			WithCause(&Error{Kind: KindRequiredFieldMissing, Code: CodeEmailRequired, Field: fieldEmail}),
		validator.ValidEmail(fieldEmail, email).When(email != "").
			WithCause(&Error{Kind: KindInvalidEmail, Code: CodeEmailInvalid, Field: fieldEmail}),
		validator.MaxLen(fieldEmail, email, cfg.Email.MaxLength).
			WithCause(tooLong(CodeEmailTooLong, fieldEmail, cfg.Email.MaxLength)),

		validator.DoesNotMatch(fieldWebsite, website, sanitizer.ScriptScheme(), "JavaScript code").
			WithCause(&Error{Kind: KindUnsafeWebsite, Code: CodeWebsiteUnsafe, Field: fieldWebsite}),
		validator.MaxLen(fieldWebsite, website, cfg.Website.MaxLength).
			WithCause(tooLong(CodeWebsiteTooLong, fieldWebsite, cfg.Website.MaxLength)),

		validator.Required(fieldMessage, message).
			WithCause(&Error{Kind: KindEmptyMessage, Code: CodeMessageEmpty, Field: fieldMessage}),
		validator.MaxLen(fieldMessage, message, cfg.Message.MaxLength).
			WithCause(&Error{Kind: KindMessageTooLong, Code: CodeMessageTooLong, Field: fieldMessage, Limit: cfg.Message.MaxLength}),
	)
	if err != nil {
		return nil, v.reject(page, err)
	}

	return New(Params{
		Page:         page,
		ID:           n,
		Name:         name,
		Email:        email,
		Website:      website,
		Message:      message,
		CustomFields: fields,
		PostedAt:     postedAt,
		Preview:      preview,
	}), nil
}

func tooLong(code int, field string, limit int) *Error {
	return &Error{Kind: KindFieldTooLong, Code: code, Field: field, Limit: limit}
}

// reject unwraps the comment error carried by a failed rule and logs it.
func (v *Validator) reject(page ContentPage, err error) error {
	cerr, ok := AsError(err)
	if !ok {
		return err
	}
	v.logger.Debug("comment rejected",
		pageAttr(page),
		logger.Field(cerr.Field),
		logger.Code(cerr.Code),
		logger.Error(cerr),
	)
	return cerr
}

func pageAttr(page ContentPage) slog.Attr {
	if page == nil {
		return slog.Attr{}
	}
	return logger.PageID(page.ID())
}
