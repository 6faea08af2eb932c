package comment

import "github.com/dmitrymomot/comments/pkg/sanitizer"

// CustomField is the value of a registered field type on one comment.
type CustomField struct {
	typ   FieldType
	value string
	page  ContentPage
}

// NewCustomField binds a trusted value to its type. Use it when rebuilding
// comments from storage; submissions go through Validator.
func NewCustomField(t FieldType, value string, page ContentPage) CustomField {
	return CustomField{typ: t, value: value, page: page}
}

func (f CustomField) Type() FieldType { return f.typ }

func (f CustomField) Name() string { return f.typ.Name }

// RawValue returns the value as submitted.
func (f CustomField) RawValue() string { return f.value }

// Value returns the value escaped for HTML.
func (f CustomField) Value() string { return sanitizer.EscapeHTML(f.value) }

func (f CustomField) ContentPage() ContentPage { return f.page }

// IsEmpty reports whether no value was submitted.
func (f CustomField) IsEmpty() bool { return f.value == "" }
