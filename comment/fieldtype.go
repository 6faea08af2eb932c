package comment

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// FieldType describes an extra field collected with every comment.
type FieldType struct {
	// Name identifies the field on the comment.
	Name string `yaml:"name"`
	// Title is the human-readable label used in error messages.
	Title string `yaml:"title"`
	// PostKey is the submission key. Defaults to Name.
	PostKey  string `yaml:"post_key"`
	Required bool   `yaml:"required"`
}

// Key returns the submission key of the field.
func (t FieldType) Key() string {
	if t.PostKey != "" {
		return t.PostKey
	}
	return t.Name
}

// Label returns the title, falling back to the name.
func (t FieldType) Label() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

// FieldTypeRegistry is the ordered list of registered field types.
// The zero value is an empty registry.
type FieldTypeRegistry struct {
	types []FieldType
}

// NewFieldTypeRegistry registers types in the given order. Names must be
// non-empty and unique.
func NewFieldTypeRegistry(types ...FieldType) (*FieldTypeRegistry, error) {
	r := &FieldTypeRegistry{types: make([]FieldType, 0, len(types))}
	for _, t := range types {
		if t.Name == "" {
			return nil, ErrInvalidFieldType
		}
		if _, ok := r.Get(t.Name); ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFieldType, t.Name)
		}
		r.types = append(r.types, t)
	}
	return r, nil
}

// LoadFieldTypes reads a YAML document of the form
//
//	fields:
//	  - name: company
//	    title: Company
//	    required: true
func LoadFieldTypes(r io.Reader) (*FieldTypeRegistry, error) {
	var doc struct {
		Fields []FieldType `yaml:"fields"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrParseFieldTypes, err)
	}
	return NewFieldTypeRegistry(doc.Fields...)
}

// Types returns the registered types in registration order.
func (r *FieldTypeRegistry) Types() []FieldType {
	if r == nil {
		return nil
	}
	return slices.Clone(r.types)
}

// Get returns the type registered under name.
func (r *FieldTypeRegistry) Get(name string) (FieldType, bool) {
	if r == nil {
		return FieldType{}, false
	}
	for _, t := range r.types {
		if t.Name == name {
			return t, true
		}
	}
	return FieldType{}, false
}

// Len returns the number of registered types.
func (r *FieldTypeRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.types)
}
