package comment

import (
	"slices"
	"time"

	"github.com/dmitrymomot/comments/pkg/sanitizer"
)

const (
	fieldID      = "id"
	fieldName    = "name"
	fieldEmail   = "email"
	fieldWebsite = "website"
	fieldMessage = "message"
)

// Params are the raw values a Comment is built from.
type Params struct {
	Page         ContentPage
	ID           int64
	Name         string
	Email        string
	Website      string
	Message      string
	CustomFields []CustomField
	PostedAt     time.Time
	Preview      bool
}

// Comment is a single immutable comment on a content page.
type Comment struct {
	page     ContentPage
	id       int64
	name     string
	email    string
	website  string
	message  string
	fields   []CustomField
	postedAt time.Time
	preview  bool
}

// New normalizes p into a Comment. It never fails: use it for values that
// passed Validator or come from trusted storage.
func New(p Params) *Comment {
	return &Comment{
		page:     p.Page,
		id:       p.ID,
		name:     sanitizer.CleanText(p.Name),
		email:    sanitizer.CleanText(p.Email),
		website:  sanitizer.NormalizeWebsite(sanitizer.CleanText(p.Website)),
		message:  sanitizer.Trim(p.Message),
		fields:   slices.Clone(p.CustomFields),
		postedAt: p.PostedAt,
		preview:  p.Preview,
	}
}

// ID is unique per content page and starts at 1.
func (c *Comment) ID() int64 { return c.id }

// ContentPage returns the page the comment belongs to.
func (c *Comment) ContentPage() ContentPage { return c.page }

// Name returns the author name escaped for HTML.
func (c *Comment) Name() string { return sanitizer.EscapeHTML(c.name) }

func (c *Comment) RawName() string { return c.name }

// Email returns the escaped address, or "" when none was given.
func (c *Comment) Email() string { return sanitizer.EscapeHTML(c.email) }

// RawEmail returns the address and whether one was given.
func (c *Comment) RawEmail() (string, bool) { return c.email, c.email != "" }

// Website returns the escaped website, or "" when none was given.
func (c *Comment) Website() string { return sanitizer.EscapeHTML(c.website) }

// RawWebsite returns the website and whether one was given. A present
// website always starts with http:// or https://.
func (c *Comment) RawWebsite() (string, bool) { return c.website, c.website != "" }

// RawMessage returns the message source. It is not safe to embed in a page;
// use Message for display.
func (c *Comment) RawMessage() string { return c.message }

// Message renders the message for display.
func (c *Comment) Message(r *Renderer) (string, error) {
	return r.Render(c.message)
}

// CustomFields returns the custom field values in registration order.
func (c *Comment) CustomFields() []CustomField { return slices.Clone(c.fields) }

// CustomField returns the raw value of the named custom field.
func (c *Comment) CustomField(name string) (string, bool) {
	for _, f := range c.fields {
		if f.Name() == name {
			return f.RawValue(), true
		}
	}
	return "", false
}

func (c *Comment) PostedAt() time.Time { return c.postedAt }

// Date formats PostedAt with layout, defaulting to "2006-01-02".
func (c *Comment) Date(layout string) string {
	if layout == "" {
		layout = time.DateOnly
	}
	return c.postedAt.Format(layout)
}

// IsPreview reports whether the comment is an unsaved preview.
func (c *Comment) IsPreview() bool { return c.preview }

// IsLinkable reports whether the author name should link to the website.
func (c *Comment) IsLinkable() bool { return c.website != "" }
