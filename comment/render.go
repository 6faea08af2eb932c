package comment

import (
	"errors"

	"github.com/dmitrymomot/comments/pkg/markup"
	"github.com/dmitrymomot/comments/pkg/sanitizer"
)

// Renderer turns a raw message into HTML that is safe to embed in a page:
// the text is escaped, converted from markdown, optionally passed through
// the typographer and finally filtered down to the allowed tags.
type Renderer struct {
	conv *markup.Converter
}

// NewRenderer builds a Renderer from the message options of cfg.
func NewRenderer(cfg Config) *Renderer {
	opts := []markup.Option{markup.WithTypographer(cfg.Message.Typographer)}
	if cfg.Message.AllowedTags != nil {
		opts = append(opts, markup.WithAllowedTags(cfg.Message.AllowedTags...))
	}
	return &Renderer{conv: markup.New(opts...)}
}

// Render returns the display form of raw.
func (r *Renderer) Render(raw string) (string, error) {
	out, err := r.conv.Render(sanitizer.EscapeMarkup(raw))
	if err != nil {
		return "", errors.Join(ErrRender, err)
	}
	return out, nil
}
