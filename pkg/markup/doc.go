// Package markup converts comment text written in a CommonMark dialect into
// HTML and filters the result against an allow-list of tags.
//
// Conversion is done by github.com/yuin/goldmark with the strikethrough and
// linkify extensions, plus the typographer extension when enabled (straight
// quotes, dashes and ellipses become their typographic forms). Raw HTML in
// the source is never passed through. Filtering is done by a
// github.com/microcosm-cc/bluemonday policy built from the allowed tag names;
// disallowed tags are dropped while their text is kept.
//
//	c := markup.New(markup.WithTypographer(true), markup.WithAllowedTags("p", "em", "a"))
//	out, err := c.Render("*hello* -- [site](https://example.com)")
//
// A Converter is immutable and safe for concurrent use.
package markup
