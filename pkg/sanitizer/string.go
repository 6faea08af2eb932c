package sanitizer

import (
	"regexp"
	"strings"
)

var (
	tagRegex     = regexp.MustCompile(`<[^>]*>`)
	commentRegex = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// StripTags removes HTML tags and comments. Entities are left untouched, so
// "&lt;b&gt;" stays encoded and text is never turned back into markup.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	s = commentRegex.ReplaceAllString(s, "")
	return tagRegex.ReplaceAllString(s, "")
}

// CleanText strips tags and trims. It is the normalisation applied to
// single-line author fields.
var CleanText = Compose(StripTags, Trim)
