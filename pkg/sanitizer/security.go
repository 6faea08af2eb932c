package sanitizer

import (
	"crypto/subtle"
	"html"
	"regexp"
	"strings"
)

var scriptSchemeRegex = regexp.MustCompile(`(?i)^\s*javascript:`)

// markupEscaper encodes only the characters that open markup or entities.
// Quotes are left alone so the typographer can still curl them.
var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeHTML escapes HTML special characters, quotes included, for use in
// element content and attribute values.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// EscapeMarkup escapes "&", "<" and ">" so that text handed to a markup
// converter cannot smuggle raw HTML through it.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// ScriptScheme returns the pattern matching a leading javascript: scheme,
// optionally preceded by whitespace.
func ScriptScheme() *regexp.Regexp {
	return scriptSchemeRegex
}

// HasScriptScheme reports whether s starts with a javascript: scheme,
// ignoring case and leading whitespace.
func HasScriptScheme(s string) bool {
	return scriptSchemeRegex.MatchString(s)
}

// IsHuman compares a submitted honeypot value with the expected sentinel in
// constant time.
func IsHuman(submitted, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(expected)) == 1
}
