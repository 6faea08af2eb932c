package sanitizer

import "regexp"

var httpSchemeRegex = regexp.MustCompile(`^https?:`)

// HasHTTPScheme reports whether s starts with "http:" or "https:".
// The match is case-sensitive.
func HasHTTPScheme(s string) bool {
	return httpSchemeRegex.MatchString(s)
}

// NormalizeWebsite prefixes s with "http://" unless it already carries an
// http or https scheme. Empty input stays empty.
func NormalizeWebsite(s string) string {
	if s == "" || HasHTTPScheme(s) {
		return s
	}
	return "http://" + s
}
