// Package sanitizer provides small, stateless helpers for cleaning untrusted
// text before it is stored or displayed.
//
// The helpers fall into three groups:
//
//   - Strings: trimming and tag stripping.
//   - Format: normalisation of user supplied website addresses.
//   - Security: HTML escaping, detection of script-executing URL schemes and
//     the honeypot comparison used to reject automated form submissions.
//
// Apply and Compose build pipelines out of the string helpers:
//
//	clean := sanitizer.Compose(sanitizer.StripTags, sanitizer.Trim)
//	name := clean("  <b>Ann</b> ") // "Ann"
//
// None of the helpers returns an error and all of them are safe for
// concurrent use.
package sanitizer
