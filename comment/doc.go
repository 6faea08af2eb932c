// Package comment validates, normalizes and renders a single comment
// submitted on a content page.
//
// A Validator reads a raw submission through a Source and either returns a
// *Comment or an *Error describing the first rule the submission broke.
// Rules are checked in a fixed order, which decides the error users see:
//
//  1. honeypot (when enabled; no other field is read on failure)
//  2. required custom fields, in registration order
//  3. id: integer type, then greater than zero
//  4. name: required, max length
//  5. email: required, valid address, max length
//  6. website: no javascript: scheme, max length
//  7. message: not empty, max length
//
// New builds a Comment from trusted values, such as those loaded from
// storage, and only normalizes them: tags are stripped from author fields,
// empty email and website become absent, and a website without an http or
// https scheme gets "http://" prepended.
//
// A Renderer produces the HTML form of a message. Accessors without the Raw
// prefix return HTML-escaped values; the Raw ones must never be written to a
// page unescaped.
//
//	v := comment.NewValidator(cfg, comment.WithFieldTypes(types))
//	c, err := v.Validate(comment.FormSource(r.PostForm), page, nextID, time.Now())
//	if err != nil {
//	    msg := comment.Localize(tr, lang, err)
//	    ...
//	}
//	html, err := c.Message(comment.NewRenderer(cfg))
//
// Persistence, threading and HTTP handling are left to the caller.
package comment
