package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Code records a numeric error code under the key "code".
func Code(code int) slog.Attr {
	return slog.Int("code", code)
}

// CommentID records the comment identifier under the key "comment_id".
func CommentID(id int64) slog.Attr {
	return slog.Int64("comment_id", id)
}

// PageID records the content page identifier under the key "page_id".
// Empty ids produce an empty Attr.
func PageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("page_id", id)
}
