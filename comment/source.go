package comment

import "net/url"

// Source is the read-only submission the pipeline pulls values from.
type Source interface {
	// Lookup returns the submitted value for key and whether the key was present.
	Lookup(key string) (string, bool)
}

// FormSource adapts parsed form data.
type FormSource url.Values

func (s FormSource) Lookup(key string) (string, bool) {
	vals, ok := s[key]
	if !ok {
		return "", false
	}
	if len(vals) == 0 {
		return "", true
	}
	return vals[0], true
}

// MapSource adapts a plain map.
type MapSource map[string]string

func (s MapSource) Lookup(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

func value(src Source, key string) string {
	if key == "" {
		return ""
	}
	v, _ := src.Lookup(key)
	return v
}

func present(src Source, key string) bool {
	if key == "" {
		return false
	}
	_, ok := src.Lookup(key)
	return ok
}
