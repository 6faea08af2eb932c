package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no preference matches a loaded language.
const DefaultLanguage = "en"

// Translator looks up translations loaded from an adapter.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
	matcher       language.Matcher
	langs         []string
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language returned by Match when nothing else fits.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key for missing translations. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger used to report missing translations.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranslator loads translations through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, trans := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if trans == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	t.translations = translations

	t.langs = make([]string, 0, len(translations))
	for lang := range translations {
		t.langs = append(t.langs, lang)
	}
	sort.Strings(t.langs)

	// Default language goes first so the matcher falls back to it.
	tags := []language.Tag{language.Make(t.defaultLang)}
	for _, lang := range t.langs {
		if lang != t.defaultLang {
			tags = append(tags, language.Make(lang))
		}
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.DebugContext(ctx, "translations loaded", "languages", t.langs)
	return t, nil
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	return append([]string(nil), t.langs...)
}

// Match picks the best loaded language for an Accept-Language style preference list.
func (t *Translator) Match(preferences ...string) string {
	var wanted []language.Tag
	for _, pref := range preferences {
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}
	if len(wanted) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(wanted...)
	if conf == language.No {
		return t.defaultLang
	}
	if idx == 0 {
		return t.defaultLang
	}
	return t.matcherLang(idx)
}

// matcherLang maps a matcher index back to a language code.
func (t *Translator) matcherLang(idx int) string {
	i := 0
	for _, lang := range t.langs {
		if lang == t.defaultLang {
			continue
		}
		i++
		if i == idx {
			return lang
		}
	}
	return t.defaultLang
}

// T translates key for lang. args are key/value pairs substituted into
// %{name} placeholders.
func (t *Translator) T(lang, key string, args ...string) string {
	langMap, ok := t.translations[lang]
	if !ok {
		langMap = t.translations[t.defaultLang]
	}

	if val, ok := lookup(langMap, key); ok {
		if s, ok := val.(string); ok {
			return substitute(s, args)
		}
	}

	t.logger.Warn("translation not found", "lang", lang, "key", key)
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// lookup traverses nested maps using a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	var current any = m

	for _, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
