package comment

import (
	"context"
	"embed"
	"fmt"

	"github.com/dmitrymomot/comments/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewTranslator loads the bundled error messages.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"), opts...)
}

// Localize returns the user-facing message for err in lang. Errors that are
// not *Error fall back to err.Error().
func Localize(tr *i18n.Translator, lang string, err error) string {
	cerr, ok := AsError(err)
	if !ok || tr == nil {
		return err.Error()
	}

	vals := cerr.TranslationValues()
	return tr.T(lang, cerr.TranslationKey(),
		"field", fmt.Sprint(vals["field"]),
		"limit", fmt.Sprint(vals["limit"]),
		"code", fmt.Sprint(vals["code"]),
	)
}
