// Package i18n translates message keys into localized strings.
//
// Translations are loaded once through a TranslationAdapter (an in-memory map
// or YAML files in any fs.FS, embedded or on disk) and looked up with dotted
// keys. Named placeholders in the form %{name} are substituted from
// key/value pairs:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), files, "."))
//	msg := tr.T("en", "comment.errors.message_too_long", "limit", "1024")
//
// Match resolves an Accept-Language style preference list against the loaded
// languages using golang.org/x/text/language.
//
// A Translator is read-only after construction and safe for concurrent use.
package i18n
