// Command commentcheck validates a form-encoded comment submission read from
// stdin and prints the rendered comment, or the localized reason it was rejected.
//
//	echo 'name=Ann&message=Hello+*world*&subject=' | commentcheck -id 1 -fields fields.yaml
//
// Configuration is read from COMMENTS_* environment variables (and .env).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/dmitrymomot/comments/comment"
	"github.com/dmitrymomot/comments/pkg/config"
	"github.com/dmitrymomot/comments/pkg/i18n"
	"github.com/dmitrymomot/comments/pkg/logger"
)

type page string

func (p page) ID() string { return string(p) }

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var (
		id     = flag.Int64("id", 1, "comment id assigned by storage")
		pageID = flag.String("page", "", "content page id")
		fields = flag.String("fields", "", "YAML file with custom field types")
		lang   = flag.String("lang", "en", "language for error messages (Accept-Language syntax)")
	)
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *id, page(*pageID), *fields, *lang); err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, out io.Writer, id int64, p page, fieldsPath, lang string) error {
	ctx := context.Background()

	if err := config.LoadEnv(); err != nil {
		return err
	}

	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}
	level, err := logger.ParseLevel(app.LogLevel)
	if err != nil {
		return err
	}
	lg := logger.New(
		logger.WithEnvironment(app.Env, "commentcheck"),
		logger.WithLevel(level),
		logger.WithOutput(os.Stderr),
	)

	cfg, err := comment.LoadConfig()
	if err != nil {
		return err
	}

	types := &comment.FieldTypeRegistry{}
	if fieldsPath != "" {
		f, err := os.Open(fieldsPath)
		if err != nil {
			return fmt.Errorf("open field types: %w", err)
		}
		types, err = comment.LoadFieldTypes(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	tr, err := comment.NewTranslator(ctx, i18n.WithLogger(lg))
	if err != nil {
		return err
	}

	body, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read submission: %w", err)
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		return fmt.Errorf("parse submission: %w", err)
	}

	v := comment.NewValidator(cfg, comment.WithFieldTypes(types), comment.WithLogger(lg))
	c, err := v.Validate(comment.FormSource(form), p, id, time.Now())
	if err != nil {
		fmt.Fprintln(out, "rejected:", comment.Localize(tr, tr.Match(lang), err))
		return nil
	}

	msg, err := c.Message(comment.NewRenderer(cfg))
	if err != nil {
		return err
	}

	author := c.Name()
	if c.IsLinkable() {
		author = fmt.Sprintf(`<a href="%s" rel="nofollow">%s</a>`, c.Website(), c.Name())
	}
	if c.IsPreview() {
		fmt.Fprintln(out, "preview")
	}
	fmt.Fprintf(out, "#%d %s on %s\n", c.ID(), author, c.Date(""))
	for _, f := range c.CustomFields() {
		fmt.Fprintf(out, "%s: %s\n", f.Type().Label(), f.Value())
	}
	fmt.Fprint(out, msg)
	return nil
}
