package markup

import (
	"bytes"
	"errors"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrConvert is returned when the markdown converter fails.
var ErrConvert = errors.New("markup: conversion failed")

// DefaultAllowedTags is used when no tags are configured.
var DefaultAllowedTags = []string{
	"p", "br", "a", "em", "strong", "code", "pre",
	"blockquote", "ul", "ol", "li", "del",
}

// Option configures a Converter.
type Option func(*options)

type options struct {
	typographer bool
	allowedTags []string
	hardWraps   bool
}

// WithTypographer enables the typographic pass.
func WithTypographer(enabled bool) Option {
	return func(o *options) { o.typographer = enabled }
}

// WithAllowedTags sets the tags that survive filtering. Names are matched
// case-insensitively and may be given with or without angle brackets.
func WithAllowedTags(tags ...string) Option {
	return func(o *options) {
		o.allowedTags = normalizeTags(tags)
	}
}

// WithHardWraps renders single newlines as <br>. Enabled by default.
func WithHardWraps(enabled bool) Option {
	return func(o *options) { o.hardWraps = enabled }
}

// Converter renders markdown and filters the resulting HTML.
type Converter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	tags   []string
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	o := options{
		allowedTags: DefaultAllowedTags,
		hardWraps:   true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	exts := []goldmark.Extender{extension.Strikethrough, extension.Linkify}
	if o.typographer {
		exts = append(exts, extension.Typographer)
	}

	var rendererOpts []goldmark.Option
	if o.hardWraps {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithHardWraps()))
	}

	return &Converter{
		md:     goldmark.New(append([]goldmark.Option{goldmark.WithExtensions(exts...)}, rendererOpts...)...),
		policy: newPolicy(o.allowedTags),
		tags:   o.allowedTags,
	}
}

// AllowedTags returns the tags the filter keeps.
func (c *Converter) AllowedTags() []string {
	return slices.Clone(c.tags)
}

// ToHTML converts markdown source to HTML without filtering.
func (c *Converter) ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(src), &buf); err != nil {
		return "", errors.Join(ErrConvert, err)
	}
	return buf.String(), nil
}

// Filter removes every tag outside the allow-list, keeping text content.
func (c *Converter) Filter(htmlContent string) string {
	return c.policy.Sanitize(htmlContent)
}

// Render converts src and filters the result.
func (c *Converter) Render(src string) (string, error) {
	out, err := c.ToHTML(src)
	if err != nil {
		return "", err
	}
	return c.Filter(out), nil
}

func newPolicy(tags []string) *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	if len(tags) == 0 {
		return p
	}

	p.AllowElements(tags...)
	if slices.Contains(tags, "a") {
		p.AllowAttrs("href").OnElements("a")
		p.AllowStandardURLs()
		p.RequireNoFollowOnLinks(true)
	}
	if slices.Contains(tags, "ol") {
		p.AllowAttrs("start").Matching(bluemonday.Integer).OnElements("ol")
	}
	return p
}

// normalizeTags accepts "a", "<a>" or a PHP-style "<p><a><em>" list.
func normalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		for _, name := range strings.FieldsFunc(t, func(r rune) bool {
			return r == '<' || r == '>' || r == ',' || r == ' ' || r == '/'
		}) {
			name = strings.ToLower(name)
			if !slices.Contains(out, name) {
				out = append(out, name)
			}
		}
	}
	return out
}
