package comment_test

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/comments/comment"
	"github.com/dmitrymomot/comments/pkg/logger"
)

func validSubmission() comment.MapSource {
	return comment.MapSource{
		"name":    "  Jane <b>Doe</b> ",
		"email":   " jane@example.com ",
		"website": "example.com",
		"message": "  Nice *post*!  ",
		"subject": "",
	}
}

func with(src comment.MapSource, kv ...string) comment.MapSource {
	out := make(comment.MapSource, len(src))
	for k, v := range src {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = kv[i+1]
	}
	return out
}

func without(src comment.MapSource, keys ...string) comment.MapSource {
	out := with(src)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func requireKind(t *testing.T, err error, sentinel *comment.Error) *comment.Error {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, sentinel)
	cerr, ok := comment.AsError(err)
	require.True(t, ok)
	return cerr
}

func TestValidate_Success(t *testing.T) {
	v := comment.NewValidator(comment.DefaultConfig())

	c, err := v.Validate(validSubmission(), testPage("p"), 7, postedAt)
	require.NoError(t, err)

	assert.Equal(t, int64(7), c.ID())
	assert.Equal(t, "Jane Doe", c.RawName())
	email, ok := c.RawEmail()
	assert.True(t, ok)
	assert.Equal(t, "jane@example.com", email)
	website, ok := c.RawWebsite()
	assert.True(t, ok)
	assert.Equal(t, "http://example.com", website)
	assert.Equal(t, "Nice *post*!", c.RawMessage())
	assert.False(t, c.IsPreview())
	assert.Equal(t, postedAt, c.PostedAt())
}

func TestValidate_OptionalFieldsAbsent(t *testing.T) {
	v := comment.NewValidator(comment.DefaultConfig())

	c, err := v.Validate(without(validSubmission(), "email", "website"), testPage("p"), 1, postedAt)
	require.NoError(t, err)

	_, ok := c.RawEmail()
	assert.False(t, ok)
	_, ok = c.RawWebsite()
	assert.False(t, ok)
	assert.False(t, c.IsLinkable())
}

func TestValidate_Preview(t *testing.T) {
	v := comment.NewValidator(comment.DefaultConfig())

	c, err := v.Validate(with(validSubmission(), "preview", ""), testPage("p"), 1, postedAt)
	require.NoError(t, err)
	assert.True(t, c.IsPreview(), "presence of the preview key marks a preview")
}

func TestValidate_FormSource(t *testing.T) {
	form := url.Values{}
	form.Set("name", "Ann")
	form.Set("message", "hello")
	form.Set("subject", "")

	v := comment.NewValidator(comment.DefaultConfig())
	c, err := v.Validate(comment.FormSource(form), testPage("p"), 1, postedAt)
	require.NoError(t, err)
	assert.Equal(t, "Ann", c.RawName())
}

func TestValidate_Honeypot(t *testing.T) {
	t.Run("filled honeypot is spam", func(t *testing.T) {
		v := comment.NewValidator(comment.DefaultConfig())
		_, err := v.Validate(with(validSubmission(), "subject", "buy now"), testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrSpamSuspected)
		assert.Equal(t, comment.CodeSpamSuspected, cerr.Code)
	})

	t.Run("spam wins over every other failure", func(t *testing.T) {
		v := comment.NewValidator(comment.DefaultConfig())
		src := comment.MapSource{"subject": "bot", "email": "not-an-email", "message": ""}
		_, err := v.Validate(src, testPage("p"), -1, postedAt)
		requireKind(t, err, comment.ErrSpamSuspected)
		assert.NotErrorIs(t, err, comment.ErrInvalidEmail)
		assert.NotErrorIs(t, err, comment.ErrInvalidID)
	})

	t.Run("no other field is read", func(t *testing.T) {
		v := comment.NewValidator(comment.DefaultConfig())
		src := &recordingSource{values: map[string]string{"subject": "bot"}}
		_, err := v.Validate(src, testPage("p"), 1, postedAt)
		requireKind(t, err, comment.ErrSpamSuspected)
		assert.Equal(t, []string{"subject"}, src.keys)
	})

	t.Run("custom human value", func(t *testing.T) {
		cfg := comment.DefaultConfig()
		cfg.Honeypot.HumanValue = "human"

		v := comment.NewValidator(cfg)
		_, err := v.Validate(validSubmission(), testPage("p"), 1, postedAt)
		requireKind(t, err, comment.ErrSpamSuspected)

		_, err = v.Validate(with(validSubmission(), "subject", "human"), testPage("p"), 1, postedAt)
		assert.NoError(t, err)
	})

	t.Run("disabled honeypot is ignored", func(t *testing.T) {
		cfg := comment.DefaultConfig()
		cfg.Honeypot.Enabled = false

		v := comment.NewValidator(cfg)
		_, err := v.Validate(with(validSubmission(), "subject", "anything"), testPage("p"), 1, postedAt)
		assert.NoError(t, err)
	})
}

type recordingSource struct {
	values map[string]string
	keys   []string
}

func (s *recordingSource) Lookup(key string) (string, bool) {
	s.keys = append(s.keys, key)
	v, ok := s.values[key]
	return v, ok
}

func TestValidate_InvalidID(t *testing.T) {
	v := comment.NewValidator(comment.DefaultConfig())

	tests := []struct {
		name string
		id   any
		code int
	}{
		{"zero", 0, comment.CodeIDNotPositive},
		{"negative", -5, comment.CodeIDNotPositive},
		{"negative int64", int64(-1), comment.CodeIDNotPositive},
		{"float", 1.5, comment.CodeIDNotInteger},
		{"string", "3", comment.CodeIDNotInteger},
		{"nil", nil, comment.CodeIDNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(validSubmission(), testPage("p"), tt.id, postedAt)
			cerr := requireKind(t, err, comment.ErrInvalidID)
			assert.Equal(t, tt.code, cerr.Code)
		})
	}

	t.Run("reported before a too long name", func(t *testing.T) {
		src := with(validSubmission(), "name", strings.Repeat("x", 100))
		_, err := v.Validate(src, testPage("p"), 0, postedAt)
		requireKind(t, err, comment.ErrInvalidID)
	})

	t.Run("other integer kinds are accepted", func(t *testing.T) {
		for _, id := range []any{int8(1), int32(2), uint(3), uint64(4)} {
			_, err := v.Validate(validSubmission(), testPage("p"), id, postedAt)
			assert.NoError(t, err, "%T", id)
		}
	})
}

func TestValidate_Name(t *testing.T) {
	v := comment.NewValidator(comment.DefaultConfig())

	t.Run("required", func(t *testing.T) {
		_, err := v.Validate(with(validSubmission(), "name", "   "), testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrRequiredFieldMissing)
		assert.Equal(t, "name", cerr.Field)
		assert.Equal(t, comment.CodeNameRequired, cerr.Code)
		assert.Equal(t, "The name field is required.", cerr.Error())
	})

	t.Run("missing name wins over empty message", func(t *testing.T) {
		src := with(validSubmission(), "name", "", "message", "")
		_, err := v.Validate(src, testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrRequiredFieldMissing)
		assert.Equal(t, "name", cerr.Field)
		assert.NotErrorIs(t, err, comment.ErrEmptyMessage)
	})

	t.Run("missing name wins over invalid email", func(t *testing.T) {
		src := with(validSubmission(), "name", "", "email", "nope")
		_, err := v.Validate(src, testPage("p"), 1, postedAt)
		requireKind(t, err, comment.ErrRequiredFieldMissing)
	})

	t.Run("optional name may be empty", func(t *testing.T) {
		cfg := comment.DefaultConfig()
		cfg.Name.Required = false
		c, err := comment.NewValidator(cfg).Validate(without(validSubmission(), "name"), testPage("p"), 1, postedAt)
		require.NoError(t, err)
		assert.Empty(t, c.RawName())
	})

	t.Run("too long", func(t *testing.T) {
		_, err := v.Validate(with(validSubmission(), "name", strings.Repeat("n", 65)), testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrFieldTooLong)
		assert.Equal(t, "name", cerr.Field)
		assert.Equal(t, 64, cerr.Limit)
		assert.Equal(t, comment.CodeNameTooLong, cerr.Code)
	})

	t.Run("at the limit", func(t *testing.T) {
		_, err := v.Validate(with(validSubmission(), "name", strings.Repeat("n", 64)), testPage("p"), 1, postedAt)
		assert.NoError(t, err)
	})
}

func TestValidate_Email(t *testing.T) {
	v := comment.NewValidator(comment.DefaultConfig())

	t.Run("required when configured", func(t *testing.T) {
		cfg := comment.DefaultConfig()
		cfg.Email.Required = true
		_, err := comment.NewValidator(cfg).Validate(without(validSubmission(), "email"), testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrRequiredFieldMissing)
		assert.Equal(t, "email", cerr.Field)
		assert.Equal(t, "The email address field is required.", cerr.Error())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := v.Validate(with(validSubmission(), "email", "jane@"), testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrInvalidEmail)
		assert.Equal(t, comment.CodeEmailInvalid, cerr.Code)
	})

	t.Run("invalid email wins over unsafe website", func(t *testing.T) {
		src := with(validSubmission(), "email", "nope", "website", "javascript:alert(1)")
		_, err := v.Validate(src, testPage("p"), 1, postedAt)
		requireKind(t, err, comment.ErrInvalidEmail)
	})

	t.Run("too long", func(t *testing.T) {
		long := strings.Repeat("a", 60) + "@example.com"
		_, err := v.Validate(with(validSubmission(), "email", long), testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrFieldTooLong)
		assert.Equal(t, "email", cerr.Field)
		assert.Equal(t, "The email address is too long.", cerr.Error())
	})
}

func TestValidate_Website(t *testing.T) {
	v := comment.NewValidator(comment.DefaultConfig())

	for _, site := range []string{"javascript:alert(1)", "  javascript:alert(1)", "JaVaScRiPt:void(0)"} {
		t.Run(site, func(t *testing.T) {
			_, err := v.Validate(with(validSubmission(), "website", site), testPage("p"), 1, postedAt)
			cerr := requireKind(t, err, comment.ErrUnsafeWebsite)
			assert.Equal(t, comment.CodeWebsiteUnsafe, cerr.Code)
		})
	}

	t.Run("too long", func(t *testing.T) {
		long := "example.com/" + strings.Repeat("p", 60)
		_, err := v.Validate(with(validSubmission(), "website", long), testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrFieldTooLong)
		assert.Equal(t, "website", cerr.Field)
	})

	t.Run("https kept", func(t *testing.T) {
		c, err := v.Validate(with(validSubmission(), "website", "https://example.com"), testPage("p"), 1, postedAt)
		require.NoError(t, err)
		site, _ := c.RawWebsite()
		assert.Equal(t, "https://example.com", site)
	})
}

func TestValidate_Message(t *testing.T) {
	v := comment.NewValidator(comment.DefaultConfig())

	t.Run("empty", func(t *testing.T) {
		_, err := v.Validate(with(validSubmission(), "message", " \n\t "), testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrEmptyMessage)
		assert.Equal(t, comment.CodeMessageEmpty, cerr.Code)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := v.Validate(without(validSubmission(), "message"), testPage("p"), 1, postedAt)
		requireKind(t, err, comment.ErrEmptyMessage)
	})

	t.Run("too long carries the limit", func(t *testing.T) {
		cfg := comment.DefaultConfig()
		cfg.Message.MaxLength = 10
		_, err := comment.NewValidator(cfg).Validate(with(validSubmission(), "message", strings.Repeat("m", 11)), testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrMessageTooLong)
		assert.Equal(t, 10, cerr.Limit)
		assert.Contains(t, cerr.Error(), "A maximum of 10 characters is allowed.")
	})
}

func TestValidate_CustomFields(t *testing.T) {
	types, err := comment.NewFieldTypeRegistry(
		comment.FieldType{Name: "company", Title: "Company", Required: true},
		comment.FieldType{Name: "city", Title: "City", PostKey: "comment_city"},
	)
	require.NoError(t, err)

	v := comment.NewValidator(comment.DefaultConfig(), comment.WithFieldTypes(types))

	t.Run("values bound in registration order", func(t *testing.T) {
		src := with(validSubmission(), "company", "ACME", "comment_city", "Berlin")
		c, err := v.Validate(src, testPage("p"), 1, postedAt)
		require.NoError(t, err)

		fields := c.CustomFields()
		require.Len(t, fields, 2)
		assert.Equal(t, "company", fields[0].Name())
		assert.Equal(t, "ACME", fields[0].RawValue())
		assert.Equal(t, "city", fields[1].Name())
		assert.Equal(t, "Berlin", fields[1].RawValue())
		assert.Equal(t, testPage("p"), fields[1].ContentPage())
	})

	t.Run("optional field defaults to empty", func(t *testing.T) {
		c, err := v.Validate(with(validSubmission(), "company", "ACME"), testPage("p"), 1, postedAt)
		require.NoError(t, err)
		city, ok := c.CustomField("city")
		assert.True(t, ok)
		assert.Empty(t, city)
	})

	t.Run("required field missing names its title", func(t *testing.T) {
		_, err := v.Validate(validSubmission(), testPage("p"), 1, postedAt)
		cerr := requireKind(t, err, comment.ErrRequiredFieldMissing)
		assert.Equal(t, "Company", cerr.Field)
		assert.Equal(t, comment.CodeFieldRequired, cerr.Code)
		assert.Equal(t, "The Company field is required.", cerr.Error())
	})

	t.Run("required field checked before id and name", func(t *testing.T) {
		src := with(validSubmission(), "company", "", "name", "")
		_, err := v.Validate(src, testPage("p"), 0, postedAt)
		cerr := requireKind(t, err, comment.ErrRequiredFieldMissing)
		assert.Equal(t, "Company", cerr.Field)
	})

	t.Run("spam checked before custom fields", func(t *testing.T) {
		_, err := v.Validate(with(validSubmission(), "subject", "x"), testPage("p"), 1, postedAt)
		requireKind(t, err, comment.ErrSpamSuspected)
	})
}

func TestValidate_CustomFormKeys(t *testing.T) {
	cfg := comment.DefaultConfig()
	cfg.Form.Name = "author"
	cfg.Form.Message = "body"

	src := comment.MapSource{"author": "Ann", "body": "hello", "subject": "", "name": "ignored"}
	c, err := comment.NewValidator(cfg).Validate(src, testPage("p"), 1, postedAt)
	require.NoError(t, err)
	assert.Equal(t, "Ann", c.RawName())
	assert.Equal(t, "hello", c.RawMessage())
}

func TestValidate_LogsRejections(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText), logger.WithLevel(-4))

	v := comment.NewValidator(comment.DefaultConfig(), comment.WithLogger(log))
	_, err := v.Validate(with(validSubmission(), "email", "bad"), testPage("blog/post"), 1, postedAt)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "comment rejected")
	assert.Contains(t, out, "page_id=blog/post")
	assert.Contains(t, out, "code=304")
}

func TestError_Is(t *testing.T) {
	err := error(&comment.Error{Kind: comment.KindFieldTooLong, Field: "name", Limit: 3})
	assert.True(t, errors.Is(err, comment.ErrFieldTooLong))
	assert.False(t, errors.Is(err, comment.ErrEmptyMessage))
	assert.Equal(t, "comment.errors.field_too_long", err.(*comment.Error).TranslationKey())
}
