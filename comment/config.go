package comment

import "github.com/dmitrymomot/comments/pkg/config"

// HoneypotConfig configures the anti-spam check.
type HoneypotConfig struct {
	Enabled bool `env:"ENABLED"`
	// HumanValue is what a human leaves in the hidden field, usually nothing.
	HumanValue string `env:"HUMAN_VALUE"`
}

// FormKeys maps the declared comment fields to submission keys.
type FormKeys struct {
	Name     string `env:"NAME"`
	Email    string `env:"EMAIL"`
	Website  string `env:"WEBSITE"`
	Message  string `env:"MESSAGE"`
	Preview  string `env:"PREVIEW"`
	Honeypot string `env:"HONEYPOT"`
}

// FieldRule holds the constraints of a single author field.
type FieldRule struct {
	Required  bool `env:"REQUIRED"`
	MaxLength int  `env:"MAX_LENGTH"`
}

// MessageConfig holds the message constraints and rendering options.
type MessageConfig struct {
	MaxLength   int      `env:"MAX_LENGTH"`
	Typographer bool     `env:"TYPOGRAPHER"`
	AllowedTags []string `env:"ALLOWED_TAGS" envSeparator:","`
}

// Config is the complete set of options the pipeline reads.
type Config struct {
	Honeypot HoneypotConfig `envPrefix:"HONEYPOT_"`
	Form     FormKeys       `envPrefix:"FORM_"`
	Name     FieldRule      `envPrefix:"NAME_"`
	Email    FieldRule      `envPrefix:"EMAIL_"`
	Website  FieldRule      `envPrefix:"WEBSITE_"`
	Message  MessageConfig  `envPrefix:"MESSAGE_"`
}

// EnvPrefix is the prefix of every variable read by LoadConfig.
const EnvPrefix = "COMMENTS_"

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Honeypot: HoneypotConfig{Enabled: true},
		Form: FormKeys{
			Name:     "name",
			Email:    "email",
			Website:  "website",
			Message:  "message",
			Preview:  "preview",
			Honeypot: "subject",
		},
		Name:    FieldRule{Required: true, MaxLength: 64},
		Email:   FieldRule{Required: false, MaxLength: 64},
		Website: FieldRule{Required: false, MaxLength: 64},
		Message: MessageConfig{
			MaxLength:   1024,
			Typographer: true,
			AllowedTags: []string{"p", "br", "a", "em", "strong", "code", "pre", "blockquote", "ul", "ol", "li", "del"},
		},
	}
}

// LoadConfig returns DefaultConfig overridden by COMMENTS_* environment variables,
// for example COMMENTS_NAME_MAX_LENGTH or COMMENTS_MESSAGE_ALLOWED_TAGS=p,a,em.
func LoadConfig(opts ...config.Option) (Config, error) {
	cfg := DefaultConfig()
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
