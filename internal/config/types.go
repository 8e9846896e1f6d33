package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"

	"github.com/prosedown/prosedown/internal/doc"
)

const DefaultParallel = 4

func DefaultPatterns() []string {
	return []string{"**/*.md"}
}

type Config struct {
	Convert ConvertConfig `koanf:"convert"`
	Fmt     FmtConfig     `koanf:"fmt"`

	// ConfigDir is the directory the config file was loaded from; relative
	// glob patterns resolve against it.
	ConfigDir string `koanf:"-"`
}

type ConvertConfig struct {
	DisabledStyles []string `koanf:"disabled_styles" validate:"dive,oneof=number lower-alpha upper-alpha"`
}

type FmtConfig struct {
	Patterns []string `koanf:"patterns"`
	Exclude  []string `koanf:"exclude"`
	Parallel int      `koanf:"parallel" validate:"omitempty,min=1,max=64"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()

	return cfg
}

func (c *Config) ApplyDefaults() {
	if len(c.Fmt.Patterns) == 0 {
		c.Fmt.Patterns = DefaultPatterns()
	}

	if c.Fmt.Parallel == 0 {
		c.Fmt.Parallel = DefaultParallel
	}
}

// DisabledStyles maps the configured style names onto doc.ListStyle values.
// Validate guarantees every name is a known style.
func (c *Config) DisabledStyles() []doc.ListStyle {
	if len(c.Convert.DisabledStyles) == 0 {
		return nil
	}

	styles := make([]doc.ListStyle, 0, len(c.Convert.DisabledStyles))
	for _, name := range c.Convert.DisabledStyles {
		styles = append(styles, doc.ListStyle(name))
	}

	return styles
}

func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return oops.
				Code("CONFIG_INVALID").
				Wrapf(err, "validating config")
		}

		for _, fe := range validationErrors {
			return mapValidationError(c, fe)
		}
	}

	return nil
}

func styleNames() string {
	styles := doc.ListStyles()

	names := make([]string, 0, len(styles))
	for _, s := range styles {
		names = append(names, string(s))
	}

	return strings.Join(names, ", ")
}

func mapValidationError(cfg *Config, fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch {
	case fe.Tag() == "oneof" && strings.HasPrefix(field, "disabledstyles"):
		return oops.
			Code("CONFIG_INVALID").
			With("field", "convert.disabled_styles").
			With("value", fe.Value()).
			Hint("Supported styles: " + styleNames()).
			Errorf("unknown list style %v in convert.disabled_styles", fe.Value())

	case (fe.Tag() == "min" || fe.Tag() == "max") && field == "parallel":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "fmt.parallel").
			With("value", cfg.Fmt.Parallel).
			Hint("Set fmt.parallel between 1 and 64").
			Errorf("fmt.parallel %d is out of range", cfg.Fmt.Parallel)

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for config field %q", field)
	}
}
