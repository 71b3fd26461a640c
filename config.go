package eraro

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a factory captures at construction.
type Config struct {
	// Package tags every produced error. Empty means "unknown" and no
	// default prefix.
	Package string
	// Prefix replaces the default "<Package>: " message prefix when it is
	// non-empty or PrefixSet is true.
	Prefix string
	// PrefixSet marks Prefix as explicit, so an empty Prefix means no prefix.
	PrefixSet bool
	// DisablePrefix removes the prefix entirely, overriding Prefix.
	DisablePrefix bool
	// CallerLocation is the source file declaring the factory. Its frames are
	// skipped when resolving call points.
	CallerLocation string
	// Markers are additional substrings identifying frames to skip.
	Markers []string
	// Messages maps codes to message templates.
	Messages Catalog
	// Inspect is reserved; nil means true.
	Inspect *bool
	// Override rebuilds already-tagged errors instead of returning them.
	Override bool
	// Logger receives diagnostics; nil means logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// InspectEnabled returns the effective inspect toggle.
func (c Config) InspectEnabled() bool {
	return c.Inspect == nil || *c.Inspect
}

// Validate reports every problem in c at once.
func (c Config) Validate() error {
	return c.Messages.Check()
}

// fileConfig is the YAML shape of a Config.
type fileConfig struct {
	Package  string            `mapstructure:"package"`
	Prefix   any               `mapstructure:"prefix"`
	Caller   string            `mapstructure:"caller"`
	Markers  []string          `mapstructure:"markers"`
	Messages map[string]string `mapstructure:"messages"`
	Inspect  *bool             `mapstructure:"inspect"`
	Override bool              `mapstructure:"override"`
}

// LoadConfig reads a YAML factory configuration:
//
//	package: foo
//	prefix: false          # or a string; omit for "foo: "
//	caller: /src/app/errors.go
//	markers: [vendor/]
//	override: false
//	messages:
//	  c401: "C401 Message <%= user %>"
//
// Unknown keys, mistyped values and unsupported template expressions are
// all reported in a single error.
func LoadConfig(r io.Reader) (Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("eraro: reading config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Config{}, fmt.Errorf("eraro: parsing config: %w", err)
	}

	var fc fileConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &fc,
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("eraro: decoding config: %w", err)
	}

	cfg := Config{
		Package:        fc.Package,
		CallerLocation: fc.Caller,
		Markers:        fc.Markers,
		Inspect:        fc.Inspect,
		Override:       fc.Override,
	}
	if len(fc.Messages) > 0 {
		cfg.Messages = make(Catalog, len(fc.Messages))
		for code, tmpl := range fc.Messages {
			cfg.Messages[Code(code)] = tmpl
		}
	}

	var result *multierror.Error
	switch p := fc.Prefix.(type) {
	case nil:
	case string:
		cfg.Prefix = p
		cfg.PrefixSet = true
	case bool:
		cfg.DisablePrefix = !p
	default:
		result = multierror.Append(result, fmt.Errorf("prefix: expected string or false, got %T", p))
	}
	if err := cfg.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return Config{}, fmt.Errorf("eraro: invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML factory configuration from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("eraro: opening config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
