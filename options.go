package eraro

import "github.com/sirupsen/logrus"

// Option adjusts a Config during New.
type Option func(*Config)

// WithPackage sets the package name tagging every produced error. It also
// enables the default "<package>: " message prefix.
func WithPackage(name string) Option { return func(c *Config) { c.Package = name } }

// WithPrefix sets an explicit message prefix.
func WithPrefix(prefix string) Option {
	return func(c *Config) {
		c.Prefix = prefix
		c.PrefixSet = true
		c.DisablePrefix = false
	}
}

// WithoutPrefix disables the message prefix entirely.
func WithoutPrefix() Option { return func(c *Config) { c.DisablePrefix = true } }

// WithCallerLocation names the source file that declares the factory; its
// frames are skipped when resolving call points. See Here.
func WithCallerLocation(file string) Option { return func(c *Config) { c.CallerLocation = file } }

// WithMessages merges code → template entries into the catalog.
func WithMessages(messages map[Code]string) Option {
	return func(c *Config) {
		if c.Messages == nil {
			c.Messages = make(Catalog, len(messages))
		}
		for code, tmpl := range messages {
			c.Messages[code] = tmpl
		}
	}
}

// WithMarkers adds stack markers: frames containing any of them are never
// reported as call points.
func WithMarkers(markers ...string) Option {
	return func(c *Config) { c.Markers = append(c.Markers, markers...) }
}

// WithInspect sets the reserved inspect toggle. Non-scalar values are always
// stringified when interpolated, whatever its value.
func WithInspect(inspect bool) Option { return func(c *Config) { c.Inspect = &inspect } }

// WithOverride makes the factory rebuild already-tagged errors instead of
// returning them unchanged.
func WithOverride(override bool) Option { return func(c *Config) { c.Override = override } }

// WithLogger sets the diagnostics logger. A nil logger restores the default.
func WithLogger(log logrus.FieldLogger) Option { return func(c *Config) { c.Logger = log } }
