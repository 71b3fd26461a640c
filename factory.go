// factory.go — the error factory.
//
// A Factory is configured once and is read-only afterwards, so it can be
// shared freely between goroutines. Each call builds a new *Error from its
// arguments alone; nothing is retained between calls.
//
// Build steps:
//   - wrapping an *Error without override returns that error unchanged
//   - code: explicit → wrapped error's code → wrapped error's message → "unknown"
//   - details: explicit → message-position details → empty (always copied)
//   - wrapping: details get errmsg and errline (the wrapped error's call point)
//   - message: see message.go
//   - assembly: carried-over fields, orig$/message$ (only if absent), tags,
//     stack (the wrapped error's if it has one, else captured here) and call point
package eraro

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// Factory builds tagged errors for one package.
type Factory struct {
	pkg      string
	prefix   string
	messages Catalog
	markers  []string
	override bool
	inspect  bool
	log      logrus.FieldLogger
}

func factoryFile() string {
	_, file, _, _ := runtime.Caller(0)
	return file
}

// New returns a factory configured by opts.
func New(opts ...Option) *Factory {
	return NewFromConfig(Config{}, opts...)
}

// NewFromConfig returns a factory configured by cfg, then opts.
func NewFromConfig(cfg Config, opts ...Option) *Factory {
	cfg.Messages = cfg.Messages.clone()
	cfg.Markers = append([]string(nil), cfg.Markers...)
	for _, o := range opts {
		o(&cfg)
	}

	f := &Factory{
		pkg:      cfg.Package,
		messages: cfg.Messages,
		override: cfg.Override,
		inspect:  cfg.InspectEnabled(),
		log:      cfg.Logger,
	}
	if f.pkg == "" {
		f.pkg = string(CodeUnknown)
	}
	if f.messages == nil {
		f.messages = Catalog{}
	}
	if f.log == nil {
		f.log = logrus.StandardLogger()
	}

	switch {
	case cfg.DisablePrefix:
	case cfg.PrefixSet || cfg.Prefix != "":
		f.prefix = cfg.Prefix
	case cfg.Package != "":
		f.prefix = cfg.Package + ": "
	}

	f.markers = append(f.markers, libraryMarkers...)
	if cfg.CallerLocation != "" {
		f.markers = append(f.markers, cfg.CallerLocation)
	}
	f.markers = append(f.markers, cfg.Markers...)
	return f
}

// Package returns the package name tagging produced errors.
func (f *Factory) Package() string { return f.pkg }

// Prefix returns the message prefix.
func (f *Factory) Prefix() string { return f.prefix }

// Markers returns a copy of the stack markers used for call points.
func (f *Factory) Markers() []string { return append([]string(nil), f.markers...) }

// Inspect returns the reserved inspect toggle.
func (f *Factory) Inspect() bool { return f.inspect }

// Has reports whether code has a message template.
func (f *Factory) Has(code Code) bool { return f.messages.Has(code) }

// CallPoint resolves err's call point with the factory's markers.
func (f *Factory) CallPoint(err error) string { return CallPoint(err, f.markers) }

// Make builds an error from positional arguments; see Resolve for the
// accepted shapes.
//
//	f.Make("c1", "m1 a:<%= a %>", map[string]any{"a": 1})
//	f.Make("c2", map[string]any{"a": 2})
//	f.Make(err, "c4")
func (f *Factory) Make(args ...any) *Error {
	return f.Build(Resolve(args...))
}

// Build builds an error from an explicit invocation. A nil invocation is
// treated as an empty Raw.
func (f *Factory) Build(inv Invocation) *Error {
	var (
		orig    error
		code    Code
		msg     string
		details map[string]any
	)
	switch v := inv.(type) {
	case Raw:
		code, msg, details = v.Code, v.Message, v.Details
	case Wrapping:
		if isError(v.Err) {
			orig = v.Err
		}
		code, msg, details = v.Code, v.Message, v.Details
	}

	if tagged, ok := orig.(*Error); ok && !f.override {
		return tagged
	}

	if code == "" {
		if orig != nil {
			code = wrappedCode(orig)
		} else {
			code = CodeUnknown
		}
	}

	details = cloneDetails(details)
	if orig != nil {
		details[DetailErrMsg] = safeMessage(orig)
		details[DetailErrLine] = CallPoint(orig, f.markers)
	}

	message := f.buildMessage(messageInput{
		explicit: msg,
		code:     code,
		details:  details,
		orig:     orig,
	})

	e := &Error{
		message: message,
		code:    code,
		pkg:     f.pkg,
		orig:    orig,
		tags:    map[string]struct{}{},
	}

	if orig != nil {
		c, err := carryOver(orig)
		if err != nil {
			f.log.WithFields(logrus.Fields{
				"package": f.pkg,
				"code":    string(code),
			}).WithError(err).Debug("eraro: skipped fields of wrapped error")
		}
		e.extra, e.tags = c.extra, c.tags
		if details[DetailOrig] == nil {
			details[DetailOrig] = orig
		}
		if details[DetailMessage] == nil {
			details[DetailMessage] = safeMessage(orig)
		}
	}

	e.tags[f.pkg] = struct{}{}
	e.details = details

	if orig != nil {
		e.stack = StackOf(orig)
	}
	if e.stack == "" {
		e.stack = captureStack(0, defaultMaxDepth).Text(message)
	}

	if line, _ := details[DetailErrLine].(string); line != "" {
		e.callPoint = line
	} else {
		e.callPoint = FilterCallPoint(e.stack, f.markers)
	}
	return e
}
