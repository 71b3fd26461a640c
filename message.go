package eraro

import (
	"github.com/sirupsen/logrus"
)

// messageInput carries everything the message builder looks at.
type messageInput struct {
	explicit string         // caller-supplied message template, "" if absent
	code     Code           // resolved code
	details  map[string]any // resolved details, including errmsg/errline
	orig     error          // wrapped error, nil for raw invocations
}

// buildMessage resolves the template for in, interpolates it and applies the
// factory prefix. Template failures never escape: the message then carries the
// raw template, the lookup values and the failure description.
func (f *Factory) buildMessage(in messageInput) string {
	tmpl := f.template(in)

	values := make(map[string]any, len(in.details)+1)
	for k, v := range in.details {
		values[k] = v
	}
	values["code"] = string(in.code)

	out, err := Interpolate(tmpl, values)
	if err != nil {
		f.log.WithFields(logrus.Fields{
			"package":  f.pkg,
			"code":     string(in.code),
			"template": tmpl,
		}).WithError(err).Debug("eraro: message template failed")
		return f.prefix + tmpl + " VALUES:" + Stringify(values) + " TEMPLATE ERROR: " + err.Error()
	}
	return f.prefix + out
}

// template picks the message template: explicit message, catalog entry,
// wrapped error's message, then the code itself.
func (f *Factory) template(in messageInput) string {
	if in.explicit != "" {
		return in.explicit
	}
	if t, ok := f.messages.Template(in.code); ok {
		return t
	}
	if in.orig != nil {
		return f.originalMessage(in.orig)
	}
	return string(in.code)
}

// originalMessage returns the wrapped error's message. With override on, a
// wrapped *Error that itself wraps something yields that inner message
// instead; only one level is unwrapped.
func (f *Factory) originalMessage(orig error) string {
	if te, ok := orig.(*Error); ok && te != nil && f.override && te.orig != nil {
		return safeMessage(te.orig)
	}
	return safeMessage(orig)
}
