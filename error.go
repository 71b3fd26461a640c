package eraro

import "sort"

// Error is a produced error: a message built from a template, a stable code,
// the package that raised it, contextual details and a call point.
//
// An *Error is never modified after a factory returns it; every accessor that
// exposes a map returns a copy.
type Error struct {
	message   string
	code      Code
	pkg       string
	details   map[string]any
	orig      error
	callPoint string
	stack     string
	extra     map[string]any
	tags      map[string]struct{}
}

// Error returns the built message, prefix included.
func (e *Error) Error() string { return e.message }

// Msg returns the built message. It is identical to Error().
func (e *Error) Msg() string { return e.message }

// Code returns the error code; it is never empty.
func (e *Error) Code() Code { return e.code }

// Package returns the package name of the factory that built e.
func (e *Error) Package() string { return e.pkg }

// Eraro reports that e was built by an eraro factory. It is always true and
// exists so foreign code can detect tagged errors through an interface.
func (e *Error) Eraro() bool { return true }

// TaggedBy reports whether e carries the tag of pkg: the package of the
// factory that built it, or of any *Error it wrapped.
func (e *Error) TaggedBy(pkg string) bool {
	_, ok := e.tags[pkg]
	return ok
}

// Tags returns the package tags in sorted order.
func (e *Error) Tags() []string {
	out := make([]string, 0, len(e.tags))
	for t := range e.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Details returns a copy of the details. The result is never nil.
func (e *Error) Details() map[string]any { return cloneDetails(e.details) }

// Detail returns a single detail value.
func (e *Error) Detail(key string) (any, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Orig returns the wrapped error, or nil.
func (e *Error) Orig() error { return e.orig }

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.orig }

// CallPoint returns the first stack frame outside the library and the
// factory's declaring file, without indentation.
func (e *Error) CallPoint() string { return e.callPoint }

// Stack returns the stack text: a header line followed by one line per frame.
func (e *Error) Stack() string { return e.stack }

// Extra returns a copy of the fields carried over from the wrapped error.
// The result is nil when nothing was carried over.
func (e *Error) Extra() map[string]any {
	if len(e.extra) == 0 {
		return nil
	}
	out := make(map[string]any, len(e.extra))
	for k, v := range e.extra {
		out[k] = v
	}
	return out
}
