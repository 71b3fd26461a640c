// predicates.go — questions about arbitrary errors.
//
// Scope:
//   • Answer "is this one of ours?" without type switches at call sites.
//   • Interop-first: errors.As traverses single and multi unwraps, so a
//     produced error is found even when wrapped with fmt.Errorf("%w") or
//     joined with errors.Join.
package eraro

import "errors"

// IsEraro reports whether err is, or wraps, an error built by any factory.
func IsEraro(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// IsFrom reports whether err is, or wraps, an error tagged by pkg.
func IsFrom(err error, pkg string) bool {
	var e *Error
	return errors.As(err, &e) && e.TaggedBy(pkg)
}

// CodeOf returns the code of the first produced error along err's chain, or
// "" if there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ""
}

// HasCode reports whether the first produced error along err's chain carries
// code.
func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.code == code
}

// DetailsOf returns a copy of the details of the first produced error along
// err's chain, or nil.
func DetailsOf(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}
