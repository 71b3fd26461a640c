// invocation.go — the two call shapes a factory accepts.
//
// A factory call either wraps an existing error or raises a fresh one:
//
//	Wrapping{Err, Code, Message, Details}
//	Raw{Code, Message, Details}
//
// Resolve turns loosely typed arguments (as accepted by Factory.Make) into
// one of these. Build consumes them directly.
package eraro

import "reflect"

// Invocation is either Raw or Wrapping.
type Invocation interface {
	invocation()
}

// Raw raises a new error. Empty Code and Message mean absent.
type Raw struct {
	Code    Code
	Message string
	Details map[string]any
}

// Wrapping wraps Err. Empty Code and Message mean absent; a nil Err makes
// the invocation behave like Raw.
type Wrapping struct {
	Err     error
	Code    Code
	Message string
	Details map[string]any
}

func (Raw) invocation()      {}
func (Wrapping) invocation() {}

// Resolve maps positional arguments onto an Invocation.
//
// Shapes:
//   - (err, code?, message?, details?) when args[0] is a non-nil error
//   - (code?, message?, details?) otherwise
//
// Code accepts string or Code. Message accepts a string; a details-like
// value (string-keyed map, struct, pointer to struct) in the message
// position is used as details when the details position holds none.
// Arguments of any other type are treated as absent.
func Resolve(args ...any) Invocation {
	var err error
	if len(args) > 0 && isError(args[0]) {
		err = args[0].(error)
		args = args[1:]
	}

	code := codeArg(arg(args, 0))
	msg, msgDetails := messageArg(arg(args, 1))
	details, ok := asDetails(arg(args, 2))
	if !ok {
		details = msgDetails
	}

	if err != nil {
		return Wrapping{Err: err, Code: code, Message: msg, Details: details}
	}
	return Raw{Code: code, Message: msg, Details: details}
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// isError reports whether v is a usable error value. Typed nil pointers
// stored in an error interface do not count.
func isError(v any) bool {
	err, ok := v.(error)
	if !ok || err == nil {
		return false
	}
	rv := reflect.ValueOf(err)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

func codeArg(v any) Code {
	switch c := v.(type) {
	case Code:
		return c
	case string:
		return Code(c)
	}
	return ""
}

func messageArg(v any) (string, map[string]any) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	if d, ok := asDetails(v); ok {
		return "", d
	}
	return "", nil
}
