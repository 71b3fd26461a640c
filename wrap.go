// wrap.go — reading what a wrapped error brings along.
//
// Purpose
//   - Resolve the code and message of an arbitrary error without trusting it:
//     Error() methods of foreign types may panic (nil receivers), and that
//     must not escape error construction.
//   - Carry over extra fields: for a wrapped *Error its extra fields and
//     package tags, for foreign errors their exported struct fields.
package eraro

import (
	"reflect"
	"strings"
)

// reservedFields are overwritten by the produced error itself, so carried
// over fields with these names (compared case-insensitively) are dropped.
var reservedFields = map[string]struct{}{
	"eraro":     {},
	"orig":      {},
	"code":      {},
	"package":   {},
	"msg":       {},
	"message":   {},
	"details":   {},
	"stack":     {},
	"callpoint": {},
}

// safeMessage returns err.Error(), or "" if err is nil or Error panics.
func safeMessage(err error) (msg string) {
	if err == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			msg = ""
		}
	}()
	if e, ok := err.(*Error); ok {
		if e == nil {
			return ""
		}
		return e.message
	}
	return err.Error()
}

// wrappedCode resolves the code of a wrapped error: its own code (a Code
// method or a string Code field) if it has one, else its message, else
// CodeUnknown.
func wrappedCode(err error) Code {
	switch e := err.(type) {
	case *Error:
		if e != nil && e.code != "" {
			return e.code
		}
	case interface{ Code() string }:
		if c := safeCode(e); c != "" {
			return Code(c)
		}
	default:
		if c := codeField(err); c != "" {
			return c
		}
	}
	if msg := safeMessage(err); msg != "" {
		return Code(msg)
	}
	return CodeUnknown
}

// codeField returns the string value of an exported field named code
// (case-insensitively) of a struct error, or "".
func codeField(err error) Code {
	if !isStructLike(err) {
		return ""
	}
	fields, decodeErr := decodeToMap(err)
	if decodeErr != nil {
		return ""
	}
	for k, v := range fields {
		if !strings.EqualFold(k, "code") {
			continue
		}
		switch c := v.(type) {
		case string:
			return Code(c)
		case Code:
			return c
		}
	}
	return ""
}

func safeCode(c interface{ Code() string }) (code string) {
	defer func() {
		if r := recover(); r != nil {
			code = ""
		}
	}()
	return c.Code()
}

// carried is what a produced error inherits from the error it wraps.
type carried struct {
	extra map[string]any
	tags  map[string]struct{}
}

// carryOver collects extra fields and tags from err. It reports a non-nil
// error only when decoding a foreign error's fields failed; the fields are
// then skipped.
func carryOver(err error) (carried, error) {
	c := carried{extra: map[string]any{}, tags: map[string]struct{}{}}

	if e, ok := err.(*Error); ok {
		if e == nil {
			return c, nil
		}
		for k, v := range e.extra {
			c.extra[k] = v
		}
		for t := range e.tags {
			c.tags[t] = struct{}{}
		}
		return c, nil
	}

	if !isStructLike(err) {
		return c, nil
	}
	fields, decodeErr := decodeToMap(err)
	if decodeErr != nil {
		return c, decodeErr
	}
	for k, v := range fields {
		if _, reserved := reservedFields[strings.ToLower(k)]; reserved {
			continue
		}
		c.extra[k] = v
	}
	return c, nil
}

func isStructLike(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}
