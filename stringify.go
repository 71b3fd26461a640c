package eraro

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// maxStringifyLen bounds the inline rendering of non-scalar values.
const maxStringifyLen = 111

// quotePattern matches a double quote not preceded by a backslash.
var quotePattern = regexp.MustCompile(`([^\\])"`)

// Stringify renders v as compact JSON, truncated to 111 characters, with
// unescaped double quotes removed. Values that cannot be marshalled fall back
// to their Error() or String() text, or to their bracketed type name.
func Stringify(v any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = coerce(v)
		}
	}()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return coerce(v)
	}
	r := []rune(strings.TrimSuffix(buf.String(), "\n"))
	if len(r) > maxStringifyLen {
		r = r[:maxStringifyLen]
	}
	return quotePattern.ReplaceAllString(string(r), "$1")
}

// coerce is the non-serialising fallback. It never walks v, so cyclic values
// are safe.
func coerce(v any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("[%T]", v)
		}
	}()
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("[%T]", v)
}
