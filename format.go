// format.go — fmt.Formatter for produced errors.
//
// Behavior:
//
//   %s, %v   → the message (Error()).
//   %q       → quoted message.
//   %+v      → verbose, multi-line:
//                code=<code> package=<pkg> msg="<message>"
//                details: key1=val1 key2=val2 ...   (sorted keys)
//                callpoint: <frame>
//                orig: <wrapped error formatted with %+v>
//                stack:
//                  <frame lines>
package eraro

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.message)
	case 's':
		_, _ = io.WriteString(s, e.message)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.message)
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*eraro.Error=%s)", verb, e.message)
	}
}

func (e *Error) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "code=%s package=%s msg=%q", e.code, e.pkg, e.message)

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		_, _ = io.WriteString(w, "\ndetails:")
		for _, k := range keys {
			_, _ = fmt.Fprintf(w, " %s=%s", k, render(e.details[k]))
		}
	}

	if e.callPoint != "" {
		_, _ = fmt.Fprintf(w, "\ncallpoint: %s", e.callPoint)
	}

	if e.orig != nil {
		_, _ = io.WriteString(w, "\norig: ")
		_, _ = fmt.Fprintf(w, "%+v", e.orig)
	}

	if lines := strings.Split(e.stack, "\n"); len(lines) > 1 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, l := range lines[1:] {
			_, _ = fmt.Fprintf(w, "\n  %s", strings.TrimPrefix(l, frameIndent))
		}
	}
}
