// stack.go — stack capture, stack text, and call point filtering.
//
// Design goals:
//   - Capture with runtime.Callers + runtime.CallersFrames (handles inlining).
//   - Keep the stack as plain text once captured: line 0 is a header, every
//     following line is one frame indented by four spaces. Call point
//     filtering works on that text only, so stacks of foreign errors
//     (pkg/errors, go-errors) are filtered exactly like our own.
//   - Library frames are recognised by marker substrings, never by skip
//     counts, so wrappers and inlining cannot shift the reported call point.
package eraro

import (
	"runtime"
	"strconv"
	"strings"

	goerrors "github.com/go-errors/errors"
	pkgerrors "github.com/pkg/errors"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultMaxDepth bounds capture on exceptional paths.
	defaultMaxDepth = 64

	// frameIndent prefixes every frame line of a stack text. FilterCallPoint
	// strips exactly this many characters from the line it returns.
	frameIndent = "    "
)

// libraryMarkers identifies frames that belong to this package's entry
// points. Only the files that can be on the stack at capture time are listed.
var libraryMarkers = []string{stackFile(), factoryFile()}

func stackFile() string {
	_, file, _, _ := runtime.Caller(0)
	return file
}

// Here returns the source file of its caller. Pass it to WithCallerLocation
// from the file that declares a factory so frames of that file are skipped
// when resolving call points.
func Here() string {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return ""
	}
	return file
}

// captureStack captures up to maxDepth frames, skipping 'skip' frames above
// the caller of captureStack.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// +2: runtime.Callers itself and captureStack.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	return framesOf(pc[:n])
}

// framesOf resolves return program counters into frames.
func framesOf(pcs []uintptr) Stack {
	if len(pcs) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs)
	out := make(Stack, 0, len(pcs))
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// Text renders the stack with header as line 0.
func (s Stack) Text(header string) string {
	var sb strings.Builder
	sb.WriteString(oneLine(header))
	for _, fr := range s {
		sb.WriteByte('\n')
		sb.WriteString(frameIndent)
		sb.WriteString(fr.Function)
		sb.WriteByte(' ')
		sb.WriteString(fr.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(fr.Line))
	}
	return sb.String()
}

// oneLine keeps the header on a single line so frame numbering is stable.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StackOf returns the stack text carried by err, or "" when err has none.
//
// Supported sources:
//   - *Error: the stack stored at construction (or copied from its original)
//   - github.com/pkg/errors values exposing StackTrace()
//   - *github.com/go-errors/errors.Error
//
// Only err itself is inspected, not its unwrap chain.
func StackOf(err error) string {
	switch e := err.(type) {
	case nil:
		return ""
	case *Error:
		if e == nil {
			return ""
		}
		return e.stack
	case *goerrors.Error:
		if e == nil {
			return ""
		}
		return goErrorsStack(e).Text(safeMessage(e))
	case interface{ StackTrace() pkgerrors.StackTrace }:
		st := e.StackTrace()
		if len(st) == 0 {
			return ""
		}
		pcs := make([]uintptr, len(st))
		for i, f := range st {
			pcs[i] = uintptr(f)
		}
		return framesOf(pcs).Text(safeMessage(err))
	}
	return ""
}

func goErrorsStack(e *goerrors.Error) Stack {
	sf := e.StackFrames()
	out := make(Stack, 0, len(sf))
	for _, f := range sf {
		fn := f.Name
		if f.Package != "" {
			fn = f.Package + "." + f.Name
		}
		out = append(out, Frame{
			PC:       f.ProgramCounter,
			File:     f.File,
			Line:     f.LineNumber,
			Function: fn,
		})
	}
	return out
}

// CallPoint returns the first frame line of err's stack that contains none of
// the markers, without its indentation. It returns "" when err is nil, has no
// stack, or every frame matches a marker.
func CallPoint(err error, markers []string) string {
	if err == nil {
		return ""
	}
	return FilterCallPoint(StackOf(err), markers)
}

// FilterCallPoint applies the call point rule to a stack text: frame lines
// start at line 1; the first one not containing any non-empty marker is
// returned with its first four characters removed.
func FilterCallPoint(stack string, markers []string) string {
	if stack == "" {
		return ""
	}
	lines := strings.Split(stack, "\n")
	for _, line := range lines[1:] {
		if !containsAny(line, markers) {
			if len(line) <= len(frameIndent) {
				return ""
			}
			return line[len(frameIndent):]
		}
	}
	return ""
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(line, m) {
			return true
		}
	}
	return false
}
