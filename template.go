// template.go — restricted message template interpolation.
//
// Syntax:
//
//	<%= expr %>       whitespace around expr is optional
//
// expr is either a key present verbatim in the value map, or a path:
//
//	ident                 a
//	ident.ident           user.name
//	ident[n]              items[0]
//	ident.ident[n]        user.tags[1]
//
// ident = [A-Za-z_$][A-Za-z0-9_$]*. The root identifier is looked up in the
// value map; the rest of the path is evaluated with JMESPath, which resolves
// map keys, struct fields (first letter upper-cased) and slice indexes.
// An empty expression is a missing key and renders "undefined". Nothing else
// is evaluated: calls and operators are reported as *TemplateError.
package eraro

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/jmespath/go-jmespath"
)

var (
	markerPattern = regexp.MustCompile(`<%=\s*(.*?)\s*%>`)
	pathPattern   = regexp.MustCompile(`^([A-Za-z_$][\w$]*)(?:\.([A-Za-z_$][\w$]*))?(?:\[(\d+)\])?$`)
)

// TemplateError reports an expression the template engine does not support
// or could not evaluate.
type TemplateError struct {
	Expr   string // expression as written between the delimiters
	Reason string
	Err    error // underlying evaluation error, if any
}

func (e *TemplateError) Error() string {
	marker := "<%= " + e.Expr + " %>"
	if e.Expr == "" {
		marker = "<%= %>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s in %s: %v", e.Reason, marker, e.Err)
	}
	return e.Reason + " in " + marker
}

func (e *TemplateError) Unwrap() error { return e.Err }

// path is a parsed template expression.
type path struct {
	root  string
	field string // "" when absent
	index int    // -1 when absent
}

func parsePath(expr string) (path, error) {
	m := pathPattern.FindStringSubmatch(expr)
	if m == nil {
		return path{}, &TemplateError{Expr: expr, Reason: "unsupported expression"}
	}
	p := path{root: m[1], field: m[2], index: -1}
	if m[3] != "" {
		n, err := strconv.Atoi(m[3])
		if err != nil {
			return path{}, &TemplateError{Expr: expr, Reason: "invalid index", Err: err}
		}
		p.index = n
	}
	return p, nil
}

// rest renders everything after the root as a JMESPath expression with quoted
// identifiers, so names such as "orig$" stay valid.
func (p path) rest() string {
	var sb strings.Builder
	if p.field != "" {
		sb.WriteString(strconv.Quote(p.field))
	}
	if p.index >= 0 {
		sb.WriteString("[" + strconv.Itoa(p.index) + "]")
	}
	return sb.String()
}

// CheckTemplate reports every unsupported expression in tmpl.
func CheckTemplate(tmpl string) error {
	var result *multierror.Error
	for _, m := range markerPattern.FindAllStringSubmatch(tmpl, -1) {
		if m[1] == "" {
			continue
		}
		if _, err := parsePath(m[1]); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Interpolate replaces every marker in tmpl with the rendered value of its
// expression. It stops at the first expression that cannot be evaluated and
// returns a *TemplateError; the returned string is then empty.
func Interpolate(tmpl string, values map[string]any) (string, error) {
	var firstErr error
	out := markerPattern.ReplaceAllStringFunc(tmpl, func(marker string) string {
		if firstErr != nil {
			return marker
		}
		expr := markerPattern.FindStringSubmatch(marker)[1]
		v, found, err := lookup(expr, values)
		if err != nil {
			firstErr = err
			return marker
		}
		if !found {
			return "undefined"
		}
		return render(v)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// lookup resolves expr against values. found is false for missing keys and
// paths that lead nowhere.
func lookup(expr string, values map[string]any) (v any, found bool, err error) {
	if v, ok := values[expr]; ok {
		return v, true, nil
	}
	if expr == "" {
		return nil, false, nil
	}
	p, err := parsePath(expr)
	if err != nil {
		return nil, false, err
	}
	root, ok := values[p.root]
	if !ok {
		return nil, false, nil
	}
	if p.field == "" && p.index < 0 {
		return root, true, nil
	}

	defer func() {
		if r := recover(); r != nil {
			v, found = nil, false
			err = &TemplateError{Expr: expr, Reason: "evaluation failed", Err: fmt.Errorf("%v", r)}
		}
	}()
	res, err := jmespath.Search(p.rest(), normalize(root))
	if err != nil {
		return nil, false, &TemplateError{Expr: expr, Reason: "evaluation failed", Err: err}
	}
	if res == nil {
		return nil, false, nil
	}
	return res, true, nil
}

// normalize turns typed string-keyed maps into map[string]any so that field
// lookups see their keys. Other values are returned unchanged.
func normalize(v any) any {
	if _, ok := v.(map[string]any); ok {
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return v
	}
	m, err := decodeToMap(v)
	if err != nil {
		return v
	}
	return m
}

// render converts an interpolated value into message text.
func render(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case error:
		return safeMessage(x)
	case fmt.Stringer:
		return coerce(x)
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Ptr, reflect.Interface:
		return Stringify(v)
	}
	return fmt.Sprint(v)
}
