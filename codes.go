// codes.go — error codes and the code → message template catalog.
//
// Conventions (documented, not enforced here):
//   - Codes are short, stable, machine-readable strings ("c401", "not_found").
//   - The empty code is never produced; unresolved codes become CodeUnknown.
//   - A Catalog maps codes to message templates (see template.go for syntax).
package eraro

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Code classifies errors into machine-readable categories.
type Code string

// CodeUnknown is used whenever no code can be resolved for an error.
const CodeUnknown Code = "unknown"

// Catalog maps error codes to message templates.
type Catalog map[Code]string

// Has reports whether code has a non-empty template.
func (c Catalog) Has(code Code) bool {
	return c[code] != ""
}

// Template returns the template registered for code. A present but empty
// template still counts as registered.
func (c Catalog) Template(code Code) (string, bool) {
	t, ok := c[code]
	return t, ok
}

// Codes returns the catalog codes in sorted order.
func (c Catalog) Codes() []Code {
	out := make([]Code, 0, len(c))
	for code := range c {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Check validates every template in the catalog and reports all problems at
// once. It returns nil when every template only uses supported expressions.
func (c Catalog) Check() error {
	var result *multierror.Error
	for _, code := range c.Codes() {
		err := CheckTemplate(c[code])
		if err == nil {
			continue
		}
		for _, te := range err.(*multierror.Error).Errors {
			result = multierror.Append(result, fmt.Errorf("message %q: %w", code, te))
		}
	}
	return result.ErrorOrNil()
}

// clone returns an independent copy; nil stays nil.
func (c Catalog) clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
