// template_test.go — verification of marker interpolation and expression checks.
package eraro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type templateUser struct {
	Name string
	Tags []string
}

func TestInterpolate(t *testing.T) {
	t.Parallel()

	values := map[string]any{
		"a":      1,
		"s":      "text",
		"nil":    nil,
		"f":      1.5,
		"ok":     true,
		"obj":    map[string]any{"b": 99, "list": []any{"x", "y"}},
		"typed":  map[string]int{"n": 7},
		"items":  []any{"first", "second"},
		"user":   templateUser{Name: "ann", Tags: []string{"admin"}},
		"a.b":    "literal",
		"orig$":  errors.New("boom"),
		"code":   "c1",
		"nested": map[string]any{"deep": map[string]any{"x": 1}},
	}

	cases := []struct {
		name string
		tmpl string
		want string
	}{
		{"no markers", "plain text", "plain text"},
		{"int", "a=<%=a%>", "a=1"},
		{"whitespace", "a=<%=   a   %>", "a=1"},
		{"string", "<%= s %>", "text"},
		{"float", "<%= f %>", "1.5"},
		{"bool", "<%= ok %>", "true"},
		{"present nil", "<%= nil %>", "null"},
		{"missing", "<%= nope %>", "undefined"},
		{"missing root of path", "<%= nope.x %>", "undefined"},
		{"missing field", "<%= obj.zz %>", "undefined"},
		{"map stringified", "<%= obj.list %>", "[x,y]"},
		{"field", "<%= obj.b %>", "99"},
		{"field and index", "<%= obj.list[1] %>", "y"},
		{"index", "<%= items[0] %>", "first"},
		{"index out of range", "<%= items[9] %>", "undefined"},
		{"typed map field", "<%= typed.n %>", "7"},
		{"struct field", "<%= user.name %>", "ann"},
		{"struct field and index", "<%= user.tags[0] %>", "admin"},
		{"exact key wins", "<%= a.b %>", "literal"},
		{"dollar key", "<%= orig$ %>", "boom"},
		{"several markers", "<%= code %>/<%= a %>/<%= s %>", "c1/1/text"},
		{"empty expression", "<%=%>/<%= %>", "undefined/undefined"},
		{"nested map stringified", "<%= nested.deep %>", "{x:1}"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Interpolate(tc.tmpl, values)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInterpolate_Unsupported(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tmpl   string
		expr   string
		reason string
	}{
		{"<%= f() %>", "f()", "unsupported expression"},
		{"<%=foo(1)%>", "foo(1)", "unsupported expression"},
		{"<%= a + b %>", "a + b", "unsupported expression"},
		{"<%= a.b.c %>", "a.b.c", "unsupported expression"},
		{"<%= a[0][1] %>", "a[0][1]", "unsupported expression"},
		{"ok <%= a %> then <%= x() %>", "x()", "unsupported expression"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.tmpl, func(t *testing.T) {
			t.Parallel()
			got, err := Interpolate(tc.tmpl, map[string]any{"a": 1})
			require.Error(t, err)
			assert.Equal(t, "", got)

			var te *TemplateError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tc.expr, te.Expr)
			assert.Equal(t, tc.reason, te.Reason)
		})
	}
}

func TestTemplateError_Error(t *testing.T) {
	t.Parallel()

	e := &TemplateError{Expr: "f()", Reason: "unsupported expression"}
	assert.Equal(t, "unsupported expression in <%= f() %>", e.Error())
	assert.Nil(t, e.Unwrap())

	e = &TemplateError{Reason: "unsupported expression"}
	assert.Equal(t, "unsupported expression in <%= %>", e.Error())

	cause := errors.New("bad")
	e = &TemplateError{Expr: "a.b", Reason: "evaluation failed", Err: cause}
	assert.Equal(t, "evaluation failed in <%= a.b %>: bad", e.Error())
	assert.ErrorIs(t, e, cause)
}

func TestCheckTemplate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckTemplate(""))
	assert.NoError(t, CheckTemplate("a <%= a %> b <%= b.c[2] %>"))

	assert.NoError(t, CheckTemplate("<%= %> <%=%>"))

	err := CheckTemplate("<%= f() %> <%= ok %> <%= a-b %>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported expression in <%= f() %>")
	assert.Contains(t, err.Error(), "unsupported expression in <%= a-b %>")
	assert.Contains(t, err.Error(), "2 errors occurred")
}

func TestPath_Rest(t *testing.T) {
	t.Parallel()

	p, err := parsePath("orig$.x[3]")
	require.NoError(t, err)
	assert.Equal(t, path{root: "orig$", field: "x", index: 3}, p)
	assert.Equal(t, `"x"[3]`, p.rest())

	p, err = parsePath("a")
	require.NoError(t, err)
	assert.Equal(t, "", p.rest())
}

func TestRender(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", render(nil))
	assert.Equal(t, "x", render("x"))
	assert.Equal(t, "42", render(42))
	assert.Equal(t, "boom", render(errors.New("boom")))
	assert.Equal(t, "[1,2]", render([]int{1, 2}))
	assert.Equal(t, "{Name:ann,Tags:null}", render(templateUser{Name: "ann"}))
}

func FuzzInterpolate(f *testing.F) {
	f.Add("m1 a:<%=a%>")
	f.Add("<%= obj.list[1] %>")
	f.Add("<%=foo(1)%>")
	f.Add("<%= %><%=")
	f.Add("<%= a.b.c %> %> <%=")

	values := map[string]any{
		"a":   1,
		"obj": map[string]any{"list": []any{"x", "y"}},
	}

	f.Fuzz(func(t *testing.T, tmpl string) {
		out, err := Interpolate(tmpl, values)
		if err != nil {
			var te *TemplateError
			if !errors.As(err, &te) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			if out != "" {
				t.Fatalf("output on error: %q", out)
			}
			return
		}
		if CheckTemplate(tmpl) != nil {
			t.Fatalf("Interpolate accepted %q but CheckTemplate rejected it", tmpl)
		}
	})
}
