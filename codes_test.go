package eraro

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()

	c := Catalog{"b": "B <%= x %>", "a": "A", "empty": ""}

	assert.True(t, c.Has("a"))
	assert.False(t, c.Has("empty"))
	assert.False(t, c.Has("missing"))

	tmpl, ok := c.Template("empty")
	assert.True(t, ok)
	assert.Equal(t, "", tmpl)
	_, ok = c.Template("missing")
	assert.False(t, ok)

	assert.Equal(t, []Code{"a", "b", "empty"}, c.Codes())
	assert.Empty(t, Catalog(nil).Codes())
	assert.False(t, Catalog(nil).Has("a"))
}

func TestCatalog_Check(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Catalog(nil).Check())
	assert.NoError(t, Catalog{"a": "A <%= a.b[0] %>"}.Check())

	err := Catalog{"ok": "fine", "z": "<%= f() %>", "y": "<%= 1+1 %>"}.Check()
	require.Error(t, err)
	assert.ErrorContains(t, err, `message "y"`)
	assert.ErrorContains(t, err, `message "z"`)
	assert.NotContains(t, err.Error(), `message "ok"`)

	var te *TemplateError
	assert.ErrorAs(t, err, &te)

	err = Catalog{"a": "<%= f() %> <%= g() %>"}.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Equal(t, 1, strings.Count(err.Error(), "occurred"), err.Error())
	assert.Contains(t, err.Error(), `message "a": unsupported expression in <%= g() %>`)
}

func TestCatalog_Clone(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Catalog(nil).clone())

	c := Catalog{"a": "A"}
	cp := c.clone()
	cp["a"] = "changed"
	assert.Equal(t, "A", c["a"])
}
