// details_test.go — verification of KV parsing and details normalisation.
package eraro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKV(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []any
		want map[string]any
	}{
		{"empty", nil, map[string]any{}},
		{"pairs", []any{"a", 1, "b", "x"}, map[string]any{"a": 1, "b": "x"}},
		{"trailing key", []any{"a", 1, "b"}, map[string]any{"a": 1, "b": nil}},
		{"non-string key drops the pair", []any{123, "v1", "k2", "v2"}, map[string]any{"k2": "v2"}},
		{"later value wins", []any{"a", 1, "a", 2}, map[string]any{"a": 2}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, KV(tc.in...))
		})
	}
}

func TestCloneDetails(t *testing.T) {
	t.Parallel()

	out := cloneDetails(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)

	in := map[string]any{"a": 1}
	out = cloneDetails(in)
	out["b"] = 2
	assert.Equal(t, map[string]any{"a": 1}, in)
}

type detailsStruct struct {
	User  string
	Count int
	Tag   string `mapstructure:"tag"`
}

func TestAsDetails(t *testing.T) {
	t.Parallel()

	t.Run("accepted", func(t *testing.T) {
		cases := []struct {
			name string
			in   any
			want map[string]any
		}{
			{"generic map", map[string]any{"a": 1}, map[string]any{"a": 1}},
			{"typed map", map[string]int{"a": 1}, map[string]any{"a": 1}},
			{"struct", detailsStruct{User: "ann", Count: 2, Tag: "t"}, map[string]any{"User": "ann", "Count": 2, "tag": "t"}},
			{"struct pointer", &detailsStruct{User: "bob"}, map[string]any{"User": "bob", "Count": 0, "tag": ""}},
		}
		for _, tc := range cases {
			got, ok := asDetails(tc.in)
			require.True(t, ok, tc.name)
			assert.Equal(t, tc.want, got, tc.name)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		var nilStruct *detailsStruct
		for _, in := range []any{nil, "s", 1, []any{1}, map[int]string{1: "a"}, nilStruct, new(int)} {
			_, ok := asDetails(in)
			assert.False(t, ok, "%T", in)
		}
	})
}

func TestDecodeToMap_Panic(t *testing.T) {
	t.Parallel()

	err := (&decodePanic{value: "boom"}).Error()
	assert.Equal(t, "eraro: decoding fields panicked: boom", err)
}
