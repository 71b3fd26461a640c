// details.go — contextual details attached to produced errors.
//
// Design:
//   • Public shape: map[string]any, copied on every read and on construction,
//     so a produced error never aliases a caller's map.
//   • Struct values and typed string-keyed maps are accepted wherever details
//     are and normalised with mapstructure.
//   • KV builds details from alternating key/value arguments.
package eraro

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Detail keys populated when an error is wrapped.
const (
	// DetailOrig holds the wrapped error unless the caller supplied one.
	DetailOrig = "orig$"
	// DetailMessage holds the wrapped error's message unless the caller supplied one.
	DetailMessage = "message$"
	// DetailErrMsg always holds the wrapped error's message.
	DetailErrMsg = "errmsg"
	// DetailErrLine always holds the wrapped error's call point.
	DetailErrLine = "errline"
)

// KV parses alternating key/value arguments into details.
//
// Rules:
//   • Keys must be strings; a non-string key drops the whole pair so later
//     pairs stay aligned.
//   • A trailing key with no value becomes (key, nil).
//
// Example:
//   KV(123, "v1", "k2", "v2") → {"k2": "v2"}
func KV(kv ...any) map[string]any {
	out := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			i += 2
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		out[k] = v
		i += 2
	}
	return out
}

// cloneDetails returns a fresh, non-nil copy of d.
func cloneDetails(d map[string]any) map[string]any {
	out := make(map[string]any, len(d)+4)
	for k, v := range d {
		out[k] = v
	}
	return out
}

// asDetails reports whether v can serve as details and converts it.
// Accepted: map[string]any, other maps with string keys, structs and
// non-nil pointers to structs.
func asDetails(v any) (map[string]any, bool) {
	switch d := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return d, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
	case reflect.Struct:
	case reflect.Ptr:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, false
		}
	default:
		return nil, false
	}

	out, err := decodeToMap(v)
	if err != nil {
		return nil, false
	}
	return out, true
}

// decodeToMap converts a struct or string-keyed map into map[string]any.
// A panic inside the decoder is reported as an error.
func decodeToMap(v any) (out map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, &decodePanic{value: r}
		}
	}()
	out = map[string]any{}
	if err := mapstructure.Decode(v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type decodePanic struct{ value any }

func (p *decodePanic) Error() string { return fmt.Sprintf("eraro: decoding fields panicked: %v", p.value) }
