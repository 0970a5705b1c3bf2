package minmax

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValuesKey is the object key read by Decode when the document is not a bare list.
const ValuesKey = "values"

// Parse converts untyped data, as produced by a JSON or YAML decoder, into a
// numeric sequence. Anything that is not a list fails with a type error; a
// list holding a non-numeric element fails with a value error.
func Parse(raw any) ([]float64, error) {
	if raw == nil {
		return nil, newTypeError("values must be a list, got nothing")
	}
	if _, ok := raw.([]byte); ok {
		return nil, newTypeError("values must be a list, got bytes")
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, newTypeError(fmt.Sprintf("values must be a list, got %T", raw))
	}
	out := make([]float64, rv.Len())
	for i := range rv.Len() {
		v, ok := toFloat(rv.Index(i))
		if !ok {
			return nil, newValueError(
				fmt.Sprintf("all elements must be numeric, got %s", describe(rv.Index(i))),
				i,
			)
		}
		out[i] = v
	}
	return out, nil
}

// ParseStrings converts textual values, typically command-line arguments.
func ParseStrings(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, newValueError(fmt.Sprintf("all elements must be numeric, got %q", arg), i)
		}
		out[i] = v
	}
	return out, nil
}

// Decode reads a JSON or YAML document holding either a list of numbers or
// an object with a "values" list.
func Decode(data []byte) ([]float64, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, newTypeError(fmt.Sprintf("values must be a list: %v", err))
	}
	if obj, ok := doc.(map[string]any); ok {
		inner, found := obj[ValuesKey]
		if !found {
			return nil, newTypeError(fmt.Sprintf("values must be a list, object has no %q key", ValuesKey))
		}
		doc = inner
	}
	return Parse(doc)
}

func toFloat(v reflect.Value) (float64, bool) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	if v.Type() == reflect.TypeOf(json.Number("")) {
		f, err := strconv.ParseFloat(v.String(), 64)
		return f, err == nil
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func describe(v reflect.Value) string {
	if v.Kind() == reflect.Interface && v.IsNil() {
		return "null"
	}
	iface := v.Interface()
	if s, ok := iface.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%T", iface)
}
