package helper

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// GetTypedValueOf safely asserts v to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](v any) (T, error) {
	val, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected type: %T", v)
	}
	return val, nil
}

// MustGet is the panic-on-failure variant for (value, error) pairs.
// Use when failure is a programming error (e.g., a target of the wrong shape).
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// FuncName returns the short symbol name of a function value.
//
// Package path, receiver, generic instantiation and the "-fm" suffix of
// method values are stripped: (*T).Process-fm and T.Process both give "Process".
// Returns "" for nil or non-function values.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	return shortName(f.Name())
}

// FuncPC returns the entry PC of a function value, 0 for nil or
// non-function values.
func FuncPC(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0
	}
	return v.Pointer()
}

func shortName(full string) string {
	name := strings.TrimSuffix(full, "-fm")
	// generic instantiations show up as F[...]
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// TypeName returns the bare runtime type name of v with pointers dereferenced.
// A nil interface gives "<nil>".
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return shortName(name)
	}
	return t.String()
}
