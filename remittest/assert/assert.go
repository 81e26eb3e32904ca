// Package assert holds the few assertions shared by the table tests of this
// module. Each of them stops the test on the first failure.
package assert

import (
	"reflect"
)

// Tester is the part of testing.TB the assertions use.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil stops the test unless value is nil, including a nil pointer, slice,
// map or similar stored in an interface.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of errors created with the errors package.
		t.Fatalf("want nil, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Equal stops the test unless want and got are deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		return
	}
	t.Fatalf("not equal\nwant %T %v\n got %T %v", want, want, got, got)
}

// Panics stops the test unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	if !panics(fn) {
		t.Fatal("no panic")
	}
}

func panics(fn func()) (panicked bool) {
	defer func() {
		panicked = recover() != nil
	}()
	fn()
	return false
}

// IsErr stops the test unless got is of the kind of want. Registered errors
// match any error wrapping them, other errors only match themselves.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}
