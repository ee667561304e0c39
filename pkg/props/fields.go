package props

import (
	"reflect"
	"sync"
	"unsafe"
)

// skipTag marks a struct field that Equivalent must ignore.
const skipTag = "-"

// fieldCache maps reflect.Type to the []int field indices Equivalent walks.
var fieldCache sync.Map

// comparedFields returns the indices of t's fields that take part in
// equivalence, computed once per type.
func comparedFields(t reflect.Type) []int {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]int)
	}
	indices := make([]int, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == "_" || f.Tag.Get("props") == skipTag {
			continue
		}
		indices = append(indices, i)
	}
	actual, _ := fieldCache.LoadOrStore(t, indices)
	return actual.([]int)
}

// isAbsent reports whether v is the absent props marker: nil, or a nil
// pointer, map or interface.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// addressable returns v itself when it can be addressed, otherwise an
// addressable copy. Unexported fields can only be read through an address.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)
	return cp
}

// structView returns an addressable struct for a struct or non-nil
// pointer-to-struct value.
func structView(v reflect.Value) (reflect.Value, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return addressable(v), true
}

// exported lifts the read-only flag from a field of an addressable struct.
func exported(f reflect.Value) reflect.Value {
	if f.CanInterface() || !f.CanAddr() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

// field returns the i-th field of an addressable struct, readable even if
// unexported.
func field(sv reflect.Value, i int) reflect.Value {
	return exported(sv.Field(i))
}

// namedField looks up a possibly promoted field by name. It reports false
// when the field does not exist, is ambiguous, or sits behind a nil
// embedded pointer.
func namedField(sv reflect.Value, name string) (reflect.Value, bool) {
	sf, ok := sv.Type().FieldByName(name)
	if !ok {
		return reflect.Value{}, false
	}
	f, err := sv.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, false
	}
	return exported(f), true
}
