package props

import (
	"math"
	"reflect"

	"github.com/go-drift/interop/pkg/errors"
)

// Equaler is implemented by values that define their own equivalence.
type Equaler interface {
	Equals(other any) bool
}

var boundType = reflect.TypeOf((*Bound)(nil)).Elem()

// Equivalent reports whether two props values are the same for the purpose
// of skipping a rebuild. Both absent is equivalent; one absent is not;
// values of different dynamic types never are.
func Equivalent(a, b any) bool {
	aAbsent, bAbsent := isAbsent(a), isAbsent(b)
	if aAbsent || bAbsent {
		return aAbsent && bAbsent
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Pointer {
		if va.Pointer() == vb.Pointer() {
			return true
		}
		if ea, eb := va.Elem(), vb.Elem(); ea.Kind() == reflect.Struct {
			return structEquivalent(ea, eb)
		}
	}
	switch va.Kind() {
	case reflect.Struct:
		return structEquivalent(addressable(va), addressable(vb))
	case reflect.Map:
		return mapEquivalent(va, vb)
	}
	return valuesEquivalent(va, vb)
}

func structEquivalent(x, y reflect.Value) bool {
	for _, i := range comparedFields(x.Type()) {
		if !valuesEquivalent(field(x, i), field(y, i)) {
			return false
		}
	}
	return true
}

// mapEquivalent walks a's entries. Lengths must match so that the result
// does not depend on argument order.
func mapEquivalent(x, y reflect.Value) bool {
	if x.Pointer() == y.Pointer() {
		return true
	}
	if x.Len() != y.Len() {
		return false
	}
	iter := x.MapRange()
	for iter.Next() {
		other := y.MapIndex(iter.Key())
		if !other.IsValid() {
			return false
		}
		if !valuesEquivalent(iter.Value(), other) {
			return false
		}
	}
	return true
}

// valuesEquivalent compares two values of the same static type.
func valuesEquivalent(x, y reflect.Value) bool {
	if x.Kind() == reflect.Interface {
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		x, y = x.Elem(), y.Elem()
		if x.Type() != y.Type() {
			return false
		}
	}

	switch x.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
	}

	switch x.Kind() {
	case reflect.Func:
		return funcsEquivalent(x, y)
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		if x.Pointer() == y.Pointer() {
			return true
		}
	case reflect.Slice:
		if x.Pointer() == y.Pointer() && x.Len() == y.Len() {
			return true
		}
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return x.Equal(y)
	case reflect.Float32, reflect.Float64:
		return sameFloat(x.Float(), y.Float())
	case reflect.Complex64, reflect.Complex128:
		cx, cy := x.Complex(), y.Complex()
		return sameFloat(real(cx), real(cy)) && sameFloat(imag(cx), imag(cy))
	}

	if x.Type().Implements(boundType) && x.CanInterface() {
		return boundEquivalent(x.Interface().(Bound), y.Interface().(Bound))
	}
	if equal, ok := customEqual(x, y); ok {
		return equal
	}

	switch x.Kind() {
	case reflect.Struct:
		return structEquivalent(addressable(x), addressable(y))
	case reflect.Array:
		x, y = addressable(x), addressable(y)
		for i := 0; i < x.Len(); i++ {
			if !valuesEquivalent(exported(x.Index(i)), exported(y.Index(i))) {
				return false
			}
		}
		return true
	}
	return false
}

// sameFloat is == except that a NaN matches the identical NaN, which keeps
// Equivalent reflexive.
func sameFloat(a, b float64) bool {
	return a == b || math.Float64bits(a) == math.Float64bits(b)
}

// customEqual delegates to Equals(any) bool or Equal(T) bool when the type
// provides one. A panicking method counts as unequal.
func customEqual(x, y reflect.Value) (equal bool, ok bool) {
	if !x.CanInterface() || !y.CanInterface() {
		return false, false
	}
	defer errors.RecoverWithCallback("props.Equivalent", func(any) {
		equal, ok = false, true
	})
	if e, isEqualer := x.Interface().(Equaler); isEqualer {
		return e.Equals(y.Interface()), true
	}
	if method := equalMethod(x); method.IsValid() {
		return method.Call([]reflect.Value{y})[0].Bool(), true
	}
	return false, false
}

// equalMethod finds an Equal(T) bool method for x's type T.
func equalMethod(x reflect.Value) reflect.Value {
	method := x.MethodByName("Equal")
	if !method.IsValid() && x.Kind() != reflect.Pointer && x.CanAddr() {
		method = x.Addr().MethodByName("Equal")
	}
	if !method.IsValid() {
		return reflect.Value{}
	}
	t := method.Type()
	if t.NumIn() != 1 || t.NumOut() != 1 || t.In(0) != x.Type() || t.Out(0).Kind() != reflect.Bool {
		return reflect.Value{}
	}
	return method
}
