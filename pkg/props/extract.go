package props

import (
	"math"
	"reflect"

	"github.com/go-drift/interop/pkg/errors"
)

// reserved names one kind of host metadata and where to look for it.
type reserved struct {
	fields   [2]string // direct fields, in priority order
	method   string    // zero-argument accessor on struct props
	mapEntry string    // zero-argument accessor entry on map props
	accept   func(reflect.Value) (any, bool)
}

var (
	keyLookup = reserved{
		fields:   [2]string{"key", "Key"},
		method:   "GetKey",
		mapEntry: "getKey",
		accept:   acceptKey,
	}
	refLookup = reserved{
		fields:   [2]string{"ref", "Ref"},
		method:   "GetRef",
		mapEntry: "getRef",
		accept:   acceptRef,
	}
)

// lookup resolves r against a non-absent props value. The first step that
// yields an acceptable value wins.
func (r reserved) lookup(p any) (any, bool) {
	rv := reflect.ValueOf(p)

	if sv, ok := structView(rv); ok {
		for _, name := range r.fields {
			if f, ok := namedField(sv, name); ok {
				if v, ok := r.accept(f); ok {
					return v, true
				}
			}
		}
		method := rv.MethodByName(r.method)
		if !method.IsValid() && sv.CanAddr() {
			method = sv.Addr().MethodByName(r.method)
		}
		if method.IsValid() {
			if out, ok := callAccessor(method, r.method); ok {
				return r.accept(out)
			}
		}
		return nil, false
	}

	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		for _, name := range r.fields {
			if v, ok := r.accept(mapEntry(rv, name)); ok {
				return v, true
			}
		}
		entry := mapEntry(rv, r.mapEntry)
		for entry.IsValid() && entry.Kind() == reflect.Interface && !entry.IsNil() {
			entry = entry.Elem()
		}
		if entry.IsValid() && entry.Kind() == reflect.Func && !entry.IsNil() {
			if out, ok := callAccessor(entry, r.mapEntry); ok {
				return r.accept(out)
			}
		}
	}
	return nil, false
}

func mapEntry(m reflect.Value, name string) reflect.Value {
	return m.MapIndex(reflect.ValueOf(name).Convert(m.Type().Key()))
}

// callAccessor invokes a zero-argument, single-result accessor. Wrong arity
// and panics both count as "no value"; panics are reported, not raised.
func callAccessor(fn reflect.Value, name string) (out reflect.Value, ok bool) {
	t := fn.Type()
	if t.NumIn() != 0 || t.NumOut() != 1 {
		return reflect.Value{}, false
	}
	defer errors.RecoverWithCallback("props."+name, func(any) {
		out, ok = reflect.Value{}, false
	})
	return fn.Call(nil)[0], true
}

// acceptKey keeps string and integer keys, normalised to string and int.
// Zero values are present keys.
func acceptKey(v reflect.Value) (any, bool) {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, false
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt {
			return nil, false
		}
		return int(u), true
	}
	return nil, false
}

// acceptRef keeps anything invocable: a non-nil func or a live Bound.
func acceptRef(v reflect.Value) (any, bool) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	if v.Kind() == reflect.Func {
		if v.IsNil() {
			return nil, false
		}
		return v.Interface(), true
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false
	}
	if b, ok := v.Interface().(Bound); ok && isLiveFunc(reflect.ValueOf(b.Unbound())) && takesOneArg(v.MethodByName("Invoke")) {
		return b, true
	}
	return nil, false
}

func takesOneArg(fn reflect.Value) bool {
	return fn.IsValid() && fn.Type().NumIn() == 1 && !fn.Type().IsVariadic()
}

// invokeRef hands instance to a ref callback. Funcs must take exactly one
// argument; Bound values are called through their Invoke method.
func invokeRef(ref any, instance any) (ok bool) {
	fn := reflect.ValueOf(ref)
	if fn.Kind() != reflect.Func {
		fn = fn.MethodByName("Invoke")
		if !fn.IsValid() {
			return false
		}
	}
	if !takesOneArg(fn) {
		return false
	}
	t := fn.Type()
	var arg reflect.Value
	if instance == nil {
		switch t.In(0).Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			arg = reflect.Zero(t.In(0))
		default:
			return false
		}
	} else {
		arg = reflect.ValueOf(instance)
		if !arg.Type().AssignableTo(t.In(0)) {
			return false
		}
	}
	defer errors.RecoverWithCallback("props.AttachRef", func(any) {
		ok = false
	})
	fn.Call([]reflect.Value{arg})
	return true
}
