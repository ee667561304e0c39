package props

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"unsafe"
)

// Bound is a callback paired with the receiver it was bound to.
// Equivalent compares Bound values by receiver identity and function
// instead of by the identity of the callback value itself.
type Bound interface {
	// Unbound returns the function before binding.
	Unbound() any
	// Target returns the receiver the function is bound to.
	Target() any
}

// BoundFunc is a one-argument callback bound to a receiver of type R.
type BoundFunc[R, A any] struct {
	recv R
	fn   func(R, A)
}

// Bind pairs recv with fn. Method expressions fit directly:
//
//	props.Bind(s, (*listState).onSelect)
func Bind[R, A any](recv R, fn func(R, A)) BoundFunc[R, A] {
	return BoundFunc[R, A]{recv: recv, fn: fn}
}

// Invoke calls the function with the bound receiver.
func (b BoundFunc[R, A]) Invoke(arg A) {
	b.fn(b.recv, arg)
}

// Unbound returns the function before binding.
func (b BoundFunc[R, A]) Unbound() any { return b.fn }

// Target returns the bound receiver.
func (b BoundFunc[R, A]) Target() any { return b.recv }

// BoundAction is a zero-argument callback bound to a receiver of type R.
type BoundAction[R any] struct {
	recv R
	fn   func(R)
}

// BindAction pairs recv with fn.
func BindAction[R any](recv R, fn func(R)) BoundAction[R] {
	return BoundAction[R]{recv: recv, fn: fn}
}

// Invoke calls the function with the bound receiver.
func (b BoundAction[R]) Invoke() {
	b.fn(b.recv)
}

// Unbound returns the function before binding.
func (b BoundAction[R]) Unbound() any { return b.fn }

// Target returns the bound receiver.
func (b BoundAction[R]) Target() any { return b.recv }

// boundEquivalent applies the bound-callback rules: same receiver and same
// function value, or same receiver and same compiled code. The trust flag
// drops the receiver requirement.
func boundEquivalent(x, y Bound) bool {
	ux, uy := reflect.ValueOf(x.Unbound()), reflect.ValueOf(y.Unbound())
	if xLive, yLive := isLiveFunc(ux), isLiveFunc(uy); !xLive || !yLive {
		return !xLive && !yLive
	}
	if sameTarget(x.Target(), y.Target()) {
		if funcIdentity(ux) == funcIdentity(uy) {
			return true
		}
		if sameSource(ux, uy) {
			return true
		}
	}
	return TrustHomogeneousOrigin() && sameSource(ux, uy)
}

// funcsEquivalent compares two plain func values of the same type.
func funcsEquivalent(x, y reflect.Value) bool {
	if funcIdentity(x) == funcIdentity(y) {
		return true
	}
	return TrustHomogeneousOrigin() && sameSource(x, y)
}

func isLiveFunc(v reflect.Value) bool {
	return v.IsValid() && v.Kind() == reflect.Func && !v.IsNil()
}

// funcIdentity returns the closure pointer held by a func value. Method
// values and capturing closures get a fresh one per evaluation; top-level
// functions and method expressions share a static one.
func funcIdentity(v reflect.Value) unsafe.Pointer {
	if !v.CanAddr() {
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}
	return *(*unsafe.Pointer)(unsafe.Pointer(v.UnsafeAddr()))
}

// sameSource reports whether two funcs run the same compiled code.
func sameSource(x, y reflect.Value) bool {
	if x.Pointer() == y.Pointer() {
		return true
	}
	dx, dy := describeFunc(x.Pointer()), describeFunc(y.Pointer())
	return dx != "" && dx == dy
}

// closureSuffix matches the compiler-assigned part of a closure symbol.
// Inlining the enclosing function copies the literal under another symbol
// (F.func1.func2, G.F.func1), so closures are told apart by position only.
var closureSuffix = regexp.MustCompile(`\.func\d`)

// describeFunc renders where a function's source lives. Closures are
// described by the position of their literal; other functions also carry
// their symbol, since generated wrappers share a position.
func describeFunc(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	file, line := fn.FileLine(fn.Entry())
	if closureSuffix.MatchString(fn.Name()) {
		return fmt.Sprintf("closure@%s:%d", file, line)
	}
	return fmt.Sprintf("%s@%s:%d", fn.Name(), file, line)
}

// sameTarget reports reference identity for receivers: pointer-like kinds
// by address, other comparable values with ==.
func sameTarget(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return funcIdentity(va) == funcIdentity(vb)
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	return va.Comparable() && vb.Comparable() && va.Equal(vb)
}
