// Package props wraps component props for a keyed reconciliation host and
// decides when two props snapshots are equivalent.
//
// # Envelopes
//
// The host runtime identifies component instances by two reserved top-level
// fields, a reconciliation key and an instance-reference callback. Wrap pulls
// both out of an arbitrary props value and stores them beside the untouched
// value:
//
//	type RowProps struct {
//	    Key   int
//	    Label string
//	}
//
//	env := props.Wrap(RowProps{Key: 0, Label: "first"})
//	env.Key()      // 0, true
//	env.Fields()   // map[key:0 props:{0 first}]
//	props.Unwrap(env).(RowProps).Label // "first"
//
// Lookup order for the key is the field "key", the field "Key", then a
// zero-argument GetKey method. The reference uses "ref", "Ref", then GetRef,
// and is kept only when the resolved value can be called. Map props use the
// literal entries "key", "Key", "getKey" and "ref", "Ref", "getRef".
// A zero or empty key is a present key; only a missing one is absent.
//
// # Equivalence
//
// Equivalent compares two props values field by field. Scalars compare by
// value, pointers, slices and maps by identity, nested structs recursively,
// and values with an Equals(any) bool or Equal(T) bool method through that
// method. Fields tagged `props:"-"` are ignored.
//
// Function-typed fields are equal when they hold the same function value.
// Callbacks built fresh on every render should be expressed as Bound values:
//
//	OnTap: props.Bind(s, (*counterState).increment)
//
// Two Bound values are equivalent when their receivers are identical and
// they wrap the same function. SetTrustHomogeneousOrigin enables a looser
// fallback that matches any two callbacks compiled from the same source; it
// ignores receivers and exists for test harnesses.
package props
