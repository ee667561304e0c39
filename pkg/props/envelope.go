package props

// Top-level field names the host runtime recognises on an Envelope.
const (
	PropsField = "props"
	KeyField   = "key"
	RefField   = "ref"
)

// Envelope carries a props value to the host runtime untouched, with the
// reconciliation key and instance-reference callback lifted beside it.
//
// An Envelope is immutable and built fresh for every render. Key and ref
// are either present or missing; there is no present-but-nil state.
type Envelope struct {
	props  any
	key    any
	ref    any
	hasKey bool
	hasRef bool
}

// Wrap builds an Envelope for p. Absent props (nil, nil pointer, nil map)
// skip extraction. Wrap never panics on account of p: failing accessors
// are reported to the error handler and treated as absent.
func Wrap(p any) Envelope {
	env := Envelope{props: p}
	if isAbsent(p) {
		return env
	}
	env.key, env.hasKey = keyLookup.lookup(p)
	env.ref, env.hasRef = refLookup.lookup(p)
	return env
}

// Unwrap returns the props value e was built from.
func Unwrap(e Envelope) any {
	return e.props
}

// Props returns the wrapped props value.
func (e Envelope) Props() any {
	return e.props
}

// Key returns the reconciliation key, a string or an int.
func (e Envelope) Key() (any, bool) {
	return e.key, e.hasKey
}

// HasKey reports whether a key was found.
func (e Envelope) HasKey() bool {
	return e.hasKey
}

// Ref returns the instance-reference callback, a func or a Bound.
func (e Envelope) Ref() (any, bool) {
	return e.ref, e.hasRef
}

// HasRef reports whether an instance-reference callback was found.
func (e Envelope) HasRef() bool {
	return e.hasRef
}

// Fields renders the top-level shape handed to the host: props always,
// key and ref only when present.
func (e Envelope) Fields() map[string]any {
	fields := make(map[string]any, 3)
	fields[PropsField] = e.props
	if e.hasKey {
		fields[KeyField] = e.key
	}
	if e.hasRef {
		fields[RefField] = e.ref
	}
	return fields
}

// AttachRef passes a live instance handle to the reference callback. It
// reports false when there is no callback, the callback cannot take
// instance, or the callback panicked.
func (e Envelope) AttachRef(instance any) bool {
	if !e.hasRef {
		return false
	}
	return invokeRef(e.ref, instance)
}
