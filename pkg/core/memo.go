package core

import "github.com/go-drift/interop/pkg/props"

// Memo caches the output of a build function and reruns it only when the
// props passed to Build are not equivalent to the previous props.
//
// Memo is NOT thread-safe. It belongs to a single component instance.
type Memo[P, R any] struct {
	build  func(P) R
	last   P
	output R
	built  bool
	builds int
}

// NewMemo creates a memo around build.
func NewMemo[P, R any](build func(P) R) *Memo[P, R] {
	return &Memo[P, R]{build: build}
}

// Build returns the cached output when p is equivalent to the previous
// props, otherwise calls the build function.
func (m *Memo[P, R]) Build(p P) R {
	if m.built && props.Equivalent(m.last, p) {
		m.last = p
		return m.output
	}
	m.last = p
	m.output = m.build(p)
	m.built = true
	m.builds++
	return m.output
}

// Builds returns how many times the build function has run.
func (m *Memo[P, R]) Builds() int {
	return m.builds
}

// Invalidate forces the next Build to rerun the build function.
func (m *Memo[P, R]) Invalidate() {
	m.built = false
}

// ShouldUpdate reports whether a component receiving next after prev has
// to rebuild.
func ShouldUpdate(prev, next any) bool {
	return !props.Equivalent(prev, next)
}
