package core

import (
	"reflect"

	"github.com/go-drift/interop/pkg/props"
)

// CanReuse reports whether an instance rendered from prev can be updated
// in place with next: same props type, and the same key or no key on both.
func CanReuse(prev, next props.Envelope) bool {
	if reflect.TypeOf(prev.Props()) != reflect.TypeOf(next.Props()) {
		return false
	}
	prevKey, prevHas := prev.Key()
	nextKey, nextHas := next.Key()
	if prevHas != nextHas {
		return false
	}
	return prevKey == nextKey
}

// MatchChildren pairs each next envelope with a reusable index in prev, or
// -1 when a fresh instance is needed. Keyed children match by key
// anywhere in prev; unkeyed children match by position among the unkeyed.
// Each prev index is used at most once.
func MatchChildren(prev, next []props.Envelope) []int {
	keyed := make(map[any]int)
	var unkeyed []int
	for i, env := range prev {
		if key, ok := env.Key(); ok {
			if _, dup := keyed[key]; !dup {
				keyed[key] = i
			}
			continue
		}
		unkeyed = append(unkeyed, i)
	}

	matches := make([]int, len(next))
	nextUnkeyed := 0
	for i, env := range next {
		matches[i] = -1
		if key, ok := env.Key(); ok {
			if j, found := keyed[key]; found && CanReuse(prev[j], env) {
				matches[i] = j
				delete(keyed, key)
			}
			continue
		}
		if nextUnkeyed < len(unkeyed) {
			j := unkeyed[nextUnkeyed]
			nextUnkeyed++
			if CanReuse(prev[j], env) {
				matches[i] = j
			}
		}
	}
	return matches
}
