package core

import (
	"slices"
	"testing"

	"github.com/go-drift/interop/pkg/props"
)

type itemProps struct {
	Key any
	ID  string
}

type otherItemProps struct {
	Key any
}

func keyed(keys ...any) []props.Envelope {
	envs := make([]props.Envelope, len(keys))
	for i, k := range keys {
		envs[i] = props.Wrap(itemProps{Key: k})
	}
	return envs
}

func TestCanReuse_SameTypeSameKey(t *testing.T) {
	if !CanReuse(props.Wrap(itemProps{Key: "same", ID: "1"}), props.Wrap(itemProps{Key: "same", ID: "2"})) {
		t.Error("expected reuse for same type and key")
	}
}

func TestCanReuse_SameTypeDifferentKey(t *testing.T) {
	if CanReuse(props.Wrap(itemProps{Key: "a"}), props.Wrap(itemProps{Key: "b"})) {
		t.Error("expected no reuse for different keys")
	}
}

func TestCanReuse_DifferentType(t *testing.T) {
	if CanReuse(props.Wrap(itemProps{Key: 1}), props.Wrap(otherItemProps{Key: 1})) {
		t.Error("expected no reuse for different props types")
	}
}

func TestCanReuse_MissingKeyDiffersFromZero(t *testing.T) {
	if CanReuse(props.Wrap(itemProps{}), props.Wrap(itemProps{Key: 0})) {
		t.Error("a missing key must not match key 0")
	}
	if !CanReuse(props.Wrap(itemProps{ID: "a"}), props.Wrap(itemProps{ID: "b"})) {
		t.Error("two unkeyed props of the same type should be reusable")
	}
}

func TestMatchChildren_KeyedReorder(t *testing.T) {
	got := MatchChildren(keyed("a", "b", "c"), keyed("c", "a", "b"))
	if want := []int{2, 0, 1}; !slices.Equal(got, want) {
		t.Errorf("MatchChildren() = %v, want %v", got, want)
	}
}

func TestMatchChildren_KeyRemovedAndAdded(t *testing.T) {
	got := MatchChildren(keyed("a", "b", "c"), keyed("a", "d", "c"))
	if want := []int{0, -1, 2}; !slices.Equal(got, want) {
		t.Errorf("MatchChildren() = %v, want %v", got, want)
	}
}

func TestMatchChildren_MixedKeyedUnkeyed(t *testing.T) {
	prev := keyed("a", nil, "b", nil)
	next := keyed(nil, "b", nil, "a", nil)
	got := MatchChildren(prev, next)
	if want := []int{1, 2, 3, 0, -1}; !slices.Equal(got, want) {
		t.Errorf("MatchChildren() = %v, want %v", got, want)
	}
}

func TestMatchChildren_ZeroKeyIsAKey(t *testing.T) {
	prev := keyed(nil, 0)
	next := keyed(0, nil)
	got := MatchChildren(prev, next)
	if want := []int{1, 0}; !slices.Equal(got, want) {
		t.Errorf("MatchChildren() = %v, want %v", got, want)
	}
}

func TestMatchChildren_DuplicateKeysUsedOnce(t *testing.T) {
	got := MatchChildren(keyed("a", "a"), keyed("a", "a"))
	if want := []int{0, -1}; !slices.Equal(got, want) {
		t.Errorf("MatchChildren() = %v, want %v", got, want)
	}
}
