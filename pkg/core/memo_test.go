package core

import (
	"fmt"
	"testing"

	"github.com/go-drift/interop/pkg/props"
)

type counter struct {
	taps int
}

func (c *counter) tap(n int) { c.taps += n }

type buttonProps struct {
	Label string
	OnTap props.BoundFunc[*counter, int]
}

func TestMemo_SkipsEquivalentProps(t *testing.T) {
	c := &counter{}
	memo := NewMemo(func(p buttonProps) string { return "button:" + p.Label })

	render := func(label string) buttonProps {
		return buttonProps{Label: label, OnTap: props.Bind(c, (*counter).tap)}
	}

	if got := memo.Build(render("ok")); got != "button:ok" {
		t.Errorf("expected button:ok, got %q", got)
	}
	memo.Build(render("ok"))
	memo.Build(render("ok"))
	if memo.Builds() != 1 {
		t.Errorf("expected 1 build for equivalent props, got %d", memo.Builds())
	}

	if got := memo.Build(render("cancel")); got != "button:cancel" {
		t.Errorf("expected button:cancel, got %q", got)
	}
	if memo.Builds() != 2 {
		t.Errorf("expected rebuild after label change, got %d builds", memo.Builds())
	}
}

func TestMemo_RebuildsOnDifferentReceiver(t *testing.T) {
	a, b := &counter{}, &counter{taps: 1}
	memo := NewMemo(func(p buttonProps) int { return 0 })

	memo.Build(buttonProps{OnTap: props.Bind(a, (*counter).tap)})
	memo.Build(buttonProps{OnTap: props.Bind(b, (*counter).tap)})
	if memo.Builds() != 2 {
		t.Errorf("expected rebuild for a different receiver, got %d builds", memo.Builds())
	}
}

func TestMemo_Invalidate(t *testing.T) {
	memo := NewMemo(func(n int) string { return fmt.Sprint(n) })
	memo.Build(1)
	memo.Invalidate()
	memo.Build(1)
	if memo.Builds() != 2 {
		t.Errorf("expected Invalidate to force a rebuild, got %d builds", memo.Builds())
	}
}

func TestShouldUpdate(t *testing.T) {
	tests := []struct {
		name       string
		prev, next any
		want       bool
	}{
		{"both absent", nil, nil, false},
		{"mount", nil, buttonProps{Label: "a"}, true},
		{"unmount", buttonProps{Label: "a"}, nil, true},
		{"same", buttonProps{Label: "a"}, buttonProps{Label: "a"}, false},
		{"changed", buttonProps{Label: "a"}, buttonProps{Label: "b"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldUpdate(tt.prev, tt.next); got != tt.want {
				t.Errorf("ShouldUpdate() = %v, want %v", got, tt.want)
			}
		})
	}
}
