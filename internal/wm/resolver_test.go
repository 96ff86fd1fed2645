package wm

import (
	"errors"
	"testing"

	"github.com/wmplace/wmplace/internal/geom"
)

func resolverGroup() *Group {
	box := geom.FromOriginSize(0, 0, 100, 100)
	return NewGroup(1, []Window{
		{ID: 1, Parent: 1, Category: CategoryRoot, Geom: geom.FromOriginSize(0, 0, 1920, 1080)},

		// Plain selectable client.
		{ID: 10, Parent: 1, Geom: box, Selectable: true},

		// Decoration chain: 20 and 21 are wrappers, 22 is the client.
		{ID: 22, Parent: 1, Geom: box, Selectable: true, Children: []WindowID{21}},
		{ID: 21, Parent: 22, Geom: box, Children: []WindowID{20}},
		{ID: 20, Parent: 21, Geom: box},

		// Container whose second child is the client; no selectable
		// ancestor on the way to the root.
		{ID: 30, Parent: 1, Geom: box, Children: []WindowID{31, 32}},
		{ID: 31, Parent: 30, Geom: box},
		{ID: 32, Parent: 30, Geom: box, Selectable: true},

		// Nothing selectable anywhere near this one.
		{ID: 40, Parent: 1, Geom: box},
	})
}

func TestResolveSelectableWindowDirectly(t *testing.T) {
	got, err := Resolve(resolverGroup(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}

func TestResolveWalksUpToSelectableAncestor(t *testing.T) {
	got, err := Resolve(resolverGroup(), 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 22 {
		t.Fatalf("expected ancestor 22, got %d", got)
	}
}

func TestResolveFallsBackToFirstSelectableChild(t *testing.T) {
	got, err := Resolve(resolverGroup(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 32 {
		t.Fatalf("expected child 32, got %d", got)
	}
}

func TestResolveFailsWhenNothingSelectable(t *testing.T) {
	_, err := Resolve(resolverGroup(), 40)
	if !errors.Is(err, ErrUnresolvedTarget) {
		t.Fatalf("expected ErrUnresolvedTarget, got %v", err)
	}
}

func TestResolveFailsForUnknownWindow(t *testing.T) {
	_, err := Resolve(resolverGroup(), 9999)
	if !errors.Is(err, ErrUnresolvedTarget) {
		t.Fatalf("expected ErrUnresolvedTarget, got %v", err)
	}
}
