package geom

import "testing"

func TestUnframeReframeRoundTrip(t *testing.T) {
	boxes := []Box2D{
		FromOriginSize(100, 100, 800, 600),
		FromOriginSize(-50, 20, 300, 200),
		FromOriginSize(0, 0, 1, 1),
	}
	offsets := []SideOffsets{
		{},
		{Left: 4, Top: 28, Right: 4, Bottom: 4},
		{Left: 1, Top: 1, Right: 2, Bottom: 3},
	}

	for _, b := range boxes {
		for _, off := range offsets {
			got := Reframe(Unframe(b, off), off)
			if got != b {
				t.Fatalf("round trip changed box: %+v with %+v -> %+v", b, off, got)
			}
		}
	}
}

func TestUnframeGrowsOutward(t *testing.T) {
	b := FromOriginSize(100, 100, 800, 600)
	off := SideOffsets{Left: 4, Top: 28, Right: 4, Bottom: 4}

	got := Unframe(b, off)
	want := Box2D{Min: Point{X: 96, Y: 72}, Max: Point{X: 904, Y: 704}}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestIntersection(t *testing.T) {
	a := FromOriginSize(0, 0, 100, 100)

	if _, ok := a.Intersection(FromOriginSize(200, 200, 10, 10)); ok {
		t.Fatalf("expected no intersection with disjoint box")
	}

	// Touching edges share no area.
	if _, ok := a.Intersection(FromOriginSize(100, 0, 10, 100)); ok {
		t.Fatalf("expected no intersection with edge-adjacent box")
	}

	got, ok := a.Intersection(FromOriginSize(50, 50, 100, 100))
	if !ok {
		t.Fatalf("expected intersection")
	}
	want := Box2D{Min: Point{X: 50, Y: 50}, Max: Point{X: 100, Y: 100}}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	// A contained box intersects to itself.
	inner := FromOriginSize(10, 10, 20, 20)
	got, ok = a.Intersection(inner)
	if !ok || got != inner {
		t.Fatalf("expected contained box %+v, got %+v (ok=%v)", inner, got, ok)
	}
}

func TestDivFloor(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{6, 3, 2},
		{-6, 3, -2},
		{1059, 2, 529},
	}
	for _, c := range cases {
		if got := DivFloor(c.a, c.b); got != c.want {
			t.Fatalf("DivFloor(%d, %d): expected %d, got %d", c.a, c.b, c.want, got)
		}
	}
}
