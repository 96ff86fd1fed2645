package plan

import "testing"

func TestParseHoriz(t *testing.T) {
	cases := map[string]Horiz{
		"current":     HorizCurrent,
		"full":        HorizFull,
		"left":        HorizLeft,
		"right":       HorizRight,
		"left50":      HorizLeft50,
		"right75":     HorizRight75,
		"mid-third":   HorizMidThird,
		"right-third": HorizRightThird,
	}
	for s, want := range cases {
		got, err := ParseHoriz(s)
		if err != nil {
			t.Fatalf("ParseHoriz(%q): unexpected error: %v", s, err)
		}
		if got != want {
			t.Fatalf("ParseHoriz(%q): expected %d, got %d", s, want, got)
		}
	}

	if _, err := ParseHoriz("sideways"); err == nil {
		t.Fatalf("expected error for unknown spec")
	}
}

func TestParseVert(t *testing.T) {
	if v, err := ParseVert("bottom"); err != nil || v != VertBottom {
		t.Fatalf("ParseVert(bottom): got %d, %v", v, err)
	}
	if _, err := ParseVert("left"); err == nil {
		t.Fatalf("expected error for horizontal name on vertical axis")
	}
}

func TestParseAlignments(t *testing.T) {
	if a, err := ParseHAlign(""); err != nil || a != HAlignNone {
		t.Fatalf("empty halign should be none: got %d, %v", a, err)
	}
	if a, err := ParseHAlign("middle"); err != nil || a != HAlignMiddle {
		t.Fatalf("ParseHAlign(middle): got %d, %v", a, err)
	}
	if _, err := ParseHAlign("top"); err == nil {
		t.Fatalf("expected error for vertical name on horizontal axis")
	}
	if a, err := ParseVAlign("bottom"); err != nil || a != VAlignBottom {
		t.Fatalf("ParseVAlign(bottom): got %d, %v", a, err)
	}
}
