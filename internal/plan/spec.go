// Package plan turns symbolic placement specs into concrete rectangles.
// It is pure geometry: no server state, no persistence. Cycling specs
// derive their next step from the window's present rectangle alone.
package plan

import "fmt"

// Horiz is the horizontal placement spec.
type Horiz int

const (
	HorizCurrent Horiz = iota
	HorizFull
	HorizLeft25
	HorizLeft50
	HorizLeft75
	HorizRight25
	HorizRight50
	HorizRight75
	HorizLeftThird
	HorizMidThird
	HorizRightThird
	// HorizLeft and HorizRight cycle 50 -> 25 -> 75 -> 50 on repeated
	// invocations against the same window.
	HorizLeft
	HorizRight
)

// Vert is the vertical placement spec. No cycling is defined
// vertically; there is only one size per direction.
type Vert int

const (
	VertCurrent Vert = iota
	VertTop
	VertBottom
	VertFull
)

// HAlign anchors a percent-sized window horizontally.
type HAlign int

const (
	HAlignNone HAlign = iota
	HAlignLeft
	HAlignMiddle
	HAlignRight
)

// VAlign anchors a percent-sized window vertically.
type VAlign int

const (
	VAlignNone VAlign = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

var horizNames = map[string]Horiz{
	"current":     HorizCurrent,
	"full":        HorizFull,
	"left":        HorizLeft,
	"right":       HorizRight,
	"left25":      HorizLeft25,
	"left50":      HorizLeft50,
	"left75":      HorizLeft75,
	"right25":     HorizRight25,
	"right50":     HorizRight50,
	"right75":     HorizRight75,
	"left-third":  HorizLeftThird,
	"mid-third":   HorizMidThird,
	"right-third": HorizRightThird,
}

var vertNames = map[string]Vert{
	"current": VertCurrent,
	"top":     VertTop,
	"bottom":  VertBottom,
	"full":    VertFull,
}

// ParseHoriz parses a horizontal spec name as used on the command line
// and in preset files.
func ParseHoriz(s string) (Horiz, error) {
	if h, ok := horizNames[s]; ok {
		return h, nil
	}
	return HorizCurrent, fmt.Errorf("unknown horizontal spec %q (want current, full, left, right, left25/50/75, right25/50/75, left-third, mid-third or right-third)", s)
}

// ParseVert parses a vertical spec name.
func ParseVert(s string) (Vert, error) {
	if v, ok := vertNames[s]; ok {
		return v, nil
	}
	return VertCurrent, fmt.Errorf("unknown vertical spec %q (want current, top, bottom or full)", s)
}

// ParseHAlign parses a horizontal alignment name; the empty string means
// no alignment.
func ParseHAlign(s string) (HAlign, error) {
	switch s {
	case "":
		return HAlignNone, nil
	case "left":
		return HAlignLeft, nil
	case "middle":
		return HAlignMiddle, nil
	case "right":
		return HAlignRight, nil
	}
	return HAlignNone, fmt.Errorf("unknown horizontal alignment %q (want left, middle or right)", s)
}

// ParseVAlign parses a vertical alignment name; the empty string means
// no alignment.
func ParseVAlign(s string) (VAlign, error) {
	switch s {
	case "":
		return VAlignNone, nil
	case "top":
		return VAlignTop, nil
	case "middle":
		return VAlignMiddle, nil
	case "bottom":
		return VAlignBottom, nil
	}
	return VAlignNone, fmt.Errorf("unknown vertical alignment %q (want top, middle or bottom)", s)
}
