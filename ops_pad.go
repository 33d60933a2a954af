package stringv

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"

	"github.com/npillmayer/stringv/codec"
)

// PadSide selects which side of a value receives padding.
type PadSide int

// Pad sides. SideBoth splits the deficit floor-left, ceil-right.
const (
	SideLeft PadSide = iota
	SideRight
	SideBoth
)

// Pad grows s to length codepoints by repeating unit on the given side.
//
// No padding occurs when length does not exceed the current length. unit may
// span multiple codepoints; the repeated padding is cut to the exact deficit.
// An empty unit or an unknown side fails with ErrInvalidArgument.
func (s String) Pad(length int, unit string, side PadSide) (String, error) {
	if unit == "" {
		return String{}, ErrInvalidArgument
	}
	deficit := length - s.Len()
	if deficit <= 0 {
		return s, nil
	}
	switch side {
	case SideLeft:
		return s.derive(padding(unit, deficit) + s.text), nil
	case SideRight:
		return s.derive(s.text + padding(unit, deficit)), nil
	case SideBoth:
		left := deficit / 2
		right := deficit - left
		return s.derive(padding(unit, left) + s.text + padding(unit, right)), nil
	}
	T().Errorf("stringv: unknown pad side %d", side)
	return String{}, ErrInvalidArgument
}

// PadLeftTo pads with spaces on the left up to length codepoints.
func (s String) PadLeftTo(length int) String {
	p, err := s.Pad(length, " ", SideLeft)
	assert(err == nil, "PadLeftTo: space padding cannot fail")
	return p
}

// PadRightTo pads with spaces on the right up to length codepoints.
func (s String) PadRightTo(length int) String {
	p, err := s.Pad(length, " ", SideRight)
	assert(err == nil, "PadRightTo: space padding cannot fail")
	return p
}

// padding repeats unit to cover n codepoints, then cuts to exactly n.
func padding(unit string, n int) string {
	if n <= 0 {
		return ""
	}
	ulen := codec.Length(unit)
	reps := (n + ulen - 1) / ulen
	return codec.Substr(strings.Repeat(unit, reps), 0, n)
}
