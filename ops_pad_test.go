package stringv

import (
	"errors"
	"strings"
	"testing"
)

func TestPadRight(t *testing.T) {
	s := FromString("fòô")
	for n := 0; n < 5; n++ {
		p, err := s.Pad(s.Len()+n, " ", SideRight)
		if err != nil {
			t.Fatal(err.Error())
		}
		if p.Len() != s.Len()+n {
			t.Errorf("padded length = %d, want %d", p.Len(), s.Len()+n)
		}
		if !p.StartsWith("fòô") {
			t.Errorf("padded value does not start with original content")
		}
	}
}

func TestPadLeft(t *testing.T) {
	p, err := FromString("bar").Pad(5, " ", SideLeft)
	if err != nil || p.String() != "  bar" {
		t.Errorf("Pad left = %q (%v)", p.String(), err)
	}
}

func TestPadBothSplitsFloorCeil(t *testing.T) {
	p, err := FromString("x").Pad(4, "-", SideBoth)
	if err != nil || p.String() != "-x--" {
		t.Errorf("Pad both = %q (%v)", p.String(), err)
	}
}

func TestPadMultiCodepointUnit(t *testing.T) {
	p, err := FromString("ab").Pad(7, "öü", SideRight)
	if err != nil || p.String() != "aböüöüö" {
		t.Errorf("Pad with multi-codepoint unit = %q (%v)", p.String(), err)
	}
}

func TestPadNoOp(t *testing.T) {
	s := FromString("hello")
	p, err := s.Pad(3, " ", SideRight)
	if err != nil || p.String() != "hello" {
		t.Errorf("Pad below current length must be a no-op, got %q (%v)", p.String(), err)
	}
}

func TestPadInvalidSide(t *testing.T) {
	if _, err := FromString("x").Pad(9, " ", PadSide(42)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for unknown side, got %v", err)
	}
	if _, err := FromString("x").Pad(9, "", SideLeft); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for empty pad unit, got %v", err)
	}
}

func TestPadConvenience(t *testing.T) {
	if got := FromString("7").PadLeftTo(3).String(); got != "  7" {
		t.Errorf("PadLeftTo = %q", got)
	}
	if got := FromString("7").PadRightTo(3).String(); got != "7  " {
		t.Errorf("PadRightTo = %q", got)
	}
	if got := FromString(strings.Repeat("x", 4)).PadRightTo(2).String(); got != "xxxx" {
		t.Errorf("PadRightTo below length = %q", got)
	}
}
