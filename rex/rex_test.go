package rex

import (
	"errors"
	"testing"

	"github.com/npillmayer/stringv/codec"
)

func TestMatch(t *testing.T) {
	ok, err := Match(`\p{L}+\d`, []byte("abc1"), codec.UTF8)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !ok {
		t.Errorf("expected match")
	}
	ok, err = Match(`^\d+$`, []byte("abc"), codec.UTF8)
	if err != nil || ok {
		t.Errorf("expected no match (%v)", err)
	}
}

func TestMatchRejectsBadPattern(t *testing.T) {
	if _, err := Match(`(`, []byte("x"), codec.UTF8); !errors.Is(err, ErrPattern) {
		t.Errorf("expected ErrPattern, got %v", err)
	}
}

func TestReplaceAll(t *testing.T) {
	out, err := ReplaceAll(`(\w+)@example`, "$1@test", "", []byte("bob@example.org"), codec.UTF8)
	if err != nil {
		t.Fatal(err.Error())
	}
	if string(out) != "bob@test.org" {
		t.Errorf("ReplaceAll = %q", out)
	}
}

func TestReplaceAllOptions(t *testing.T) {
	out, err := ReplaceAll(`abc`, "x", "i", []byte("ABC abc"), codec.UTF8)
	if err != nil || string(out) != "x x" {
		t.Errorf("case-insensitive replace = %q (%v)", out, err)
	}
	// unknown option letters are ignored
	out, err = ReplaceAll(`a`, "b", "qz", []byte("aa"), codec.UTF8)
	if err != nil || string(out) != "bb" {
		t.Errorf("replace with junk options = %q (%v)", out, err)
	}
}

func TestReplaceAllTranscodes(t *testing.T) {
	latin1, err := codec.Resolve("iso-8859-1")
	if err != nil {
		t.Fatal(err.Error())
	}
	raw, err := codec.Encode("Grüße", latin1)
	if err != nil {
		t.Fatal(err.Error())
	}
	out, err := ReplaceAll(`ü`, "ue", "", raw, latin1)
	if err != nil {
		t.Fatal(err.Error())
	}
	text, err := codec.Decode(out, latin1)
	if err != nil {
		t.Fatal(err.Error())
	}
	if text != "Grueße" {
		t.Errorf("transcoded replace = %q", text)
	}
}

func TestSplit(t *testing.T) {
	parts, err := Split(`\s*,\s*`, []byte("a, b ,c"), codec.UTF8, -1)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(parts) != 3 || parts[1] != "b" {
		t.Errorf("Split = %v", parts)
	}
	parts, err = Split(`,`, []byte("a,b,c"), codec.UTF8, 2)
	if err != nil || len(parts) != 2 || parts[1] != "b,c" {
		t.Errorf("Split with limit = %v (%v)", parts, err)
	}
}

func TestClass(t *testing.T) {
	if Class("alpha") != `\p{L}` {
		t.Errorf("Class(alpha) = %q", Class("alpha"))
	}
	if Class("no-such-class") != "" {
		t.Errorf("unknown class must map to empty string")
	}
	// the space class covers Unicode spacing, not just ASCII
	ok, err := Match("^"+Class("space")+"+$", []byte("  \t"), codec.UTF8)
	if err != nil || !ok {
		t.Errorf("space class missed Unicode whitespace (%v)", err)
	}
}
