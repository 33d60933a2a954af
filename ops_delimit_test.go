package stringv

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDelimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stringv")
	defer teardown()
	//
	tests := []struct {
		in, sep, want string
	}{
		{"HelloWorld", "-", "hello-world"},
		{"testCase", "-", "test-case"},
		{"Test Case", "-", "test-case"},
		{"test_case", "-", "test-case"},
		{"test -case", "-", "test-case"},
		{"TestCase", "::", "test::case"},
		// boundaries next to multibyte letters
		{"fòôBàř", "-", "fòô-bàř"},
		{"fooÜber", "-", "foo-über"},
		{"ärgerÜberÄrger", "-", "ärger-über-ärger"},
	}
	for _, tc := range tests {
		if got := FromString(tc.in).Delimit(tc.sep).String(); got != tc.want {
			t.Errorf("Delimit(%q, %q) = %q, want %q", tc.in, tc.sep, got, tc.want)
		}
	}
}

func TestDasherizeUnderscored(t *testing.T) {
	if got := FromString("dataRate").Dasherize().String(); got != "data-rate" {
		t.Errorf("Dasherize = %q", got)
	}
	if got := FromString("CarSpeed").Underscored().String(); got != "car_speed" {
		t.Errorf("Underscored = %q", got)
	}
	if got := FromString("yes_we_can").Underscored().String(); got != "yes_we_can" {
		t.Errorf("Underscored = %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	s := FromString("  foo   bar\t\n baz  ")
	c := s.CollapseWhitespace()
	if c.String() != "foo bar baz" {
		t.Errorf("CollapseWhitespace = %q", c.String())
	}
	// idempotence
	if cc := c.CollapseWhitespace(); !cc.Equal(c) {
		t.Errorf("CollapseWhitespace not idempotent: %q", cc.String())
	}
	// non-breaking space counts as whitespace
	if got := FromString("a\u00a0 b").CollapseWhitespace().String(); got != "a b" {
		t.Errorf("CollapseWhitespace on NBSP = %q", got)
	}
}

func TestReplacePattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stringv")
	defer teardown()
	//
	s, err := FromString("fòô bàř").ReplacePattern(`ò+`, "ö", "")
	if err != nil || s.String() != "föô bàř" {
		t.Errorf("ReplacePattern = %q (%v)", s.String(), err)
	}
	s, err = FromString("ABC abc").ReplacePattern(`abc`, "x", "i")
	if err != nil || s.String() != "x x" {
		t.Errorf("ReplacePattern with i = %q (%v)", s.String(), err)
	}
	if _, err = FromString("x").ReplacePattern(`(`, "", ""); err == nil {
		t.Errorf("expected error for malformed pattern")
	}
}

func TestSplitPattern(t *testing.T) {
	parts, err := FromString("a1b22c").SplitPattern(`\d+`, -1)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(parts) != 3 || parts[2].String() != "c" {
		t.Errorf("SplitPattern = %v", parts)
	}
}

func TestWords(t *testing.T) {
	words := FromString("The quick  brown fox").Words()
	if len(words) != 4 || words[1].String() != "quick" {
		t.Errorf("Words = %v", words)
	}
	if n := FromString("The quick  brown fox").CountWords(); n != 4 {
		t.Errorf("CountWords = %d", n)
	}
	if words := FromString("").Words(); words != nil {
		t.Errorf("Words on empty = %v", words)
	}
}
