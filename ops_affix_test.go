package stringv

import "testing"

func TestLongestCommonPrefix(t *testing.T) {
	a := FromString("interspecies")
	b := FromString("interstellar")
	if got := a.LongestCommonPrefix(b).String(); got != "inters" {
		t.Errorf("LongestCommonPrefix = %q, want %q", got, "inters")
	}
	if got := a.LongestCommonPrefix(FromString("xyz")).String(); got != "" {
		t.Errorf("disjoint prefix = %q", got)
	}
	if got := a.LongestCommonPrefix(FromString("")).String(); got != "" {
		t.Errorf("empty other = %q", got)
	}
}

func TestLongestCommonSuffix(t *testing.T) {
	if got := FromString("wording").LongestCommonSuffix(FromString("crafting")).String(); got != "ing" {
		t.Errorf("LongestCommonSuffix = %q, want %q", got, "ing")
	}
	if got := FromString("fòôbàř").LongestCommonSuffix(FromString("fòobàř")).String(); got != "bàř" {
		t.Errorf("LongestCommonSuffix = %q, want %q", got, "bàř")
	}
}

func TestLongestCommonSubstring(t *testing.T) {
	if got := FromString("abcdef").LongestCommonSubstring(FromString("zabcex")).String(); got != "abc" {
		t.Errorf("LongestCommonSubstring = %q, want %q", got, "abc")
	}
	if got := FromString("fòôbàř").LongestCommonSubstring(FromString("bàřfòô")).String(); got != "fòô" {
		t.Errorf("LongestCommonSubstring = %q, want %q", got, "fòô")
	}
}

func TestLongestCommonSubstringTieBreak(t *testing.T) {
	// "ab" and "cd" are both maximal; the run ending earliest in the
	// receiver wins.
	if got := FromString("abxcd").LongestCommonSubstring(FromString("abycd")).String(); got != "ab" {
		t.Errorf("tie-break picked %q, want %q", got, "ab")
	}
}

func TestLongestCommonSubstringEmpty(t *testing.T) {
	if got := FromString("").LongestCommonSubstring(FromString("abc")).String(); got != "" {
		t.Errorf("empty receiver = %q", got)
	}
	if got := FromString("abc").LongestCommonSubstring(FromString("")).String(); got != "" {
		t.Errorf("empty other = %q", got)
	}
}
