package stringv

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCaseTransforms(t *testing.T) {
	if got := FromString("FÒÔ Bàř").ToLowerCase().String(); got != "fòô bàř" {
		t.Errorf("ToLowerCase = %q", got)
	}
	if got := FromString("fòô bàř").ToUpperCase().String(); got != "FÒÔ BÀŘ" {
		t.Errorf("ToUpperCase = %q", got)
	}
	if got := FromString("foo Bar").LowerCaseFirst().String(); got != "foo Bar" {
		t.Errorf("LowerCaseFirst = %q", got)
	}
	if got := FromString("Foo Bar").LowerCaseFirst().String(); got != "foo Bar" {
		t.Errorf("LowerCaseFirst = %q", got)
	}
	if got := FromString("foo Bar").UpperCaseFirst().String(); got != "Foo Bar" {
		t.Errorf("UpperCaseFirst = %q", got)
	}
	if got := FromString("").UpperCaseFirst().String(); got != "" {
		t.Errorf("UpperCaseFirst on empty = %q", got)
	}
}

func TestToTitleCase(t *testing.T) {
	if got := FromString("hello world").ToTitleCase().String(); got != "Hello World" {
		t.Errorf("ToTitleCase = %q", got)
	}
}

func TestSwapCase(t *testing.T) {
	if got := FromString("Hello Wörld").SwapCase().String(); got != "hELLO wÖRLD" {
		t.Errorf("SwapCase = %q", got)
	}
	// involution on bicameral text
	s := FromString("aBc Def")
	if got := s.SwapCase().SwapCase().String(); got != s.String() {
		t.Errorf("SwapCase twice = %q", got)
	}
}

func TestHumanize(t *testing.T) {
	if got := FromString("author_id").Humanize().String(); got != "Author" {
		t.Errorf("Humanize = %q", got)
	}
	if got := FromString("  first_name ").Humanize().String(); got != "First name" {
		t.Errorf("Humanize = %q", got)
	}
}

func TestTitleize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stringv")
	defer teardown()
	//
	if got := FromString("hello WORLD").Titleize().String(); got != "Hello World" {
		t.Errorf("Titleize = %q", got)
	}
	if got := FromString("  foo-bar baz ").Titleize().String(); got != "Foo-Bar Baz" {
		t.Errorf("Titleize = %q", got)
	}
}

func TestClassPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stringv")
	defer teardown()
	//
	tests := []struct {
		name string
		pred func(String) bool
		yes  []string
		no   []string
	}{
		{"HasLowerCase", String.HasLowerCase, []string{"foo", "Foo", "fòô"}, []string{"FOO", "123", ""}},
		{"HasUpperCase", String.HasUpperCase, []string{"FOO", "Foo", "FÒÔ"}, []string{"foo", "123", ""}},
		{"IsAlpha", String.IsAlpha, []string{"fòôbàř", "Foo", ""}, []string{"foo bar", "foo1"}},
		{"IsAlphanumeric", String.IsAlphanumeric, []string{"fòô123", "９", ""}, []string{"foo bar", "a-b"}},
		{"IsBlank", String.IsBlank, []string{"", " \t\n", " "}, []string{" x "}},
		{"IsHexadecimal", String.IsHexadecimal, []string{"deadBEEF01", ""}, []string{"0x12", "ghij"}},
		{"IsLowerCase", String.IsLowerCase, []string{"fòôbàř", ""}, []string{"fòô bàř", "Foo"}},
		{"IsUpperCase", String.IsUpperCase, []string{"FÒÔBÀŘ", ""}, []string{"FÒÔ BÀŘ", "fOO"}},
	}
	for _, tc := range tests {
		for _, y := range tc.yes {
			if !tc.pred(FromString(y)) {
				t.Errorf("%s(%q) = false, want true", tc.name, y)
			}
		}
		for _, n := range tc.no {
			if tc.pred(FromString(n)) {
				t.Errorf("%s(%q) = true, want false", tc.name, n)
			}
		}
	}
}
