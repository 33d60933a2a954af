package stringv

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"encoding/base64"
	"math/rand/v2"
	"strings"

	"github.com/npillmayer/stringv/codec"
	"github.com/npillmayer/stringv/translit"
	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
)

// Repeat concatenates n copies of the content; n <= 0 yields the empty
// value.
func (s String) Repeat(n int) String {
	if n <= 0 {
		return s.derive("")
	}
	return s.derive(strings.Repeat(s.text, n))
}

// Surround wraps the content in sub on both sides.
func (s String) Surround(sub string) String {
	return s.derive(sub + s.text + sub)
}

// Reverse returns the content with codepoints in reverse order.
func (s String) Reverse() String {
	runes := []rune(s.text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return s.derive(string(runes))
}

// Shuffle returns a uniformly random permutation of the codepoints (not
// bytes) of the content.
func (s String) Shuffle() String {
	runes := []rune(s.text)
	rand.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	return s.derive(string(runes))
}

// Truncate cuts the content to at most length codepoints, with tail counted
// against that limit. Truncation may split a word; see SafeTruncate.
func (s String) Truncate(length int, tail string) String {
	if length >= s.Len() {
		return s
	}
	cut := length - codec.Length(tail)
	if cut < 0 {
		cut = 0
	}
	return s.derive(codec.Substr(s.text, 0, cut) + tail)
}

// SafeTruncate is Truncate backing off to the last whitespace boundary
// before the cut, so no word is split.
func (s String) SafeTruncate(length int, tail string) String {
	if length >= s.Len() {
		return s
	}
	cut := length - codec.Length(tail)
	if cut <= 0 {
		return s.derive(tail)
	}
	truncated := codec.Substr(s.text, 0, cut)
	if codec.IndexOf(s.text, " ", cut-1) != cut { // last word was cut into
		if last := codec.IndexOfLast(truncated, " ", 0); last != codec.NotFound {
			truncated = codec.Substr(truncated, 0, last)
		}
	}
	return s.derive(strings.TrimRightFunc(truncated, isSpace) + tail)
}

// Tidy replaces typographic quotes, dashes and ellipses by their plain
// ASCII counterparts.
func (s String) Tidy() String {
	return s.derive(tidyReplacer.Replace(s.text))
}

var tidyReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`,
	"‘", `'`, "’", `'`, "‚", `'`,
	"–", "-", "—", "-",
	"…", "...",
)

// ToSpaces expands each tab to tabWidth spaces; a negative tabWidth means 4.
func (s String) ToSpaces(tabWidth int) String {
	if tabWidth < 0 {
		tabWidth = 4
	}
	return s.derive(strings.ReplaceAll(s.text, "\t", strings.Repeat(" ", tabWidth)))
}

// ToTabs contracts each run of tabWidth spaces to one tab; a negative
// tabWidth means 4.
func (s String) ToTabs(tabWidth int) String {
	if tabWidth < 0 {
		tabWidth = 4
	}
	if tabWidth == 0 {
		return s
	}
	return s.derive(strings.ReplaceAll(s.text, strings.Repeat(" ", tabWidth), "\t"))
}

// HTMLEncode escapes HTML-special codepoints as named entities.
func (s String) HTMLEncode() String {
	return s.derive(html.EscapeString(s.text))
}

// HTMLDecode resolves named and numeric HTML entities to codepoints.
func (s String) HTMLDecode() String {
	return s.derive(html.UnescapeString(s.text))
}

// ToASCII transliterates the content to printable ASCII, using the
// override table for the value's language before the generic table. With
// removeUnsupported, codepoints without a mapping are stripped instead of
// passed through.
func (s String) ToASCII(removeUnsupported bool) String {
	return s.derive(translit.ToASCII(s.text, s.Language(), removeUnsupported))
}

// Slugify transliterates the content and reduces it to lowercase ASCII
// words joined by sep, suitable for URLs and identifiers.
func (s String) Slugify(sep string) String {
	t := s.ToASCII(true)
	t = t.replacePattern(`[^A-Za-z0-9]+`, literalRepl(sep), "")
	t = t.derive(strings.Trim(t.text, sep))
	return t.ToLowerCase()
}

// IsBase64 reports whether the content is a valid standard base64 encoding.
func (s String) IsBase64() bool {
	decoded, err := base64.StdEncoding.Strict().DecodeString(s.text)
	if err != nil {
		return false
	}
	return base64.StdEncoding.EncodeToString(decoded) == s.text
}

// IsJSON reports whether the non-blank content parses as JSON.
func (s String) IsJSON() bool {
	if s.IsBlank() {
		return false
	}
	return gjson.Valid(s.text)
}

// SerialProbe decides whether raw bytes are a valid legacy serialized-value
// form. The predicate is supplied by the host environment.
type SerialProbe func([]byte) bool

// IsSerialized applies a host-supplied serialization probe to the raw
// content bytes. A nil probe recognizes nothing.
func (s String) IsSerialized(probe SerialProbe) bool {
	if probe == nil {
		return false
	}
	return probe(s.Bytes())
}
