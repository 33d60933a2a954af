package stringv

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"
	"unicode"

	"github.com/npillmayer/stringv/rex"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLowerCase lowercases every codepoint.
func (s String) ToLowerCase() String {
	return s.derive(strings.ToLower(s.text))
}

// ToUpperCase uppercases every codepoint.
func (s String) ToUpperCase() String {
	return s.derive(strings.ToUpper(s.text))
}

// ToTitleCase title-cases the content word-wise, honoring the value's
// language tag (Unicode special casing, e.g. Turkish dotless i).
func (s String) ToTitleCase() String {
	tag, err := language.Parse(s.Language())
	if err != nil {
		tag = language.Und
	}
	return s.derive(cases.Title(tag).String(s.text))
}

// LowerCaseFirst lowercases the first codepoint.
func (s String) LowerCaseFirst() String {
	for _, r := range s.text {
		return s.derive(string(unicode.ToLower(r)) + s.text[len(string(r)):])
	}
	return s
}

// UpperCaseFirst uppercases the first codepoint.
func (s String) UpperCaseFirst() String {
	for _, r := range s.text {
		return s.derive(string(unicode.ToUpper(r)) + s.text[len(string(r)):])
	}
	return s
}

// SwapCase flips the case of each cased codepoint individually; whitespace
// and caseless codepoints pass through.
func (s String) SwapCase() String {
	var b strings.Builder
	b.Grow(len(s.text))
	for _, r := range s.text {
		switch {
		case unicode.IsUpper(r) || unicode.Is(unicode.Lt, r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLower(r):
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
	}
	return s.derive(b.String())
}

// Humanize turns a machine-readable identifier into display text: a
// trailing "_id" is dropped, underscores become spaces, whitespace is
// collapsed and the first codepoint is capitalized.
func (s String) Humanize() String {
	h := s.RemoveRight("_id")
	h = h.derive(strings.ReplaceAll(h.text, "_", " "))
	return h.CollapseWhitespace().UpperCaseFirst()
}

// --- Class predicates ------------------------------------------------------

// The predicates are whole-string regex-class matches through the rex
// adapter, under the value's encoding. The classes are Unicode-aware
// translations of the POSIX names (see rex.Class).

// HasLowerCase reports whether any codepoint is lowercase.
func (s String) HasLowerCase() bool {
	return s.matches(rex.Class("lower"))
}

// HasUpperCase reports whether any codepoint is uppercase.
func (s String) HasUpperCase() bool {
	return s.matches(rex.Class("upper"))
}

// IsAlpha reports whether the content consists of letters only.
// The empty value is alphabetic.
func (s String) IsAlpha() bool {
	return s.matches("^" + rex.Class("alpha") + "*$")
}

// IsAlphanumeric reports whether the content consists of letters and digits
// only. The empty value is alphanumeric.
func (s String) IsAlphanumeric() bool {
	return s.matches("^" + rex.Class("alnum") + "*$")
}

// IsBlank reports whether the content is whitespace only (or empty).
func (s String) IsBlank() bool {
	return s.matches("^" + rex.Class("space") + "*$")
}

// IsHexadecimal reports whether the content consists of hex digits only.
func (s String) IsHexadecimal() bool {
	return s.matches("^" + rex.Class("xdigit") + "*$")
}

// IsLowerCase reports whether the content consists of lowercase letters
// only.
func (s String) IsLowerCase() bool {
	return s.matches("^" + rex.Class("lower") + "*$")
}

// IsUpperCase reports whether the content consists of uppercase letters
// only.
func (s String) IsUpperCase() bool {
	return s.matches("^" + rex.Class("upper") + "*$")
}

func (s String) matches(pattern string) bool {
	ok, err := rex.Match(pattern, s.rawBytes(), s.enc)
	assert(err == nil, "class predicate: content must be decodable under its encoding")
	return ok
}

// rawBytes returns the encoded content without copying.
func (s String) rawBytes() []byte {
	if s.raw != nil {
		return s.raw
	}
	return []byte(s.text)
}
