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

// Argument strings (needles, prefixes, separators, pad units) are Go
// strings, i.e. UTF-8 text; they are matched against the decoded content of
// the value, so they apply uniformly under every encoding.

// Append concatenates tail onto s.
func (s String) Append(tail string) String {
	return s.derive(s.text + tail)
}

// Prepend concatenates head before s.
func (s String) Prepend(head string) String {
	return s.derive(head + s.text)
}

// Insert inserts sub at codepoint index i.
// i may be negative; an index outside [0,Len()] after normalization returns
// an out-of-bounds error.
func (s String) Insert(sub string, i int) (String, error) {
	n := s.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i > n {
		return String{}, ErrIndexOutOfBounds
	}
	head := codec.Substr(s.text, 0, i)
	tail := codec.Substr(s.text, i, -1)
	return s.derive(head + sub + tail), nil
}

// Substr extracts length codepoints starting at codepoint offset start.
// A negative start counts from the end; a negative length means "to the
// end". Offsets are clamped, Substr never fails.
func (s String) Substr(start, length int) String {
	return s.derive(codec.Substr(s.text, start, length))
}

// Slice extracts codepoints [start,end). Both offsets may be negative;
// they are clamped to the valid range, and an empty result is returned when
// end does not lie behind start.
func (s String) Slice(start, end int) String {
	n := s.Len()
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= n || end <= start {
		return s.derive("")
	}
	return s.derive(codec.Substr(s.text, start, end-start))
}

// First returns the first n codepoints; n <= 0 yields the empty value.
func (s String) First(n int) String {
	if n <= 0 {
		return s.derive("")
	}
	return s.derive(codec.Substr(s.text, 0, n))
}

// Last returns the last n codepoints; n <= 0 yields the empty value.
func (s String) Last(n int) String {
	if n <= 0 {
		return s.derive("")
	}
	return s.derive(codec.Substr(s.text, -n, -1))
}

// IndexOf returns the codepoint index of the first occurrence of needle at
// or after offset from, or NotFound. Search misses are not errors.
func (s String) IndexOf(needle string, from int) int {
	return codec.IndexOf(s.text, needle, from)
}

// IndexOfLast returns the codepoint index of the last occurrence of needle
// at or after offset from, or NotFound.
func (s String) IndexOfLast(needle string, from int) int {
	return codec.IndexOfLast(s.text, needle, from)
}

// Contains reports whether needle occurs in s.
func (s String) Contains(needle string) bool {
	return strings.Contains(s.text, needle)
}

// ContainsAny reports whether at least one needle occurs in s.
func (s String) ContainsAny(needles ...string) bool {
	for _, needle := range needles {
		if s.Contains(needle) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every needle occurs in s.
func (s String) ContainsAll(needles ...string) bool {
	for _, needle := range needles {
		if !s.Contains(needle) {
			return false
		}
	}
	return true
}

// StartsWith reports whether s begins with prefix.
func (s String) StartsWith(prefix string) bool {
	return strings.HasPrefix(s.text, prefix)
}

// StartsWithAny reports whether s begins with one of the prefixes.
func (s String) StartsWithAny(prefixes ...string) bool {
	for _, p := range prefixes {
		if s.StartsWith(p) {
			return true
		}
	}
	return false
}

// EndsWith reports whether s ends with suffix.
func (s String) EndsWith(suffix string) bool {
	return strings.HasSuffix(s.text, suffix)
}

// EndsWithAny reports whether s ends with one of the suffixes.
func (s String) EndsWithAny(suffixes ...string) bool {
	for _, p := range suffixes {
		if s.EndsWith(p) {
			return true
		}
	}
	return false
}

// EnsureLeft prepends prefix unless s already starts with it.
func (s String) EnsureLeft(prefix string) String {
	if s.StartsWith(prefix) {
		return s
	}
	return s.Prepend(prefix)
}

// EnsureRight appends suffix unless s already ends with it.
func (s String) EnsureRight(suffix string) String {
	if s.EndsWith(suffix) {
		return s
	}
	return s.Append(suffix)
}

// RemoveLeft removes prefix once if s starts with it.
func (s String) RemoveLeft(prefix string) String {
	if prefix != "" && s.StartsWith(prefix) {
		return s.derive(strings.TrimPrefix(s.text, prefix))
	}
	return s
}

// RemoveRight removes suffix once if s ends with it.
func (s String) RemoveRight(suffix string) String {
	if suffix != "" && s.EndsWith(suffix) {
		return s.derive(strings.TrimSuffix(s.text, suffix))
	}
	return s
}

// Between returns the content between the first occurrence of start at or
// after codepoint offset from and the next occurrence of end. A missing
// delimiter yields the empty value.
func (s String) Between(start, end string, from int) String {
	i := s.IndexOf(start, from)
	if i == NotFound {
		return s.derive("")
	}
	i += codec.Length(start)
	j := s.IndexOf(end, i)
	if j == NotFound {
		return s.derive("")
	}
	return s.derive(codec.Substr(s.text, i, j-i))
}

// Split splits s around every occurrence of sep. An empty sep splits into
// single codepoints. Splitting the empty value yields no pieces.
func (s String) Split(sep string) []String {
	if s.IsVoid() {
		return nil
	}
	parts := strings.Split(s.text, sep)
	out := make([]String, len(parts))
	for i, p := range parts {
		out[i] = s.derive(p)
	}
	return out
}

// Lines splits s at line feeds, with carriage returns trimmed.
func (s String) Lines() []String {
	if s.IsVoid() {
		return nil
	}
	parts := strings.Split(s.text, "\n")
	out := make([]String, len(parts))
	for i, p := range parts {
		out[i] = s.derive(strings.TrimSuffix(p, "\r"))
	}
	return out
}

// Trim removes leading and trailing whitespace, or, when cutset characters
// are given, any leading and trailing codepoints from the cutsets.
func (s String) Trim(cutset ...string) String {
	if len(cutset) == 0 {
		return s.derive(strings.TrimSpace(s.text))
	}
	return s.derive(strings.Trim(s.text, strings.Join(cutset, "")))
}

// TrimLeft is Trim for the leading side only.
func (s String) TrimLeft(cutset ...string) String {
	if len(cutset) == 0 {
		return s.derive(strings.TrimLeftFunc(s.text, isSpace))
	}
	return s.derive(strings.TrimLeft(s.text, strings.Join(cutset, "")))
}

// TrimRight is Trim for the trailing side only.
func (s String) TrimRight(cutset ...string) String {
	if len(cutset) == 0 {
		return s.derive(strings.TrimRightFunc(s.text, isSpace))
	}
	return s.derive(strings.TrimRight(s.text, strings.Join(cutset, "")))
}
