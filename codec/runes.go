package codec

import (
	"strings"
	"unicode/utf8"
)

// NotFound is the sentinel index returned by failed searches.
const NotFound = -1

// Length returns the number of codepoints in text.
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

// Norm normalizes a possibly negative codepoint offset against length n.
//
// A negative i maps to n+i. The second return value reports whether the
// normalized offset lies within [0,n).
func Norm(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// At returns the codepoint at offset i, negative-aware.
func At(text string, i int) (rune, bool) {
	n := Length(text)
	i, ok := Norm(i, n)
	if !ok {
		return 0, false
	}
	for _, r := range text {
		if i == 0 {
			return r, true
		}
		i--
	}
	return 0, false // unreachable, Norm guards the range
}

// Substr extracts length codepoints starting at codepoint offset start.
//
// A negative start counts from the end; start is clamped to [0,Length].
// A negative length means "to the end". The result never exceeds the text.
func Substr(text string, start, length int) string {
	n := Length(text)
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start >= n {
		return ""
	}
	end := n
	if length >= 0 && start+length < n {
		end = start + length
	}
	from := byteOffset(text, start)
	to := byteOffset(text, end)
	return text[from:to]
}

// IndexOf returns the codepoint index of the first occurrence of needle at or
// after codepoint offset from, or NotFound.
//
// An empty needle is found at the (normalized) start offset. A negative from
// counts from the end and is clamped to 0.
func IndexOf(text, needle string, from int) int {
	n := Length(text)
	if from < 0 {
		from += n
		if from < 0 {
			from = 0
		}
	}
	if from > n {
		return NotFound
	}
	off := byteOffset(text, from)
	b := strings.Index(text[off:], needle)
	if b < 0 {
		return NotFound
	}
	return from + utf8.RuneCountInString(text[off:off+b])
}

// IndexOfLast returns the codepoint index of the last occurrence of needle
// starting at or after codepoint offset from, or NotFound.
//
// from follows the same normalization as IndexOf; from = 0 searches the
// whole text.
func IndexOfLast(text, needle string, from int) int {
	n := Length(text)
	if from < 0 {
		from += n
		if from < 0 {
			from = 0
		}
	}
	if from > n {
		return NotFound
	}
	off := byteOffset(text, from)
	b := strings.LastIndex(text[off:], needle)
	if b < 0 {
		return NotFound
	}
	return from + utf8.RuneCountInString(text[off:off+b])
}

// byteOffset converts codepoint offset i to a byte offset in text.
// i must be in [0, Length(text)]; offsets beyond the end clamp to len(text).
func byteOffset(text string, i int) int {
	if i <= 0 {
		return 0
	}
	for off := range text {
		if i == 0 {
			return off
		}
		i--
	}
	return len(text)
}
