package stringv

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"strings"
	"unicode"

	"github.com/npillmayer/stringv/codec"
	"github.com/npillmayer/stringv/rex"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// Delimit inserts sep at case boundaries and lowercases the result:
// a word boundary is assumed before every uppercase codepoint that does not
// start the content. Existing runs of hyphens, underscores and whitespace
// collapse into a single sep.
//
//	Delimit("HelloWorld", "-") == "hello-world"
func (s String) Delimit(sep string) String {
	t := s.Trim()
	// The boundary scan is rune-wise rather than a regex: the engine's \B
	// counts only ASCII word characters, missing boundaries next to
	// multibyte letters.
	var b strings.Builder
	b.Grow(len(t.text) + 8)
	for i, r := range t.text {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	t = t.derive(b.String()).ToLowerCase()
	return t.replacePattern(`[-_\s\p{Z}]+`, literalRepl(sep), "")
}

// Dasherize converts camelCase content to kebab-case.
func (s String) Dasherize() String {
	return s.Delimit("-")
}

// Underscored converts camelCase content to snake_case.
func (s String) Underscored() String {
	return s.Delimit("_")
}

// CollapseWhitespace trims the content and collapses every whitespace run
// into a single space. The operation is idempotent and uses the same
// whitespace class as the IsBlank predicate.
func (s String) CollapseWhitespace() String {
	return s.Trim().replacePattern(rex.Class("space")+"+", " ", "")
}

// ReplacePattern replaces every match of a regex pattern by repl, honoring
// the value's encoding. repl may reference capture groups as $1, $2, ….
// Recognized options: i, m, s.
func (s String) ReplacePattern(pattern, repl, opts string) (String, error) {
	raw, err := rex.ReplaceAll(pattern, repl, opts, s.rawBytes(), s.enc)
	if err != nil {
		return String{}, err
	}
	text, err := codec.Decode(raw, s.enc)
	if err != nil {
		return String{}, err
	}
	return s.derive(text), nil
}

// replacePattern is ReplacePattern for compiled-in patterns, which cannot
// fail on well-formed values.
func (s String) replacePattern(pattern, repl, opts string) String {
	t, err := s.ReplacePattern(pattern, repl, opts)
	assert(err == nil, "regex replace: built-in pattern must compile")
	return t
}

// SplitPattern splits the content around every match of a regex pattern.
// limit follows regexp.Split: a negative limit returns all pieces.
func (s String) SplitPattern(pattern string, limit int) ([]String, error) {
	parts, err := rex.Split(pattern, s.rawBytes(), s.enc, limit)
	if err != nil {
		return nil, err
	}
	out := make([]String, len(parts))
	for i, p := range parts {
		out[i] = s.derive(p)
	}
	return out, nil
}

// Words returns the words of the content as values, recognized by UAX#29
// word segmentation. Separator segments are dropped.
func (s String) Words() []String {
	var words []String
	eachSegment(s.text, func(frag string, word bool) {
		if word {
			words = append(words, s.derive(frag))
		}
	})
	return words
}

// CountWords returns the number of UAX#29 words in the content.
func (s String) CountWords() int {
	n := 0
	eachSegment(s.text, func(_ string, word bool) {
		if word {
			n++
		}
	})
	return n
}

// Titleize trims the content and capitalizes every word: first codepoint
// uppercase, rest lowercase. Separators between words are preserved.
func (s String) Titleize() String {
	t := s.Trim()
	var b strings.Builder
	b.Grow(len(t.text))
	eachSegment(t.text, func(frag string, word bool) {
		if word {
			for i, r := range frag {
				if i == 0 {
					b.WriteRune(unicode.ToUpper(r))
				} else {
					b.WriteRune(unicode.ToLower(r))
				}
			}
		} else {
			b.WriteString(frag)
		}
	})
	return t.derive(b.String())
}

// eachSegment feeds every UAX#29 segment of text to f, flagging segments
// that contain a letter or digit as words.
func eachSegment(text string, f func(frag string, word bool)) {
	if text == "" {
		return
	}
	segmenter := segment.NewSegmenter(uax29.NewWordBreaker(1))
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		f(frag, strings.ContainsFunc(frag, isWordRune))
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isSpace is the whitespace class shared by trimming, collapsing and the
// IsBlank predicate.
func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// literalRepl escapes sep for use as a literal regex replacement string.
func literalRepl(sep string) string {
	return strings.ReplaceAll(sep, "$", "$$")
}
