/*
Package rex adapts regex operations to encoded text.

Every call takes the text's encoding as an explicit parameter; the package
holds no engine-global encoding state, so concurrent callers can never
corrupt one another. Non-UTF-8 content is transcoded around the regex call.
Encodings without a transcoder cannot take that path and fail with
codec.ErrUnsupportedEncoding.

Compiled patterns are cached process-wide. The cache is append-only and
idempotent: compiling the same pattern twice is harmless.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package rex

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stringv/codec"
)

// tracer writes to trace with key 'stringv'
func tracer() tracing.Trace {
	return tracing.Select("stringv")
}

// ErrPattern signals a malformed regex pattern.
var ErrPattern = errors.New("rex: cannot compile pattern")

var cache sync.Map // pattern+opts -> *regexp.Regexp

// compile returns a cached compiled pattern, honoring an option string.
//
// Recognized options: 'i' (case-insensitive), 'm' (multiline anchors),
// 's' (dot matches newline). Unknown option letters are ignored, matching
// the tolerant behavior of the classic engines this adapter fronts.
func compile(pattern, opts string) (*regexp.Regexp, error) {
	var flags string
	for _, o := range opts {
		switch o {
		case 'i', 'm', 's':
			flags += string(o)
		}
	}
	if flags != "" {
		pattern = "(?" + flags + ")" + pattern
	}
	if re, ok := cache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("rex: cannot compile pattern /%s/: %v", pattern, err)
		return nil, fmt.Errorf("%w: %v", ErrPattern, err)
	}
	cache.Store(pattern, re)
	return re, nil
}

// decode brings raw content into UTF-8 for the engine.
func decode(content []byte, enc codec.Encoding) (string, error) {
	return codec.Decode(content, enc)
}

// Match reports whether the whole pattern matches anywhere in content.
func Match(pattern string, content []byte, enc codec.Encoding) (bool, error) {
	re, err := compile(pattern, "")
	if err != nil {
		return false, err
	}
	text, err := decode(content, enc)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}

// ReplaceAll replaces every match of pattern in content by repl.
//
// repl may reference capture groups as $1, $2, …. The result is re-encoded
// under enc.
func ReplaceAll(pattern, repl, opts string, content []byte, enc codec.Encoding) ([]byte, error) {
	re, err := compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	text, err := decode(content, enc)
	if err != nil {
		return nil, err
	}
	return codec.Encode(re.ReplaceAllString(text, repl), enc)
}

// Split splits content around matches of pattern.
//
// limit follows the convention of regexp.Split: a negative limit returns all
// pieces. Pieces are returned as decoded (UTF-8) strings.
func Split(pattern string, content []byte, enc codec.Encoding, limit int) ([]string, error) {
	re, err := compile(pattern, "")
	if err != nil {
		return nil, err
	}
	text, err := decode(content, enc)
	if err != nil {
		return nil, err
	}
	return re.Split(text, limit), nil
}

// Class translates a POSIX-style class name to a Unicode-aware regex class.
//
// Plain POSIX classes are ASCII-only in this engine; predicates over
// multibyte text need the Unicode properties instead.
func Class(name string) string {
	switch name {
	case "alpha":
		return `\p{L}`
	case "alnum":
		return `[\p{L}\p{N}]`
	case "upper":
		return `\p{Lu}`
	case "lower":
		return `\p{Ll}`
	case "digit":
		return `\p{Nd}`
	case "space":
		return `[\s\p{Z}\x{85}]`
	case "xdigit":
		return `[0-9A-Fa-f]`
	}
	return ""
}
