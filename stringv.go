package stringv

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/stringv/codec"
)

// String is an immutable string value: content plus a text encoding tag and
// a language tag.
//
// A value created by
//
//	String{}
//
// is valid and behaves like the empty string under the default encoding.
//
// Methods that take or return positions use codepoint offsets. A negative
// offset n addresses position Len()+n.
//
// The encoding is fixed at construction and propagates unchanged to every
// derived value. The language tag is consulted only by transliteration.
type String struct {
	text string // decoded content
	raw  []byte // encoded bytes; nil when the encoding is UTF-8-compatible
	enc  codec.Encoding
	lang string
}

type options struct {
	enc  codec.Encoding
	lang string
}

// Option configures the value factory.
type Option func(*options) error

// WithEncoding selects the text encoding by its (IANA) name.
// Unknown tags fail construction with ErrUnsupportedEncoding.
func WithEncoding(name string) Option {
	return func(o *options) error {
		enc, err := codec.Resolve(name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedEncoding, err)
		}
		o.enc = enc
		return nil
	}
}

// WithLanguage selects the language tag used by transliteration.
func WithLanguage(tag string) Option {
	return func(o *options) error {
		o.lang = tag
		return nil
	}
}

// New creates a string value from content.
//
// nil normalizes to the empty string. Accepted content types are string,
// []byte (raw bytes under the value's encoding), rune, bool, the integer
// and float primitives, and fmt.Stringer. Anything else fails with
// ErrInvalidArgument.
func New(content any, opts ...Option) (String, error) {
	o := options{enc: codec.Default(), lang: "en"}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return String{}, err
		}
	}
	s := String{enc: o.enc, lang: o.lang}
	switch c := content.(type) {
	case nil:
		return s, nil
	case String:
		return c, nil
	case string:
		return makeFromText(c, o)
	case []byte:
		text, err := codec.Decode(c, o.enc)
		if err != nil {
			return String{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		s.text = text
		if !o.enc.UTF8Compatible() {
			s.raw = bytes.Clone(c)
		}
		return s, nil
	case rune:
		return makeFromText(string(c), o)
	case bool:
		return makeFromText(strconv.FormatBool(c), o)
	case int, int8, int16, int64: // int32 is rune, handled above
		return makeFromText(fmt.Sprintf("%d", c), o)
	case uint, uint8, uint16, uint32, uint64:
		return makeFromText(fmt.Sprintf("%d", c), o)
	case float32:
		return makeFromText(strconv.FormatFloat(float64(c), 'g', -1, 32), o)
	case float64:
		return makeFromText(strconv.FormatFloat(c, 'g', -1, 64), o)
	case fmt.Stringer:
		return makeFromText(c.String(), o)
	}
	T().Errorf("stringv: cannot stringify factory input of type %T", content)
	return String{}, fmt.Errorf("%w: content of type %T", ErrInvalidArgument, content)
}

// MustNew is New, panicking on error.
func MustNew(content any, opts ...Option) String {
	s, err := New(content, opts...)
	assert(err == nil, "MustNew requires stringifiable content and a known encoding")
	return s
}

// FromString creates a string value from a Go string under the default
// (UTF-8) encoding.
func FromString(text string) String {
	return String{text: text, enc: codec.Default(), lang: "en"}
}

func makeFromText(text string, o options) (String, error) {
	s := String{text: text, enc: o.enc, lang: o.lang}
	if !o.enc.UTF8Compatible() {
		raw, err := codec.Encode(text, o.enc)
		if err != nil {
			return String{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		s.raw = raw
	}
	return s, nil
}

// derive creates a value with new content and the receiver's encoding and
// language. Internal invariant: content produced by the operation catalog is
// always encodable, unmappable codepoints fall back to the encoding's
// substitution byte.
func (s String) derive(text string) String {
	d := String{text: text, enc: s.enc, lang: s.lang}
	if !s.enc.UTF8Compatible() {
		raw, err := codec.Encode(text, s.enc)
		assert(err == nil, "derive: cannot re-encode derived content")
		d.raw = raw
	}
	return d
}

// String returns the decoded content as a Go (UTF-8) string.
func (s String) String() string {
	return s.text
}

// Bytes returns a copy of the raw content bytes under the value's encoding.
func (s String) Bytes() []byte {
	if s.raw != nil {
		return bytes.Clone(s.raw)
	}
	return []byte(s.text)
}

// Encoding returns the value's encoding tag.
func (s String) Encoding() string {
	return s.enc.Name()
}

// Language returns the value's language tag.
func (s String) Language() string {
	if s.lang == "" {
		return "en"
	}
	return s.lang
}

// WithLanguage returns a value with the same content and encoding but
// another language tag.
func (s String) WithLanguage(tag string) String {
	s.lang = tag
	return s
}

// Len returns the content length in codepoints.
func (s String) Len() int {
	return codec.Length(s.text)
}

// IsVoid reports whether the value has no content.
func (s String) IsVoid() bool {
	return s.text == ""
}

// Equal reports whether s and other agree on raw content and encoding tag.
// Two values with equal content under different encodings are not equal.
// The language tag does not participate.
func (s String) Equal(other String) bool {
	if s.enc.Name() != other.enc.Name() {
		return false
	}
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// Compare orders two values lexicographically by codepoint, with the
// encoding tag as tiebreak.
func (s String) Compare(other String) int {
	if c := strings.Compare(s.text, other.text); c != 0 {
		return c
	}
	return strings.Compare(s.enc.Name(), other.enc.Name())
}

// Reader returns a reader for the decoded text of the value.
func (s String) Reader() io.Reader {
	return strings.NewReader(s.text)
}
