package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Encoding is a resolved text encoding tag.
//
// The zero value is not valid; obtain encodings from Resolve, UTF8 or ASCII.
// Encodings are value types and safe to copy and compare for equality by Name.
type Encoding struct {
	name  string
	codec encoding.Encoding // nil for natively UTF-8-compatible encodings
	ascii bool              // content restricted to 7-bit bytes
}

// UTF8 is the default encoding of the string core.
var UTF8 = Encoding{name: "utf-8"}

// ASCII is 7-bit US-ASCII, a strict subset of UTF-8.
var ASCII = Encoding{name: "us-ascii", ascii: true}

// Resolve looks up an encoding by its (IANA) name.
//
// Names are matched case-insensitively. UTF-8 and US-ASCII are handled
// natively; every other tag is resolved through the IANA index and decoded
// via x/text transcoders. Unknown tags return ErrUnsupportedEncoding.
func Resolve(name string) (Encoding, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "ascii", "us-ascii", "ansi_x3.4-1968":
		return ASCII, nil
	}
	c, err := ianaindex.IANA.Encoding(n)
	if err != nil || c == nil {
		tracer().Errorf("codec: no transcoder for encoding %q", name)
		return Encoding{}, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return Encoding{name: n, codec: c}, nil
}

// Default returns the environment's default text encoding.
func Default() Encoding {
	return UTF8
}

// Name returns the encoding's lowercase tag.
func (e Encoding) Name() string {
	if e.name == "" {
		return UTF8.name
	}
	return e.name
}

// UTF8Compatible reports whether raw bytes under e are already valid UTF-8.
func (e Encoding) UTF8Compatible() bool {
	return e.codec == nil
}

// Decode interprets raw bytes under e and returns the text as a Go string.
func Decode(raw []byte, e Encoding) (string, error) {
	if e.codec == nil {
		if !utf8.Valid(raw) {
			return "", ErrInvalidBytes
		}
		if e.ascii {
			for _, b := range raw {
				if b >= 0x80 {
					return "", ErrInvalidBytes
				}
			}
		}
		return string(raw), nil
	}
	s, err := e.codec.NewDecoder().Bytes(raw)
	if err != nil {
		tracer().Errorf("codec: cannot decode %s content: %v", e.Name(), err)
		return "", fmt.Errorf("%w: %v", ErrInvalidBytes, err)
	}
	return string(s), nil
}

// Encode converts text to raw bytes under e.
//
// Codepoints the target encoding cannot represent are replaced by the
// encoding's substitution byte; Encode never fails for representability.
func Encode(text string, e Encoding) ([]byte, error) {
	if e.codec == nil {
		if e.ascii {
			raw := make([]byte, 0, len(text))
			for _, r := range text {
				if r >= 0x80 {
					r = 0x1a // ASCII SUB
				}
				raw = append(raw, byte(r))
			}
			return raw, nil
		}
		return []byte(text), nil
	}
	raw, err := encoding.ReplaceUnsupported(e.codec.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBytes, err)
	}
	return raw, nil
}
