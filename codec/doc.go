/*
Package codec provides codepoint primitives under a named text encoding.

Values of the string core keep their content as raw encoded bytes together
with an Encoding tag. This package resolves encoding tags to transcoders,
decodes/encodes content, and implements the codepoint-indexed primitives
(length, extraction, search) every higher-level operation is built on.

All indices are codepoint offsets, never byte offsets. A negative offset n
addresses position Length(text)+n; this single rule applies to every
primitive in the package.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stringv'
func tracer() tracing.Trace {
	return tracing.Select("stringv")
}
