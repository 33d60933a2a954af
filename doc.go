/*
Package stringv provides an immutable, codepoint-aware string value type.

String values carry their content together with a text encoding tag and a
language tag. Every operation is a pure function: it leaves the receiver
untouched and returns a new value with the same encoding and language. All
length and index arithmetic is in codepoints, never bytes, and negative
indices count from the end.

The operation catalog covers case conversion, padding and trimming,
substring search, regex-driven splitting and delimiting (camelCase to
kebab/snake case), longest-common-affix and -substring algorithms, and
ASCII transliteration of non-ASCII text with per-language override tables.

A value created by

	stringv.String{}

is valid and behaves like the empty string under the default encoding.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package stringv

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ValueError is an error type for the stringv module
type ValueError string

func (e ValueError) Error() string {
	return string(e)
}

// ErrInvalidArgument is flagged whenever function parameters are structurally
// invalid, e.g. an unknown pad side or an un-stringifiable factory input.
const ErrInvalidArgument = ValueError("invalid argument")

// ErrIndexOutOfBounds is flagged whenever a codepoint index, positive or
// negative, lies outside the valid index range of a value.
const ErrIndexOutOfBounds = ValueError("index out of bounds")

// ErrImmutableValue is flagged on any attempt to write through the indexing
// surface. It is unconditional: writes fail for valid indices, too.
const ErrImmutableValue = ValueError("immutable value cannot be modified")

// ErrUnsupportedEncoding is flagged when an operation cannot honor the
// value's encoding, i.e. no transcoder exists for its tag.
const ErrUnsupportedEncoding = ValueError("unsupported encoding")

// NotFound is the sentinel index returned by failed substring searches.
// Search misses are not errors.
const NotFound = -1

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
