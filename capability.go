package stringv

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/stringv/codec"
)

// Sized is the capability of counting codepoints.
type Sized interface {
	Len() int
	IsVoid() bool
}

// Indexable is the capability of bounds-checked, read-only element access.
//
// Indexing is negative-aware: index -1 denotes the last codepoint. Writing
// through Set fails unconditionally with ErrImmutableValue.
type Indexable interface {
	At(i int) (String, error)
	Set(i int, v String) error
}

// Iterable is the capability of producing a finite, restartable sequence of
// single-codepoint values in index order.
type Iterable interface {
	Runes() iter.Seq[String]
}

var (
	_ Sized     = String{}
	_ Indexable = String{}
	_ Iterable  = String{}
)

// At returns the codepoint at index i as a single-codepoint value.
//
// A negative i counts from the end. Indices outside [-Len(), Len()) fail
// with ErrIndexOutOfBounds.
func (s String) At(i int) (String, error) {
	r, ok := codec.At(s.text, i)
	if !ok {
		return String{}, ErrIndexOutOfBounds
	}
	return s.derive(string(r)), nil
}

// Set completes the indexing surface and always fails: string values are
// immutable. The failure is unconditional and precedes any bounds check, so
// writes to valid indices fail identically to writes out of range.
func (s String) Set(int, String) error {
	return ErrImmutableValue
}

// Runes returns an iterator over the codepoints of the value, each as a
// single-codepoint value with the receiver's encoding and language. The
// sequence is finite and restartable.
func (s String) Runes() iter.Seq[String] {
	return func(yield func(String) bool) {
		for _, r := range s.text {
			if !yield(s.derive(string(r))) {
				return
			}
		}
	}
}
