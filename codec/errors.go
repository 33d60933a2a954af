package codec

import "errors"

var (
	// ErrUnsupportedEncoding signals an encoding tag without a registered transcoder.
	ErrUnsupportedEncoding = errors.New("codec: unsupported encoding")
	// ErrInvalidBytes signals content that cannot be decoded under its encoding.
	ErrInvalidBytes = errors.New("codec: content invalid for encoding")
)
