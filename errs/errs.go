// Package errs collects the sentinel errors shared by the concise and
// rleplus codecs.
package errs

import "errors"

var (
	// ErrNegativePosition is returned by concise.Builder.Append when the
	// position is negative.
	ErrNegativePosition = errors.New("bitsets: append position must be non-negative")

	// ErrNonMonotonicAppend is returned by concise.Builder.Append when the
	// position is not strictly greater than the last appended position.
	ErrNonMonotonicAppend = errors.New("bitsets: append position must be greater than the last appended position")

	// ErrMalformedStream is returned by rleplus.Decode when the stream ends
	// mid-run or carries a truncated varint.
	ErrMalformedStream = errors.New("bitsets: malformed rle+ stream")
)
