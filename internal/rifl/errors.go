package rifl

import "errors"

// Decode errors. Every structural malformation aborts the decode with one of
// these sentinels wrapped in positional context; callers match them with
// errors.Is.
var (
	// ErrTruncated reports fewer bytes than the header, a buffer body or a
	// varint terminator requires.
	ErrTruncated = errors.New("truncated input")

	// ErrBadMagic reports a header identifier that is not "RIFL".
	ErrBadMagic = errors.New("not a RIFL file")

	// ErrBadVersion reports a RIFL version other than 1.
	ErrBadVersion = errors.New("unsupported RIFL version")

	// ErrHeader reports a header field outside its valid range.
	ErrHeader = errors.New("invalid header field")

	// ErrBufferSize reports a buffer whose declared size exceeds the
	// header's maximum buffer size.
	ErrBufferSize = errors.New("buffer size exceeds maximum")

	// ErrMisaligned reports a buffer holding an odd number of values, a
	// pulse with no matching duration.
	ErrMisaligned = errors.New("misaligned pair data")

	// ErrMalformedPair reports a decoded pair violating a structural
	// invariant, such as a zero duration.
	ErrMalformedPair = errors.New("malformed pair")
)
