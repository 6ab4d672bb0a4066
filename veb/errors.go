package veb

import "errors"

var (
	// ErrCountNotPowerOfTwo is returned by Build when the requested leaf
	// count is not a positive power of two.
	ErrCountNotPowerOfTwo = errors.New("veb: leaf count must be a positive power of two")

	// ErrStreamTooShort is returned by Build when the key source is
	// exhausted before the requested leaf count has been produced.
	ErrStreamTooShort = errors.New("veb: key stream exhausted before leaf count reached")

	// ErrStreamTooLong is returned by Build when the key source still has
	// keys left after the requested leaf count has been produced.
	ErrStreamTooLong = errors.New("veb: key stream produced more keys than leaf count")
)
