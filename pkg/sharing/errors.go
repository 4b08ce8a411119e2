package sharing

import "errors"

var (
	// ErrInvalidParameters is returned when a scheme is constructed with a
	// threshold below 2, a limit below the threshold or above 255, or a
	// group without a usable scalar encoding.
	ErrInvalidParameters = errors.New("sharing: invalid parameters")

	// ErrInvalidShare is returned for a share with a zero identifier or a
	// value that is not a canonical element encoding.
	ErrInvalidShare = errors.New("sharing: invalid share")

	// ErrDuplicateShare is returned when two shares in a reconstruction
	// set carry the same identifier.
	ErrDuplicateShare = errors.New("sharing: duplicate share")

	// ErrMinThreshold is returned when fewer than threshold shares are
	// supplied to a combine operation.
	ErrMinThreshold = errors.New("sharing: not enough shares to combine")

	// ErrInvalidEncoding is returned when serialized bytes or hex cannot
	// be decoded: a malformed length prefix, a count that disagrees with
	// the payload, or a non-canonical element.
	ErrInvalidEncoding = errors.New("sharing: invalid encoding")

	// ErrInvalidRNG is returned when the supplied random source fails to
	// produce the seed for the dealer's internal stream.
	ErrInvalidRNG = errors.New("sharing: random source failed")
)
