// Package sharing implements Shamir secret sharing along with the Feldman
// and Pedersen verifiable variants, over an abstract prime-order group.
package sharing

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/luxfi/vss/pkg/math/curve"
)

// Share is one party's piece of a shared secret: a non-zero one byte
// identifier together with the canonical encoding of the share value.
// Identifier zero is reserved for the secret itself and never appears in
// dealer output.
type Share struct {
	ID    byte
	Value []byte
}

// NewShare constructs a share, rejecting a zero identifier or an empty
// value.
func NewShare(id byte, value []byte) (*Share, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: identifier must not be zero", ErrInvalidShare)
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidShare)
	}
	out := &Share{ID: id, Value: make([]byte, len(value))}
	copy(out.Value, value)
	return out, nil
}

// Equal reports whether two shares are byte-wise identical.
func (s *Share) Equal(that *Share) bool {
	return s.ID == that.ID && bytes.Equal(s.Value, that.Value)
}

// MarshalBinary returns the identifier byte followed by the value.
func (s *Share) MarshalBinary() ([]byte, error) {
	out := make([]byte, 1+len(s.Value))
	out[0] = s.ID
	copy(out[1:], s.Value)
	return out, nil
}

// UnmarshalBinary decodes the fixed container produced by MarshalBinary.
func (s *Share) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("%w: share container too short", ErrInvalidEncoding)
	}
	if data[0] == 0 {
		return fmt.Errorf("%w: zero share identifier", ErrInvalidEncoding)
	}
	s.ID = data[0]
	s.Value = make([]byte, len(data)-1)
	copy(s.Value, data[1:])
	return nil
}

// MarshalText returns the lowercase hex encoding of the binary container.
func (s *Share) MarshalText() ([]byte, error) {
	data, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(out, data)
	return out, nil
}

// UnmarshalText decodes the hex form produced by MarshalText.
func (s *Share) UnmarshalText(text []byte) error {
	data := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(data, text); err != nil {
		return fmt.Errorf("%w: share is not valid hex", ErrInvalidEncoding)
	}
	return s.UnmarshalBinary(data)
}

func (s *Share) String() string {
	text, err := s.MarshalText()
	if err != nil {
		return "share(invalid)"
	}
	return string(text)
}

// scalar decodes the share value as a field element.
func (s *Share) scalar(group curve.Curve) (curve.Scalar, error) {
	value := group.NewScalar()
	if err := value.UnmarshalBinary(s.Value); err != nil {
		return nil, fmt.Errorf("%w: share %d value is not a canonical scalar", ErrInvalidShare, s.ID)
	}
	return value, nil
}

// point decodes the share value as a group element.
func (s *Share) point(group curve.Curve) (curve.Point, error) {
	value := group.NewPoint()
	if err := value.UnmarshalBinary(s.Value); err != nil {
		return nil, fmt.Errorf("%w: share %d value is not a canonical point", ErrInvalidShare, s.ID)
	}
	return value, nil
}
