// Package sample implements sampling of random values for the sharing
// schemes.
package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"

	"github.com/luxfi/vss/pkg/math/curve"
)

// Scalar returns a scalar sampled uniformly from the scalar field of the
// group, using rand as the entropy source.
func Scalar(rand io.Reader, group curve.Curve) (curve.Scalar, error) {
	buf := make([]byte, group.SafeScalarBytes())
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, fmt.Errorf("sample: reading %d random bytes: %w", len(buf), err)
	}
	nat := new(saferith.Nat).SetBytes(buf)
	return group.NewScalar().SetNat(nat), nil
}
