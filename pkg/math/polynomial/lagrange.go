package polynomial

import (
	"errors"

	"github.com/luxfi/vss/pkg/math/curve"
)

// Lagrange returns the Lagrange coefficients at 0 for the interpolation
// points xs, in matching order. A polynomial of degree len(xs)-1 passing
// through the points (xs[j], ys[j]) takes the value Σ ys[j]·l[j] at 0.
//
// The points must be non-zero and pairwise distinct.
func Lagrange(group curve.Curve, xs []curve.Scalar) ([]curve.Scalar, error) {
	coefficients := make([]curve.Scalar, len(xs))
	for j := range xs {
		numerator := group.NewScalar().SetUInt32(1)
		denominator := group.NewScalar().SetUInt32(1)
		for k := range xs {
			if k == j {
				continue
			}
			// l_j(0) = Π_{k≠j} x_k / (x_k - x_j)
			numerator.Mul(xs[k])
			denominator.Mul(group.NewScalar().Set(xs[k]).Sub(xs[j]))
		}
		if denominator.IsZero() {
			return nil, errors.New("polynomial: duplicate interpolation point")
		}
		coefficients[j] = numerator.Mul(denominator.Invert())
	}
	return coefficients, nil
}
