package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/vss/pkg/math/curve"
	"github.com/luxfi/vss/pkg/math/polynomial"
)

func TestLagrange(t *testing.T) {
	group := curve.Secp256k1{}

	N := 10
	allXs := make([]curve.Scalar, N)
	for i := range allXs {
		allXs[i] = group.NewScalar().SetUInt32(uint32(i + 1))
	}
	coefsEven, err := polynomial.Lagrange(group, allXs)
	require.NoError(t, err)
	coefsOdd, err := polynomial.Lagrange(group, allXs[:N-1])
	require.NoError(t, err)

	// Interpolating the constant 1 polynomial, so the coefficients sum
	// to one for either point set.
	sumEven := group.NewScalar()
	sumOdd := group.NewScalar()
	one := group.NewScalar().SetUInt32(1)
	for _, c := range coefsEven {
		sumEven.Add(c)
	}
	for _, c := range coefsOdd {
		sumOdd.Add(c)
	}
	assert.True(t, sumEven.Equal(one))
	assert.True(t, sumOdd.Equal(one))
}

func TestLagrangeDuplicatePoint(t *testing.T) {
	group := curve.Secp256k1{}

	xs := []curve.Scalar{
		group.NewScalar().SetUInt32(1),
		group.NewScalar().SetUInt32(2),
		group.NewScalar().SetUInt32(1),
	}
	_, err := polynomial.Lagrange(group, xs)
	assert.Error(t, err)
}

func TestLagrangeInterpolation(t *testing.T) {
	group := curve.Secp256k1{}

	// p(x) = 7 + 3x + 2x², sampled at x = 2, 5, 9.
	eval := func(x uint32) curve.Scalar {
		xs := group.NewScalar().SetUInt32(x)
		out := group.NewScalar().SetUInt32(2)
		out.Mul(xs).Add(group.NewScalar().SetUInt32(3))
		out.Mul(xs).Add(group.NewScalar().SetUInt32(7))
		return out
	}
	points := []uint32{2, 5, 9}
	xs := make([]curve.Scalar, len(points))
	ys := make([]curve.Scalar, len(points))
	for i, p := range points {
		xs[i] = group.NewScalar().SetUInt32(p)
		ys[i] = eval(p)
	}
	coefs, err := polynomial.Lagrange(group, xs)
	require.NoError(t, err)
	sum := group.NewScalar()
	for i := range coefs {
		sum.Add(coefs[i].Mul(ys[i]))
	}
	assert.True(t, sum.Equal(group.NewScalar().SetUInt32(7)))
}
