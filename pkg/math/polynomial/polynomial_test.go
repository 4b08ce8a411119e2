package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/vss/internal/test"
	"github.com/luxfi/vss/pkg/math/curve"
	"github.com/luxfi/vss/pkg/math/polynomial"
)

func TestNewPolynomial(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(42)

	poly, err := polynomial.NewPolynomial(group, 3, secret, test.Rand(1))
	require.NoError(t, err)
	assert.Equal(t, 3, poly.Degree())
	assert.True(t, poly.Constant().Equal(secret))

	// Evaluation at zero recovers the constant term.
	atZero := poly.Evaluate(group.NewScalar())
	assert.True(t, atZero.Equal(secret))
}

func TestNewPolynomialDegree(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(1)

	_, err := polynomial.NewPolynomial(group, 0, secret, test.Rand(1))
	assert.Error(t, err)
	_, err = polynomial.NewPolynomial(group, -1, secret, test.Rand(1))
	assert.Error(t, err)
}

func TestNewPolynomialNilConstant(t *testing.T) {
	group := curve.Secp256k1{}

	poly, err := polynomial.NewPolynomial(group, 2, nil, test.Rand(2))
	require.NoError(t, err)
	assert.Equal(t, 2, poly.Degree())
}

func TestEvaluateMatchesDirectSum(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(9)

	poly, err := polynomial.NewPolynomial(group, 4, secret, test.Rand(3))
	require.NoError(t, err)

	x := group.NewScalar().SetUInt32(7)
	expected := group.NewScalar()
	power := group.NewScalar().SetUInt32(1)
	for _, coefficient := range poly.Coefficients() {
		term := group.NewScalar().Set(power).Mul(coefficient)
		expected.Add(term)
		power.Mul(x)
	}
	assert.True(t, poly.Evaluate(x).Equal(expected))
}

func TestWipe(t *testing.T) {
	group := curve.Secp256k1{}
	secret := group.NewScalar().SetUInt32(5)

	poly, err := polynomial.NewPolynomial(group, 2, secret, test.Rand(4))
	require.NoError(t, err)
	poly.Wipe()
	for _, coefficient := range poly.Coefficients() {
		assert.True(t, coefficient.IsZero())
	}
}
