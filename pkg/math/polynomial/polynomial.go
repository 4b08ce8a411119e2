// Package polynomial implements polynomials over the scalar field of a
// curve, as used for secret sharing.
package polynomial

import (
	"errors"
	"io"

	"github.com/luxfi/vss/pkg/math/curve"
	"github.com/luxfi/vss/pkg/math/sample"
)

// Polynomial represents a polynomial over the scalar field of a curve,
// with a fixed constant term and random higher coefficients.
type Polynomial struct {
	group curve.Curve
	// coefficients in ascending degree order, so coefficients[0] is the
	// constant term.
	coefficients []curve.Scalar
}

// NewPolynomial generates a polynomial of the given degree whose constant
// term is the provided value. The remaining coefficients are sampled
// uniformly from rand. If constant is nil, the constant term is sampled
// as well.
func NewPolynomial(group curve.Curve, degree int, constant curve.Scalar, rand io.Reader) (*Polynomial, error) {
	if degree < 1 {
		return nil, errors.New("polynomial: degree must be at least 1")
	}
	coefficients := make([]curve.Scalar, degree+1)
	if constant == nil {
		var err error
		constant, err = sample.Scalar(rand, group)
		if err != nil {
			return nil, err
		}
	}
	coefficients[0] = group.NewScalar().Set(constant)
	for i := 1; i <= degree; i++ {
		coefficient, err := sample.Scalar(rand, group)
		if err != nil {
			return nil, err
		}
		coefficients[i] = coefficient
	}
	return &Polynomial{group: group, coefficients: coefficients}, nil
}

// Evaluate returns the value of the polynomial at x, using Horner's method.
func (p *Polynomial) Evaluate(x curve.Scalar) curve.Scalar {
	result := p.group.NewScalar().Set(p.coefficients[len(p.coefficients)-1])
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

// Constant returns a copy of the constant term.
func (p *Polynomial) Constant() curve.Scalar {
	return p.group.NewScalar().Set(p.coefficients[0])
}

// Coefficients returns the coefficients in ascending degree order. The
// returned slice aliases the polynomial's internal state.
func (p *Polynomial) Coefficients() []curve.Scalar {
	return p.coefficients
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Wipe overwrites all coefficients with zero. The polynomial must not be
// evaluated afterwards.
func (p *Polynomial) Wipe() {
	zero := p.group.NewScalar()
	for _, c := range p.coefficients {
		c.Set(zero)
	}
}
