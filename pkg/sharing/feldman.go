package sharing

import (
	"io"

	"github.com/luxfi/vss/pkg/math/curve"
)

// Feldman deals sharings whose shares can be verified against a public
// commitment vector, following Feldman's scheme.
type Feldman struct {
	Shamir
}

// NewFeldman validates the parameters and returns a Feldman dealer.
func NewFeldman(group curve.Curve, threshold, limit int) (*Feldman, error) {
	shamir, err := NewShamir(group, threshold, limit)
	if err != nil {
		return nil, err
	}
	return &Feldman{Shamir: *shamir}, nil
}

// Split shares the secret and commits to every polynomial coefficient,
// so each holder can check its share without contacting the dealer.
func (f *Feldman) Split(secret curve.Scalar, rand io.Reader) ([]*Share, *FeldmanVerifier, error) {
	shares, poly, err := f.sharesAndPolynomial(secret, rand)
	if err != nil {
		return nil, nil, err
	}
	commitments := make([]curve.Point, f.threshold)
	for i, coefficient := range poly.Coefficients() {
		commitments[i] = coefficient.ActOnBase()
	}
	poly.Wipe()
	verifier := &FeldmanVerifier{
		group:       f.group,
		Generator:   f.group.NewBasePoint(),
		Commitments: commitments,
	}
	return shares, verifier, nil
}

// FeldmanVerifier holds the generator and the threshold coefficient
// commitments c_i = a_i·g of a dealt polynomial. It is public material.
type FeldmanVerifier struct {
	group curve.Curve
	// Generator is the base the coefficients were committed under.
	Generator curve.Point
	// Commitments holds one point per polynomial coefficient, constant
	// term first.
	Commitments []curve.Point
}

// EmptyFeldmanVerifier returns a verifier bound to a group, ready for
// unmarshalling.
func EmptyFeldmanVerifier(group curve.Curve) *FeldmanVerifier {
	return &FeldmanVerifier{group: group}
}

// Verify reports whether the share lies on the committed polynomial, by
// checking (−g)·y + Σ c_i·x^i against the group identity. Any decoding
// failure makes the share invalid rather than an error.
func (v *FeldmanVerifier) Verify(share *Share) bool {
	if share == nil || share.ID == 0 || len(v.Commitments) == 0 {
		return false
	}
	y := v.group.NewScalar()
	if err := y.UnmarshalBinary(share.Value); err != nil {
		return false
	}
	x := v.group.NewScalar().SetUInt32(uint32(share.ID))
	rhs := v.commitmentAt(x)
	lhs := y.Act(v.Generator.Negate())
	return lhs.Add(rhs).IsIdentity()
}

// commitmentAt evaluates the commitment polynomial Σ c_i·x^i, keeping a
// running power of x.
func (v *FeldmanVerifier) commitmentAt(x curve.Scalar) curve.Point {
	power := v.group.NewScalar().SetUInt32(1)
	result := v.group.NewPoint().Set(v.Commitments[0])
	for _, commitment := range v.Commitments[1:] {
		power.Mul(x)
		result = result.Add(power.Act(commitment))
	}
	return result
}
