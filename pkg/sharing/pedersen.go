package sharing

import (
	"fmt"
	"io"

	"github.com/luxfi/vss/pkg/math/curve"
	"github.com/luxfi/vss/pkg/math/sample"
)

// Pedersen deals sharings verifiable under Pedersen's scheme: the secret
// polynomial is paired with a random blinding polynomial, and the
// published commitments g·a_i + h·b_i hide the coefficients rather than
// merely binding them. The matching Feldman commitments are produced as
// well, since downstream protocols such as Gennaro's DKG need both.
type Pedersen struct {
	Shamir
}

// NewPedersen validates the parameters and returns a Pedersen dealer.
func NewPedersen(group curve.Curve, threshold, limit int) (*Pedersen, error) {
	shamir, err := NewShamir(group, threshold, limit)
	if err != nil {
		return nil, err
	}
	return &Pedersen{Shamir: *shamir}, nil
}

// PedersenOpts carries the optional inputs to a Pedersen split. A nil
// options value, or any nil field, selects the default: a random blinding
// scalar, the canonical generator for shares, and a blinding generator
// derived as g·t for a fresh random t.
type PedersenOpts struct {
	Blinding             curve.Scalar
	ShareGenerator       curve.Point
	BlindFactorGenerator curve.Point
}

// PedersenResult bundles everything a Pedersen split produces. The
// blinding scalar is included so callers can chain protocols that need
// it; it is secret to the dealer.
type PedersenResult struct {
	Blinding     curve.Scalar
	BlindShares  []*Share
	SecretShares []*Share
	Verifier     *PedersenVerifier
}

// Split shares the secret together with a blinding value. The supplied
// RNG is consumed exactly once, for a stream seed; all coefficients and
// defaulted inputs are drawn from the resulting deterministic stream, so
// a fixed seed reproduces the full deal.
func (p *Pedersen) Split(secret curve.Scalar, opts *PedersenOpts, rand io.Reader) (*PedersenResult, error) {
	stream, err := sample.NewStream(rand)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRNG, err)
	}
	if opts == nil {
		opts = &PedersenOpts{}
	}

	g := opts.ShareGenerator
	if g == nil {
		g = p.group.NewBasePoint()
	}
	t, err := sample.Scalar(stream, p.group)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRNG, err)
	}
	h := opts.BlindFactorGenerator
	if h == nil {
		h = t.Act(g)
	}

	blinding := opts.Blinding
	if blinding == nil {
		if blinding, err = sample.Scalar(stream, p.group); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRNG, err)
		}
	}

	secretShares, secretPoly, err := p.sharesAndPolynomial(secret, stream)
	if err != nil {
		return nil, err
	}
	blindShares, blindPoly, err := p.sharesAndPolynomial(blinding, stream)
	if err != nil {
		secretPoly.Wipe()
		return nil, err
	}

	feldmanCommitments := make([]curve.Point, p.threshold)
	pedersenCommitments := make([]curve.Point, p.threshold)
	secretCoefficients := secretPoly.Coefficients()
	blindCoefficients := blindPoly.Coefficients()
	for i := 0; i < p.threshold; i++ {
		gi := secretCoefficients[i].Act(g)
		hi := blindCoefficients[i].Act(h)
		feldmanCommitments[i] = gi
		pedersenCommitments[i] = gi.Add(hi)
	}
	secretPoly.Wipe()
	blindPoly.Wipe()

	return &PedersenResult{
		Blinding:     blinding,
		BlindShares:  blindShares,
		SecretShares: secretShares,
		Verifier: &PedersenVerifier{
			group:       p.group,
			Generator:   h,
			Commitments: pedersenCommitments,
			Feldman: FeldmanVerifier{
				group:       p.group,
				Generator:   g,
				Commitments: feldmanCommitments,
			},
		},
	}, nil
}

// PedersenVerifier holds the blinding generator h, the commitments
// p_i = g·a_i + h·b_i, and the Feldman verifier over the same secret
// polynomial. All of it is public material.
type PedersenVerifier struct {
	group curve.Curve
	// Generator is the blinding generator h.
	Generator curve.Point
	// Commitments holds one blinded point per coefficient pair.
	Commitments []curve.Point
	// Feldman verifies secret shares alone, against g·a_i.
	Feldman FeldmanVerifier
}

// EmptyPedersenVerifier returns a verifier bound to a group, ready for
// unmarshalling.
func EmptyPedersenVerifier(group curve.Curve) *PedersenVerifier {
	return &PedersenVerifier{group: group, Feldman: FeldmanVerifier{group: group}}
}

// Verify reports whether a (secret share, blinding share) pair lies on
// the committed polynomial pair: g·y_s + h·y_b must equal Σ p_i·x^i.
// The two shares must carry the same identifier. Decoding failures make
// the pair invalid rather than an error.
func (v *PedersenVerifier) Verify(secretShare, blindShare *Share) bool {
	if secretShare == nil || blindShare == nil {
		return false
	}
	if secretShare.ID == 0 || secretShare.ID != blindShare.ID {
		return false
	}
	if len(v.Commitments) == 0 {
		return false
	}
	ys := v.group.NewScalar()
	if err := ys.UnmarshalBinary(secretShare.Value); err != nil {
		return false
	}
	yb := v.group.NewScalar()
	if err := yb.UnmarshalBinary(blindShare.Value); err != nil {
		return false
	}
	x := v.group.NewScalar().SetUInt32(uint32(secretShare.ID))
	power := v.group.NewScalar().SetUInt32(1)
	rhs := v.group.NewPoint().Set(v.Commitments[0])
	for _, commitment := range v.Commitments[1:] {
		power.Mul(x)
		rhs = rhs.Add(power.Act(commitment))
	}
	lhs := ys.Act(v.Feldman.Generator).Add(yb.Act(v.Generator))
	return lhs.Sub(rhs).IsIdentity()
}
