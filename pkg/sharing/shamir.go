package sharing

import (
	"fmt"
	"io"

	"github.com/luxfi/vss/pkg/math/curve"
	"github.com/luxfi/vss/pkg/math/polynomial"
)

// MaxLimit is the largest supported number of shares, bounded by the one
// byte identifier space.
const MaxLimit = 255

// Shamir deals and reconstructs (threshold, limit) sharings of a secret
// scalar.
type Shamir struct {
	group     curve.Curve
	threshold int
	limit     int
}

// NewShamir validates the parameters and returns a dealer for
// threshold-of-limit sharings over the group.
func NewShamir(group curve.Curve, threshold, limit int) (*Shamir, error) {
	if err := checkParams(group, threshold, limit); err != nil {
		return nil, err
	}
	return &Shamir{group: group, threshold: threshold, limit: limit}, nil
}

// Threshold returns the number of shares required to reconstruct.
func (s *Shamir) Threshold() int { return s.threshold }

// Limit returns the total number of shares produced by a split.
func (s *Shamir) Limit() int { return s.limit }

// Group returns the group the shares live in.
func (s *Shamir) Group() curve.Curve { return s.group }

func checkParams(group curve.Curve, threshold, limit int) error {
	if threshold < 2 {
		return fmt.Errorf("%w: threshold %d is below 2", ErrInvalidParameters, threshold)
	}
	if limit < threshold {
		return fmt.Errorf("%w: limit %d is below threshold %d", ErrInvalidParameters, limit, threshold)
	}
	if limit > MaxLimit {
		return fmt.Errorf("%w: limit %d exceeds %d", ErrInvalidParameters, limit, MaxLimit)
	}
	if group == nil || group.ScalarByteSize() == 0 {
		return fmt.Errorf("%w: group has no scalar encoding", ErrInvalidParameters)
	}
	return nil
}

// Split shares the secret into limit shares, any threshold of which
// reconstruct it. Randomness for the polynomial is drawn from rand.
func (s *Shamir) Split(secret curve.Scalar, rand io.Reader) ([]*Share, error) {
	shares, poly, err := s.sharesAndPolynomial(secret, rand)
	if err != nil {
		return nil, err
	}
	poly.Wipe()
	return shares, nil
}

// sharesAndPolynomial evaluates a fresh degree threshold-1 polynomial with
// constant term secret at x = 1..limit. The caller owns the polynomial and
// must wipe it once the coefficients are no longer needed.
func (s *Shamir) sharesAndPolynomial(secret curve.Scalar, rand io.Reader) ([]*Share, *polynomial.Polynomial, error) {
	poly, err := polynomial.NewPolynomial(s.group, s.threshold-1, secret, rand)
	if err != nil {
		return nil, nil, fmt.Errorf("sharing: building polynomial: %w", err)
	}
	shares := make([]*Share, s.limit)
	x := s.group.NewScalar()
	for i := 1; i <= s.limit; i++ {
		x.SetUInt32(uint32(i))
		value, err := poly.Evaluate(x).MarshalBinary()
		if err != nil {
			return nil, nil, fmt.Errorf("sharing: encoding share %d: %w", i, err)
		}
		shares[i-1] = &Share{ID: byte(i), Value: value}
	}
	return shares, poly, nil
}

// Combine reconstructs the secret from at least threshold shares. When
// more are supplied, the first threshold shares are used, but the whole
// set is validated first.
func (s *Shamir) Combine(shares ...*Share) (curve.Scalar, error) {
	if err := s.validateShares(shares); err != nil {
		return nil, err
	}
	// Decode the full input set before any arithmetic so that a bad
	// encoding is rejected no matter which subset would be interpolated.
	all := make([]curve.Scalar, len(shares))
	for j, share := range shares {
		var err error
		if all[j], err = share.scalar(s.group); err != nil {
			return nil, err
		}
	}
	used := shares[:s.threshold]
	ys := all[:s.threshold]
	xs := make([]curve.Scalar, len(used))
	for j, share := range used {
		xs[j] = s.group.NewScalar().SetUInt32(uint32(share.ID))
	}
	coefficients, err := polynomial.Lagrange(s.group, xs)
	if err != nil {
		return nil, fmt.Errorf("sharing: %w", err)
	}
	secret := s.group.NewScalar()
	for j := range used {
		secret.Add(coefficients[j].Mul(ys[j]))
	}
	return secret, nil
}

// CombinePoints reconstructs a group element from shares whose values are
// points rather than scalars, as produced by threshold signing style
// protocols where each party publishes its share acting on a message
// point. The interpolation is the same, with scalar multiplication in
// place of field multiplication.
func (s *Shamir) CombinePoints(shares ...*Share) (curve.Point, error) {
	if err := s.validateShares(shares); err != nil {
		return nil, err
	}
	all := make([]curve.Point, len(shares))
	for j, share := range shares {
		var err error
		if all[j], err = share.point(s.group); err != nil {
			return nil, err
		}
	}
	used := shares[:s.threshold]
	ys := all[:s.threshold]
	xs := make([]curve.Scalar, len(used))
	for j, share := range used {
		xs[j] = s.group.NewScalar().SetUInt32(uint32(share.ID))
	}
	coefficients, err := polynomial.Lagrange(s.group, xs)
	if err != nil {
		return nil, fmt.Errorf("sharing: %w", err)
	}
	sum := s.group.NewPoint()
	for j := range used {
		sum = sum.Add(coefficients[j].Act(ys[j]))
	}
	return sum, nil
}

// validateShares checks the whole input set for size, zero identifiers and
// duplicates.
func (s *Shamir) validateShares(shares []*Share) error {
	if len(shares) < s.threshold {
		return fmt.Errorf("%w: have %d, need %d", ErrMinThreshold, len(shares), s.threshold)
	}
	seen := make(map[byte]bool, len(shares))
	for _, share := range shares {
		if share == nil || share.ID == 0 {
			return fmt.Errorf("%w: zero identifier", ErrInvalidShare)
		}
		if seen[share.ID] {
			return fmt.Errorf("%w: identifier %d", ErrDuplicateShare, share.ID)
		}
		seen[share.ID] = true
	}
	return nil
}
