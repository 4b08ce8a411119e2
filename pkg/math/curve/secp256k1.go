package curve

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	secp256k1ScalarSize = 32
	secp256k1PointSize  = 33
)

var secp256k1Order = saferith.ModulusFromBytes(secp256k1.S256().N.Bytes())

// Secp256k1 provides the secp256k1 group, with scalars in the field of
// integers modulo the group order.
type Secp256k1 struct{}

func (Secp256k1) NewPoint() Point {
	return new(secp256k1Point)
}

func (Secp256k1) NewBasePoint() Point {
	out := new(secp256k1Point)
	one := new(secp256k1.ModNScalar).SetInt(1)
	secp256k1.ScalarBaseMultNonConst(one, &out.value)
	return out
}

func (Secp256k1) NewScalar() Scalar {
	return new(secp256k1Scalar)
}

func (Secp256k1) Name() string {
	return "secp256k1"
}

func (Secp256k1) Order() *saferith.Modulus {
	return secp256k1Order
}

func (Secp256k1) ScalarBits() int {
	return 256
}

func (Secp256k1) SafeScalarBytes() int {
	return (256 + 128) / 8
}

func (Secp256k1) ScalarByteSize() int {
	return secp256k1ScalarSize
}

func (Secp256k1) PointByteSize() int {
	return secp256k1PointSize
}

type secp256k1Scalar struct {
	value secp256k1.ModNScalar
}

func secp256k1CastScalar(generic Scalar) *secp256k1Scalar {
	out, ok := generic.(*secp256k1Scalar)
	if !ok {
		panic(fmt.Sprintf("failed to convert to secp256k1Scalar: %v", generic))
	}
	return out
}

func (*secp256k1Scalar) Curve() Curve {
	return Secp256k1{}
}

func (s *secp256k1Scalar) MarshalBinary() ([]byte, error) {
	data := s.value.Bytes()
	return data[:], nil
}

func (s *secp256k1Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != secp256k1ScalarSize {
		return fmt.Errorf("curve: invalid secp256k1 scalar length: %d", len(data))
	}
	var exact [secp256k1ScalarSize]byte
	copy(exact[:], data)
	if s.value.SetBytes(&exact) != 0 {
		return errors.New("curve: secp256k1 scalar not canonical")
	}
	return nil
}

func (s *secp256k1Scalar) Add(that Scalar) Scalar {
	other := secp256k1CastScalar(that)
	s.value.Add(&other.value)
	return s
}

func (s *secp256k1Scalar) Sub(that Scalar) Scalar {
	other := secp256k1CastScalar(that)
	negated := new(secp256k1.ModNScalar).NegateVal(&other.value)
	s.value.Add(negated)
	return s
}

func (s *secp256k1Scalar) Mul(that Scalar) Scalar {
	other := secp256k1CastScalar(that)
	s.value.Mul(&other.value)
	return s
}

func (s *secp256k1Scalar) Invert() Scalar {
	s.value.InverseNonConst()
	return s
}

func (s *secp256k1Scalar) Negate() Scalar {
	s.value.Negate()
	return s
}

func (s *secp256k1Scalar) Set(that Scalar) Scalar {
	other := secp256k1CastScalar(that)
	s.value.Set(&other.value)
	return s
}

func (s *secp256k1Scalar) SetNat(nat *saferith.Nat) Scalar {
	reduced := new(saferith.Nat).Mod(nat, secp256k1Order)
	buf := make([]byte, secp256k1ScalarSize)
	reduced.FillBytes(buf)
	s.value.SetByteSlice(buf)
	return s
}

func (s *secp256k1Scalar) SetUInt32(value uint32) Scalar {
	s.value.SetInt(value)
	return s
}

func (s *secp256k1Scalar) Equal(that Scalar) bool {
	other := secp256k1CastScalar(that)
	return s.value.Equals(&other.value)
}

func (s *secp256k1Scalar) IsZero() bool {
	return s.value.IsZero()
}

func (s *secp256k1Scalar) Act(that Point) Point {
	other := secp256k1CastPoint(that)
	out := new(secp256k1Point)
	if s.value.IsZero() || other.IsIdentity() {
		return out
	}
	secp256k1.ScalarMultNonConst(&s.value, &other.value, &out.value)
	return out
}

func (s *secp256k1Scalar) ActOnBase() Point {
	out := new(secp256k1Point)
	if s.value.IsZero() {
		return out
	}
	secp256k1.ScalarBaseMultNonConst(&s.value, &out.value)
	return out
}

type secp256k1Point struct {
	value secp256k1.JacobianPoint
}

func secp256k1CastPoint(generic Point) *secp256k1Point {
	out, ok := generic.(*secp256k1Point)
	if !ok {
		panic(fmt.Sprintf("failed to convert to secp256k1Point: %v", generic))
	}
	return out
}

func (*secp256k1Point) Curve() Curve {
	return Secp256k1{}
}

// MarshalBinary encodes the point in 33 byte compressed form, with the
// all-zero string reserved for the group identity.
func (p *secp256k1Point) MarshalBinary() ([]byte, error) {
	if p.IsIdentity() {
		return make([]byte, secp256k1PointSize), nil
	}
	affine := p.value
	affine.ToAffine()
	return secp256k1.NewPublicKey(&affine.X, &affine.Y).SerializeCompressed(), nil
}

func (p *secp256k1Point) UnmarshalBinary(data []byte) error {
	if len(data) != secp256k1PointSize {
		return fmt.Errorf("curve: invalid secp256k1 point length: %d", len(data))
	}
	allZero := byte(0)
	for _, b := range data {
		allZero |= b
	}
	if allZero == 0 {
		p.value = secp256k1.JacobianPoint{}
		return nil
	}
	if data[0] != secp256k1.PubKeyFormatCompressedEven && data[0] != secp256k1.PubKeyFormatCompressedOdd {
		return errors.New("curve: secp256k1 point not in compressed form")
	}
	public, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return fmt.Errorf("curve: secp256k1 point not canonical: %w", err)
	}
	public.AsJacobian(&p.value)
	return nil
}

func (p *secp256k1Point) Add(that Point) Point {
	other := secp256k1CastPoint(that)
	out := new(secp256k1Point)
	secp256k1.AddNonConst(&p.value, &other.value, &out.value)
	return out
}

func (p *secp256k1Point) Sub(that Point) Point {
	return p.Add(that.Negate())
}

func (p *secp256k1Point) Negate() Point {
	out := new(secp256k1Point)
	out.value.Set(&p.value)
	if out.IsIdentity() {
		return out
	}
	out.value.Y.Normalize().Negate(1).Normalize()
	return out
}

func (p *secp256k1Point) Set(that Point) Point {
	other := secp256k1CastPoint(that)
	p.value.Set(&other.value)
	return p
}

func (p *secp256k1Point) Equal(that Point) bool {
	lhs, err := p.MarshalBinary()
	if err != nil {
		return false
	}
	rhs, err := that.MarshalBinary()
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(lhs, rhs) == 1
}

func (p *secp256k1Point) IsIdentity() bool {
	z := new(secp256k1.FieldVal).Set(&p.value.Z)
	if z.Normalize().IsZero() {
		return true
	}
	x := new(secp256k1.FieldVal).Set(&p.value.X)
	y := new(secp256k1.FieldVal).Set(&p.value.Y)
	return x.Normalize().IsZero() && y.Normalize().IsZero()
}
