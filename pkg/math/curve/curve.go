// Package curve defines the abstract prime field and prime-order group
// consumed by the sharing schemes, together with a secp256k1 backend.
package curve

import (
	"encoding"

	"github.com/cronokirby/saferith"
)

// Curve represents the starting point for working with a prime-order group
// and its scalar field. It can return new points and scalars, as well as
// the group's canonical generator.
type Curve interface {
	// NewPoint returns a new point set to the group identity.
	NewPoint() Point
	// NewBasePoint returns a new point set to the canonical generator.
	NewBasePoint() Point
	// NewScalar returns a new scalar set to zero.
	NewScalar() Scalar
	// Name returns the name of this curve.
	Name() string
	// Order returns the order of the scalar field as a modulus.
	Order() *saferith.Modulus
	// ScalarBits returns the number of significant bits in a scalar.
	ScalarBits() int
	// SafeScalarBytes returns the number of random bytes needed to sample
	// a scalar with negligible bias.
	SafeScalarBytes() int
	// ScalarByteSize returns the length of the canonical scalar encoding.
	ScalarByteSize() int
	// PointByteSize returns the length of the canonical point encoding.
	PointByteSize() int
}

// Scalar represents an element of the field underlying a curve's group.
//
// Arithmetic methods mutate the receiver and return it, allowing chains
// like group.NewScalar().Set(x).Mul(y).
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	// Curve returns the curve this scalar belongs to.
	Curve() Curve
	// Add sets the receiver to receiver + that, returning it.
	Add(that Scalar) Scalar
	// Sub sets the receiver to receiver - that, returning it.
	Sub(that Scalar) Scalar
	// Mul sets the receiver to receiver * that, returning it.
	Mul(that Scalar) Scalar
	// Invert sets the receiver to its multiplicative inverse, returning it.
	// The receiver must not be zero.
	Invert() Scalar
	// Negate sets the receiver to its additive inverse, returning it.
	Negate() Scalar
	// Set copies that into the receiver, returning it.
	Set(that Scalar) Scalar
	// SetNat sets the receiver to a number, reduced mod the group order.
	SetNat(nat *saferith.Nat) Scalar
	// SetUInt32 sets the receiver to a small unsigned integer.
	SetUInt32(value uint32) Scalar
	// Equal reports whether two scalars hold the same value.
	Equal(that Scalar) bool
	// IsZero reports whether this scalar is zero.
	IsZero() bool
	// Act returns receiver * that, as a new point.
	Act(that Point) Point
	// ActOnBase returns receiver * generator, as a new point.
	ActOnBase() Point
}

// Point represents an element of our group.
//
// Group methods return new points, leaving the receiver untouched, with
// the exception of Set and UnmarshalBinary.
type Point interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	// Curve returns the curve this point belongs to.
	Curve() Curve
	// Add returns receiver + that, as a new point.
	Add(that Point) Point
	// Sub returns receiver - that, as a new point.
	Sub(that Point) Point
	// Negate returns the additive inverse of the receiver, as a new point.
	Negate() Point
	// Set copies that into the receiver, returning it.
	Set(that Point) Point
	// Equal reports whether two points are the same group element.
	Equal(that Point) bool
	// IsIdentity reports whether this point is the group identity.
	IsIdentity() bool
}
