package frost

import (
	"encoding/hex"

	"filippo.io/edwards25519"
)

// Element is a point on Ed25519, serialized as a 32-byte compressed
// encoding. Element wraps filippo.io/edwards25519's constant-time point
// arithmetic; this package performs no curve math of its own.
type Element struct {
	inner *edwards25519.Point
}

func newElement(inner *edwards25519.Point) *Element { return &Element{inner: inner} }

// BasePoint returns the Ed25519 generator G.
func BasePoint() *Element { return newElement(edwards25519.NewGeneratorPoint()) }

// IdentityElement returns the curve's identity element.
func IdentityElement() *Element { return newElement(edwards25519.NewIdentityPoint()) }

// ElementFromBytes decodes a 32-byte compressed point. Decoding already
// rejects anything not on the curve; callers that additionally require
// the point to be non-identity and outside the small-order subgroup
// should also check IsIdentity and IsInPrimeOrderSubgroup, as
// CreateSigningPackage does for received commitments.
func ElementFromBytes(data []byte) (*Element, error) {
	if len(data) != 32 {
		return nil, wrapErr(MalformedSignature, "group element must be exactly 32 bytes", nil)
	}
	inner, err := new(edwards25519.Point).SetBytes(data)
	if err != nil {
		return nil, wrapErr(MalformedSignature, "invalid point encoding", err)
	}
	return newElement(inner), nil
}

func (e *Element) Bytes() []byte { return e.inner.Bytes() }

func (e *Element) String() string { return hex.EncodeToString(e.Bytes()) }

func (e *Element) Add(other *Element) *Element {
	return newElement(edwards25519.NewIdentityPoint().Add(e.inner, other.inner))
}

func (e *Element) Sub(other *Element) *Element {
	return newElement(edwards25519.NewIdentityPoint().Subtract(e.inner, other.inner))
}

func (e *Element) Mul(s *Scalar) *Element {
	return newElement(edwards25519.NewIdentityPoint().ScalarMult(s.inner, e.inner))
}

// ScalarBaseMul returns s·G.
func ScalarBaseMul(s *Scalar) *Element {
	return newElement(edwards25519.NewIdentityPoint().ScalarBaseMult(s.inner))
}

func (e *Element) Negate() *Element {
	return newElement(edwards25519.NewIdentityPoint().Negate(e.inner))
}

func (e *Element) Equal(other *Element) bool {
	return e.inner.Equal(other.inner) == 1
}

func (e *Element) IsIdentity() bool {
	return e.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

// IsInPrimeOrderSubgroup rejects the eight low-order (torsion) points by
// checking [8]P ≠ identity, the cheap subgroup check the specification
// calls for in §4.1 rather than a full order-ℓ membership test.
func (e *Element) IsInPrimeOrderSubgroup() bool {
	cleared := edwards25519.NewIdentityPoint().MultByCofactor(e.inner)
	return cleared.Equal(edwards25519.NewIdentityPoint()) != 1
}
