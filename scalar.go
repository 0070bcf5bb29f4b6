package frost

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"runtime"

	"filippo.io/edwards25519"
)

// Scalar is an integer modulo the Ed25519 group order ℓ, serialized as a
// 32-byte little-endian canonical encoding. Scalar wraps
// filippo.io/edwards25519's constant-time implementation; this package
// never performs its own field arithmetic.
type Scalar struct {
	inner *edwards25519.Scalar
}

func newScalar(inner *edwards25519.Scalar) *Scalar {
	s := &Scalar{inner: inner}
	runtime.SetFinalizer(s, (*Scalar).finalize)
	return s
}

func (s *Scalar) finalize() {
	if s.inner != nil {
		s.Zeroize()
	}
}

// ScalarFromCanonicalBytes decodes a 32-byte little-endian scalar,
// rejecting any encoding that is not the canonical reduced representative
// in [0, ℓ).
func ScalarFromCanonicalBytes(data []byte) (*Scalar, error) {
	if len(data) != 32 {
		return nil, wrapErr(CryptoInternal, "scalar must be exactly 32 bytes", nil)
	}
	inner, err := new(edwards25519.Scalar).SetCanonicalBytes(data)
	if err != nil {
		return nil, wrapErr(MalformedSignature, "non-canonical scalar encoding", err)
	}
	return newScalar(inner), nil
}

// ScalarFromUniformBytes reduces at least 32 (conventionally 64) bytes of
// uniform material modulo ℓ, matching hash_to_scalar / challenge / binding
// factor derivation in the specification.
func ScalarFromUniformBytes(data []byte) (*Scalar, error) {
	buf := make([]byte, 64)
	copy(buf, data)
	inner, err := edwards25519.NewScalar().SetUniformBytes(buf)
	if err != nil {
		return nil, wrapErr(CryptoInternal, "failed to reduce uniform bytes to a scalar", err)
	}
	return newScalar(inner), nil
}

// ScalarFromClampedBytes applies the RFC 8032 §5.1.5 Ed25519 clamp (clear
// the low 3 bits, clear bit 255, set bit 254) to a 32-byte buffer and
// reduces the result modulo ℓ. This is distinct from
// ScalarFromCanonicalBytes: a clamped value is not itself a canonical
// scalar encoding (it is always >= 2^254, above ℓ), so it must go through
// edwards25519's dedicated clamping-and-reduction path instead.
func ScalarFromClampedBytes(data []byte) (*Scalar, error) {
	if len(data) != 32 {
		return nil, wrapErr(CryptoInternal, "clamped scalar input must be exactly 32 bytes", nil)
	}
	inner, err := edwards25519.NewScalar().SetBytesWithClamping(data)
	if err != nil {
		return nil, wrapErr(CryptoInternal, "failed to clamp and reduce scalar bytes", err)
	}
	return newScalar(inner), nil
}

// HashToScalar is SHA-512(data) reduced mod ℓ, the ciphersuite's
// hash_to_scalar operation.
func HashToScalar(data ...[]byte) (*Scalar, error) {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	return ScalarFromUniformBytes(h.Sum(nil))
}

// RandomScalar samples uniformly from [1, ℓ-1] using the OS CSPRNG.
func RandomScalar() (*Scalar, error) {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		return nil, wrapErr(CryptoInternal, "failed to read from the OS CSPRNG", err)
	}
	s, err := ScalarFromUniformBytes(buf)
	if err != nil {
		return nil, err
	}
	if s.IsZero() {
		// Negligible probability; resample rather than return a zero nonce.
		return RandomScalar()
	}
	return s, nil
}

func scalarZero() *Scalar { return newScalar(edwards25519.NewScalar()) }

// idToScalar interprets a participant id as the scalar x-coordinate used
// in polynomial evaluation and Lagrange interpolation.
func idToScalar(id ID) (*Scalar, error) {
	var buf [32]byte
	buf[0] = byte(id)
	buf[1] = byte(id >> 8)
	return ScalarFromCanonicalBytes(buf[:])
}

func (s *Scalar) Bytes() []byte { return s.inner.Bytes() }

func (s *Scalar) String() string { return hex.EncodeToString(s.Bytes()) }

func (s *Scalar) Add(other *Scalar) *Scalar {
	return newScalar(edwards25519.NewScalar().Add(s.inner, other.inner))
}

func (s *Scalar) Sub(other *Scalar) *Scalar {
	return newScalar(edwards25519.NewScalar().Subtract(s.inner, other.inner))
}

func (s *Scalar) Mul(other *Scalar) *Scalar {
	return newScalar(edwards25519.NewScalar().Multiply(s.inner, other.inner))
}

func (s *Scalar) Negate() *Scalar {
	return newScalar(edwards25519.NewScalar().Negate(s.inner))
}

// Invert returns 1/s mod ℓ, failing when s is zero.
func (s *Scalar) Invert() (*Scalar, error) {
	if s.IsZero() {
		return nil, wrapErr(CryptoInternal, "cannot invert a zero scalar", nil)
	}
	return newScalar(edwards25519.NewScalar().Invert(s.inner)), nil
}

func (s *Scalar) Equal(other *Scalar) bool {
	return s.inner.Equal(other.inner) == 1
}

func (s *Scalar) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

// Zeroize overwrites the scalar's internal state. Call this as soon as a
// secret share or nonce scalar is no longer needed; KeyShare.Zeroize and
// Nonces.consume do this automatically.
func (s *Scalar) Zeroize() {
	s.inner = edwards25519.NewScalar()
	runtime.SetFinalizer(s, nil)
}
