package frost

import (
	"crypto/ed25519"
	"crypto/sha512"
	"crypto/x509"
)

// Split implements the key-backup facility of spec.md §4.8: break an
// existing Ed25519 signing key into MaxSigners Shamir shares, any
// MinSigners of which reconstruct it via Recover. Split accepts the key
// in any of three forms, per spec.md §4.4:
//
//   - a stdlib ed25519.PrivateKey (64-byte seed||public form): its
//     .Seed() is hashed via SHA-512 and clamped exactly as RFC 8032
//     derives the signing scalar,
//   - DER-encoded PKCS#8 bytes wrapping an Ed25519 private key: same
//     seed derivation, after unwrapping the PKCS#8 envelope, or
//   - a raw 32-byte scalar: used directly as sk, with no re-hashing —
//     this is the form an already-clamped scalar arrives in, and
//     re-hashing it would silently produce a different key than the
//     one that scalar actually signs with.
//
// Whichever form produced it, the resulting scalar is the secret
// Shamir-shared, keeping Split's output compatible with a scalar
// produced by GenerateKeys (which starts from a uniformly random scalar
// directly, with no seed/clamp step of its own).
func Split(key any, config Config) (groupPublicKey *Element, packages []*KeyPackage, err error) {
	if err := ValidateThreshold(config, int(config.MaxSigners)); err != nil {
		return nil, nil, err
	}

	secret, err := secretScalarFromKey(key)
	if err != nil {
		return nil, nil, err
	}
	defer secret.Zeroize()

	poly, err := newRandomPolynomial(int(config.MinSigners)-1, secret)
	if err != nil {
		return nil, nil, err
	}
	defer poly.zeroize()

	groupPublicKey = ScalarBaseMul(secret)

	packages = make([]*KeyPackage, 0, config.MaxSigners)
	for i := uint16(1); i <= config.MaxSigners; i++ {
		id := ID(i)
		x, err := idToScalar(id)
		if err != nil {
			return nil, nil, err
		}
		shareSecret := poly.evaluate(x)
		share := &KeyShare{ID: id, Secret: shareSecret, Public: ScalarBaseMul(shareSecret)}
		packages = append(packages, &KeyPackage{ID: id, Share: share, GroupPublicKey: groupPublicKey})
	}
	return groupPublicKey, packages, nil
}

// Recover reconstructs the group secret scalar from any MinSigners-sized
// subset of shares, via Lagrange interpolation at x=0:
//
//	sk = Σ_i λ_i · s_i
//
// The caller is responsible for zeroizing the returned scalar once done
// with it.
func Recover(shares []*KeyShare, config Config) (*Scalar, error) {
	if uint16(len(shares)) < config.MinSigners {
		return nil, ErrInsufficientShares
	}

	ids := make([]ID, len(shares))
	for i, s := range shares {
		ids[i] = s.ID
	}
	if !uniqueIDs(ids) {
		return nil, ErrDuplicateParticipant
	}

	secret := scalarZero()
	for _, s := range shares {
		lambda, err := lagrangeCoefficient(s.ID, ids)
		if err != nil {
			return nil, err
		}
		secret = secret.Add(s.Secret.Mul(lambda))
	}
	return secret, nil
}

// secretScalarFromKey normalizes the three accepted Split input forms
// down to the Ed25519 signing scalar. The ed25519.PrivateKey and PKCS#8
// forms genuinely carry a seed, so they go through SHA-512 derivation
// and clamping. A raw 32-byte []byte is, per spec.md §4.4, already the
// scalar itself and is used as-is.
func secretScalarFromKey(key any) (*Scalar, error) {
	switch k := key.(type) {
	case ed25519.PrivateKey:
		if len(k) != ed25519.PrivateKeySize {
			return nil, ErrInvalidKeyFormat
		}
		seed := append([]byte{}, k.Seed()...)
		defer ZeroizeBytes(seed)
		return clampedScalarFromSeed(seed)
	case []byte:
		switch len(k) {
		case 32:
			return ScalarFromUniformBytes(k)
		default:
			seed, err := seedFromPKCS8(k)
			if err != nil {
				return nil, err
			}
			defer ZeroizeBytes(seed)
			return clampedScalarFromSeed(seed)
		}
	default:
		return nil, ErrInvalidKeyFormat
	}
}

// seedFromPKCS8 parses DER-encoded PKCS#8 bytes wrapping an Ed25519
// private key. This is the one ambient concern in this package with no
// corresponding third-party library anywhere in the retrieved corpus;
// crypto/x509's PKCS#8 parser is the standard, and only, way to get an
// ed25519.PrivateKey back out of that wire format.
func seedFromPKCS8(der []byte) ([]byte, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, wrapErr(InvalidKeyFormat, "not a recognized ed25519 key format", err)
	}
	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, wrapErr(InvalidKeyFormat, "PKCS#8 key is not an Ed25519 private key", nil)
	}
	return append([]byte{}, priv.Seed()...), nil
}

// clampedScalarFromSeed derives the Ed25519 signing scalar from a 32-byte
// seed exactly as RFC 8032 does: hash the seed with SHA-512, then clamp
// and reduce the low 32 bytes of the digest.
func clampedScalarFromSeed(seed []byte) (*Scalar, error) {
	if len(seed) != 32 {
		return nil, ErrInvalidKeyFormat
	}
	h := sha512.Sum512(seed)
	return ScalarFromClampedBytes(h[:32])
}
