package frost

import "sort"

// ID is a participant identifier, 1 <= id <= n, distinct within a group.
type ID uint16

// Config is the opaque (minSigners, maxSigners, ciphersuite) tuple every
// operation in this package is parameterized by. The ciphersuite is
// always FROST-ED25519-SHA512-v1; there is nothing to configure there.
type Config struct {
	MinSigners uint16
	MaxSigners uint16
}

// CreateConfig validates and returns a threshold configuration.
func CreateConfig(minSigners, maxSigners uint16) (Config, error) {
	if minSigners == 0 || maxSigners == 0 || minSigners > maxSigners {
		return Config{}, ErrInvalidThreshold
	}
	return Config{MinSigners: minSigners, MaxSigners: maxSigners}, nil
}

// KeyShare is a participant's share of the group secret: the private
// scalar s_i and its public commitment s_i·G. Σ λ_i·s_i over any valid
// quorum of size t equals the group secret sk.
type KeyShare struct {
	ID     ID
	Secret *Scalar
	Public *Element
}

// Zeroize clears the secret scalar. Call this once a KeyShare is no
// longer needed; it must never be logged, serialized by this package, or
// retained past its useful lifetime.
func (ks *KeyShare) Zeroize() {
	if ks.Secret != nil {
		ks.Secret.Zeroize()
	}
}

// KeyPackage bundles a participant's KeyShare with the group's public key.
// GroupPublicKey is identical across every KeyPackage emitted by a single
// GenerateKeys/Split call.
type KeyPackage struct {
	ID             ID
	Share          *KeyShare
	GroupPublicKey *Element

	// SigningCommitments is informational metadata only, per spec.md §9's
	// note that a pre-generated commitment array on the key package is
	// never consumed by Round2 (which always samples fresh nonces).
	// GenerateKeys and Split leave it empty, and this package's signing
	// path never reads it.
	SigningCommitments []*NonceCommitment
}

// Zeroize clears the key package's secret material.
func (kp *KeyPackage) Zeroize() {
	if kp.Share != nil {
		kp.Share.Zeroize()
	}
}

// Signature is the final 64-byte FROST output: R (32 bytes) followed by
// z (32 bytes). It is byte-identical in structure to a standard Ed25519
// signature and verifies with any RFC 8032 verifier against the group
// public key.
type Signature struct {
	R *Element
	Z *Scalar
}

// Bytes encodes the signature as R||z.
func (sig *Signature) Bytes() []byte {
	out := make([]byte, 0, 64)
	out = append(out, sig.R.Bytes()...)
	out = append(out, sig.Z.Bytes()...)
	return out
}

// SignatureFromBytes decodes a 64-byte signature, rejecting anything that
// is not exactly 64 bytes, whose R does not decode to a curve point, or
// whose z is not a canonical scalar < ℓ.
func SignatureFromBytes(data []byte) (*Signature, error) {
	if len(data) != 64 {
		return nil, ErrMalformedSignature
	}
	r, err := ElementFromBytes(data[:32])
	if err != nil {
		return nil, wrapErr(MalformedSignature, "signature R does not decode to a curve point", err)
	}
	z, err := ScalarFromCanonicalBytes(data[32:])
	if err != nil {
		return nil, wrapErr(MalformedSignature, "signature z is not a canonical scalar", err)
	}
	return &Signature{R: r, Z: z}, nil
}

// sortIDs returns a sorted copy of ids in canonical ascending order, the
// order the commitment-list encoding and every coordinator operation in
// §4.2/§4.6 requires.
func sortIDs(ids []ID) []ID {
	out := make([]ID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func uniqueIDs(ids []ID) bool {
	seen := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

// ThresholdSign runs the full two-round FROST protocol in-process across
// the given KeyPackages, which must number at least config.MinSigners. It
// exists for callers that do not need the Round1/Round2/Coordinator split
// across a real network — single-process tests, demos, and any caller
// happy to hold every participant's key share in memory at once. A real
// multi-party deployment instead drives Signer.Round1/Round2 and
// Coordinator directly, each party holding only its own KeyPackage.
func ThresholdSign(packages []*KeyPackage, message []byte, config Config) (*Signature, error) {
	if len(packages) == 0 {
		return nil, ErrInsufficientSigners
	}
	groupPublicKey := packages[0].GroupPublicKey

	ids := make([]ID, len(packages))
	signerPublics := make(map[ID]*Element, len(packages))
	signers := make(map[ID]*Signer, len(packages))
	for i, pkg := range packages {
		ids[i] = pkg.ID
		signerPublics[pkg.ID] = pkg.Share.Public
		signers[pkg.ID] = NewSigner(pkg)
	}

	nonces := make(map[ID]*Nonces, len(packages))
	commitments := make([]*Commitment, 0, len(packages))
	for _, pkg := range packages {
		n, nc, err := signers[pkg.ID].Round1()
		if err != nil {
			return nil, err
		}
		nonces[pkg.ID] = n
		commitments = append(commitments, &Commitment{ID: pkg.ID, Hiding: nc.Hiding, Binding: nc.Binding})
	}

	coordinator := NewCoordinator(config, groupPublicKey, signerPublics, message)
	signingPackage, err := coordinator.CreateSigningPackage(ids, commitments)
	if err != nil {
		return nil, err
	}

	shares := make([]*SignatureShare, 0, len(packages))
	for _, pkg := range packages {
		share, err := signers[pkg.ID].Round2(signingPackage, nonces[pkg.ID])
		if err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}

	return coordinator.AggregateSignatures(shares)
}

// Sign is the convenience form of spec.md §4.7 (component 6 of §2):
// given a scalar already reconstructed by Recover, it internally
// re-splits that scalar into a fresh degree-(MinSigners-1) polynomial
// over exactly config.MinSigners participants and runs ThresholdSign
// over all of them. It exists for callers holding a bare recovered
// scalar with no KeyPackages of their own — recovery followed by an
// immediate single signature, with no standing threshold group.
func Sign(recoveredScalar *Scalar, message []byte, config Config) (*Signature, error) {
	if err := ValidateThreshold(config, int(config.MaxSigners)); err != nil {
		return nil, err
	}

	poly, err := newRandomPolynomial(int(config.MinSigners)-1, recoveredScalar)
	if err != nil {
		return nil, err
	}
	defer poly.zeroize()

	groupPublicKey := ScalarBaseMul(recoveredScalar)

	packages := make([]*KeyPackage, 0, config.MinSigners)
	for i := uint16(1); i <= config.MinSigners; i++ {
		id := ID(i)
		x, err := idToScalar(id)
		if err != nil {
			return nil, err
		}
		shareSecret := poly.evaluate(x)
		share := &KeyShare{ID: id, Secret: shareSecret, Public: ScalarBaseMul(shareSecret)}
		packages = append(packages, &KeyPackage{ID: id, Share: share, GroupPublicKey: groupPublicKey})
	}

	return ThresholdSign(packages, message, config)
}
