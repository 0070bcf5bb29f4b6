package frost

// Signer runs the two-round FROST signing protocol described in spec.md
// §4.5 on behalf of a single key share. A Signer is stateless between
// Round1 and Round2 calls; all session state (the Nonces sampled in
// Round1) is returned to the caller, who is responsible for carrying it
// to the corresponding Round2 call and for discarding it afterward.
type Signer struct {
	share          *KeyShare
	groupPublicKey *Element
}

// NewSigner builds a Signer from a KeyPackage produced by GenerateKeys or
// Split.
func NewSigner(pkg *KeyPackage) *Signer {
	return &Signer{share: pkg.Share, groupPublicKey: pkg.GroupPublicKey}
}

// Round1 samples a fresh hiding/binding nonce pair and returns the Nonces
// (kept secret, carried to Round2) alongside the NonceCommitment published
// to the coordinator.
func (s *Signer) Round1() (*Nonces, *NonceCommitment, error) {
	return generateNonces()
}

// Round2 computes this signer's signature share z_i against a
// SigningPackage assembled by the coordinator from every participant's
// Round1 commitments. It consumes nonces: a second call against the same
// Nonces value returns ErrNoncesConsumed.
//
//	ρ_i = binding factor for this signer, from pkg.GroupCommitment.Binding
//	R   = pkg.GroupCommitment.R
//	λ_i = Lagrange coefficient of this signer within pkg.IDs
//	c   = H(R || PK || message)
//	z_i = d_i + ρ_i·e_i + λ_i·s_i·c
func (s *Signer) Round2(pkg *SigningPackage, nonces *Nonces) (*SignatureShare, error) {
	if nonces.consumed {
		return nil, ErrNoncesConsumed
	}
	// consume zeroizes both nonce scalars in place, so it runs only after
	// z has been computed from them.
	defer nonces.consume()

	found := false
	for _, id := range pkg.IDs {
		if id == s.share.ID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotAParticipant
	}

	rho, ok := pkg.GroupCommitment.Binding[s.share.ID]
	if !ok {
		return nil, ErrMissingBindingFactor
	}

	lambda, err := lagrangeCoefficient(s.share.ID, pkg.IDs)
	if err != nil {
		return nil, err
	}

	c, err := challenge(pkg.GroupCommitment.R, s.groupPublicKey, pkg.Message)
	if err != nil {
		return nil, err
	}

	z := nonces.Hiding.Add(rho.Mul(nonces.Binding)).Add(lambda.Mul(s.share.Secret).Mul(c))
	return &SignatureShare{ID: s.share.ID, Z: z}, nil
}

// verifySignatureShare checks z_i·G == R_i + (λ_i·c)·PK_i where
// R_i = D_i + ρ_i·E_i is this signer's contribution to the group
// commitment and PK_i = s_i·G is its public key-share commitment. c is the
// same Fiat-Shamir challenge every signer computed in Round2, derived from
// the group public key (not the individual signer's). This is the
// per-share check the coordinator runs before aggregating, so a single
// malicious signer cannot spoil the group signature silently.
func verifySignatureShare(
	share *SignatureShare,
	commitment *Commitment,
	signerPublic *Element,
	groupPublicKey *Element,
	pkg *SigningPackage,
) (bool, error) {
	rho, ok := pkg.GroupCommitment.Binding[share.ID]
	if !ok {
		return false, ErrMissingBindingFactor
	}

	lambda, err := lagrangeCoefficient(share.ID, pkg.IDs)
	if err != nil {
		return false, err
	}

	c, err := challenge(pkg.GroupCommitment.R, groupPublicKey, pkg.Message)
	if err != nil {
		return false, err
	}

	ri := commitment.Hiding.Add(commitment.Binding.Mul(rho))
	lhs := ScalarBaseMul(share.Z)
	rhs := ri.Add(signerPublic.Mul(lambda.Mul(c)))
	return lhs.Equal(rhs), nil
}
