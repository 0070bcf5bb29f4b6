package frost

// Nonces holds the two per-signing-session secret scalars a signer samples
// in Round1, per spec.md §4.5: a hiding nonce d and a binding nonce e. A
// Nonces value is move-only: Round2 consumes it and zeroizes both scalars,
// and a second Round2 call against the same Nonces fails with
// ErrNoncesConsumed rather than silently reusing nonce material.
type Nonces struct {
	Hiding  *Scalar
	Binding *Scalar

	consumed bool
}

// NonceCommitment is the public pair (D, E) = (d·G, e·G) a signer publishes
// in Round1.
type NonceCommitment struct {
	Hiding  *Element
	Binding *Element
}

// Commitment pairs a participant id with its published NonceCommitment,
// the unit the coordinator collects in Round1 and the unit
// encodeCommitmentList serializes.
type Commitment struct {
	ID      ID
	Hiding  *Element
	Binding *Element
}

// GroupCommitment is the aggregated R = Σ (D_i + ρ_i·E_i) over every
// signer, plus the per-signer binding factors used to compute it, kept
// around so Round2 and share verification do not have to recompute them.
type GroupCommitment struct {
	R       *Element
	Binding map[ID]*Scalar
}

// SigningPackage is what the coordinator sends every signer before Round2:
// the full signer set, the message, and the group commitment derived from
// every signer's Round1 output.
type SigningPackage struct {
	IDs             []ID
	Message         []byte
	GroupCommitment *GroupCommitment
}

// SignatureShare is a signer's Round2 output z_i, which the coordinator
// verifies individually before aggregating.
type SignatureShare struct {
	ID ID
	Z  *Scalar
}

// generateNonces samples a fresh hiding/binding nonce pair and their public
// commitments, the Round1 operation of spec.md §4.5.
func generateNonces() (*Nonces, *NonceCommitment, error) {
	hiding, err := RandomScalar()
	if err != nil {
		return nil, nil, wrapErr(CryptoInternal, "failed to sample hiding nonce", err)
	}
	binding, err := RandomScalar()
	if err != nil {
		return nil, nil, wrapErr(CryptoInternal, "failed to sample binding nonce", err)
	}

	nonces := &Nonces{Hiding: hiding, Binding: binding}
	commitment := &NonceCommitment{
		Hiding:  ScalarBaseMul(hiding),
		Binding: ScalarBaseMul(binding),
	}
	return nonces, commitment, nil
}

// consume marks the nonces as used and zeroizes both scalars, enforcing
// the single-use discipline spec.md §4.5 requires of nonce material.
func (n *Nonces) consume() error {
	if n.consumed {
		return ErrNoncesConsumed
	}
	n.consumed = true
	n.Hiding.Zeroize()
	n.Binding.Zeroize()
	return nil
}

// Zeroize clears the nonces without marking them consumed; used when a
// session is aborted before Round2 runs.
func (n *Nonces) Zeroize() {
	if n.Hiding != nil {
		n.Hiding.Zeroize()
	}
	if n.Binding != nil {
		n.Binding.Zeroize()
	}
}
