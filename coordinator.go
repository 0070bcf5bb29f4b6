package frost

// SessionState is the coordinator's signing-session state machine from
// spec.md §5.5: a session advances strictly forward, and any error moves
// it into Failed for good — there is no retry-in-place.
type SessionState string

const (
	StateIdle                 SessionState = "Idle"
	StateAwaitingCommitments  SessionState = "AwaitingCommitments"
	StatePackageReady         SessionState = "PackageReady"
	StateAwaitingShares       SessionState = "AwaitingShares"
	StateDone                 SessionState = "Done"
	StateFailed               SessionState = "Failed"
)

// Coordinator drives a single FROST signing session: collecting Round1
// commitments, building the SigningPackage every signer computes Round2
// against, verifying each returned share, and aggregating the final
// Signature. It holds no secret key material of its own.
type Coordinator struct {
	config         Config
	groupPublicKey *Element
	signerPublics  map[ID]*Element
	message        []byte

	state       SessionState
	failureKind Kind
	commitments []*Commitment
	pkg         *SigningPackage
	shares      map[ID]*SignatureShare
	audit       *SessionAudit
}

// NewCoordinator builds a Coordinator for a signing session over message,
// given the group public key and each participant's public key-share
// commitment (s_i·G), as published alongside GenerateKeys's KeyPackages.
func NewCoordinator(config Config, groupPublicKey *Element, signerPublics map[ID]*Element, message []byte) *Coordinator {
	return &Coordinator{
		config:         config,
		groupPublicKey: groupPublicKey,
		signerPublics:  signerPublics,
		message:        message,
		state:          StateIdle,
		shares:         make(map[ID]*SignatureShare),
		audit:          newSessionAudit(),
	}
}

// State returns the session's current state.
func (c *Coordinator) State() SessionState { return c.state }

// Audit returns the session's event log.
func (c *Coordinator) Audit() []AuditEntry { return c.audit.entries }

func (c *Coordinator) fail(kind Kind, message string) error {
	c.state = StateFailed
	c.failureKind = kind
	err := newErr(kind, message)
	c.audit.record(AuditSessionFailed, string(kind), message)
	return err
}

// CreateSigningPackage collects every participant's Round1
// NonceCommitment, validates them, derives the per-signer binding factors
// and the aggregate group commitment R = Σ (D_i + ρ_i·E_i), and returns
// the SigningPackage every signer needs for Round2.
//
// commitments must contain exactly one entry per id in ids, with no
// duplicate ids, and each commitment element must decode to a non-identity
// point in the prime-order subgroup.
func (c *Coordinator) CreateSigningPackage(ids []ID, commitments []*Commitment) (*SigningPackage, error) {
	if c.state != StateIdle {
		return nil, c.fail(CryptoInternal, "CreateSigningPackage called outside the Idle state")
	}
	c.state = StateAwaitingCommitments

	if err := ValidateParticipants(ids); err != nil {
		return nil, c.fail(ErrKind(err), err.Error())
	}
	if err := ValidateThreshold(c.config, len(ids)); err != nil {
		return nil, c.fail(ErrKind(err), err.Error())
	}

	sorted := sortIDs(ids)

	byID := make(map[ID]*Commitment, len(commitments))
	for _, cm := range commitments {
		if _, exists := byID[cm.ID]; exists {
			return nil, c.fail(DuplicateParticipant, "duplicate commitment for participant id")
		}
		if cm.Hiding.IsIdentity() || cm.Binding.IsIdentity() {
			return nil, c.fail(InvalidCommitment, "nonce commitment is the identity element")
		}
		if !cm.Hiding.IsInPrimeOrderSubgroup() || !cm.Binding.IsInPrimeOrderSubgroup() {
			return nil, c.fail(InvalidCommitment, "nonce commitment is outside the prime-order subgroup")
		}
		byID[cm.ID] = cm
	}

	ordered := make([]*Commitment, 0, len(sorted))
	for _, id := range sorted {
		cm, ok := byID[id]
		if !ok {
			return nil, c.fail(MismatchedCommitments, "commitment set does not match participant set")
		}
		ordered = append(ordered, cm)
	}
	if len(ordered) != len(byID) {
		return nil, c.fail(MismatchedCommitments, "commitment set does not match participant set")
	}

	rho, err := bindingFactors(ordered, c.groupPublicKey, c.message)
	if err != nil {
		return nil, c.fail(CryptoInternal, "failed to derive binding factors")
	}

	r := IdentityElement()
	for _, cm := range ordered {
		ri := cm.Hiding.Add(cm.Binding.Mul(rho[cm.ID]))
		r = r.Add(ri)
	}

	pkg := &SigningPackage{
		IDs:     sorted,
		Message: c.message,
		GroupCommitment: &GroupCommitment{
			R:       r,
			Binding: rho,
		},
	}

	c.commitments = ordered
	c.pkg = pkg
	c.state = StatePackageReady
	c.audit.record(AuditPackageCreated, "", "")
	return pkg, nil
}

// AggregateSignatures collects every signer's Round2 SignatureShare,
// verifies each one individually against its published commitment and
// public key-share, and sums the shares into the final Signature:
// z = Σ z_i. A single invalid share fails the whole session rather than
// being silently dropped, since FROST offers no way to recover the
// correct signature without it.
func (c *Coordinator) AggregateSignatures(shares []*SignatureShare) (*Signature, error) {
	if c.state != StatePackageReady {
		return nil, c.fail(CryptoInternal, "AggregateSignatures called before a signing package was created")
	}
	c.state = StateAwaitingShares

	if len(shares) != len(c.pkg.IDs) {
		return nil, c.fail(MismatchedShares, "signature share set does not match participant set")
	}

	byID := make(map[ID]*SignatureShare, len(shares))
	for _, s := range shares {
		if _, exists := byID[s.ID]; exists {
			return nil, c.fail(DuplicateParticipant, "duplicate signature share for participant id")
		}
		byID[s.ID] = s
	}

	commitmentByID := make(map[ID]*Commitment, len(c.commitments))
	for _, cm := range c.commitments {
		commitmentByID[cm.ID] = cm
	}

	z := scalarZero()
	for _, id := range c.pkg.IDs {
		share, ok := byID[id]
		if !ok {
			return nil, c.fail(MismatchedShares, "signature share set does not match participant set")
		}
		signerPublic, ok := c.signerPublics[id]
		if !ok {
			return nil, c.fail(NotAParticipant, "no published public key-share for participant id")
		}
		cm := commitmentByID[id]

		ok, err := verifySignatureShare(share, cm, signerPublic, c.groupPublicKey, c.pkg)
		if err != nil {
			return nil, c.fail(CryptoInternal, "failed to verify signature share")
		}
		if !ok {
			return nil, c.fail(ShareVerificationFailed, "signature share failed verification")
		}

		z = z.Add(share.Z)
	}

	sig := &Signature{R: c.pkg.GroupCommitment.R, Z: z}
	c.state = StateDone
	c.audit.record(AuditSignatureAggregated, "", "")
	return sig, nil
}

// Verify checks sig against message and the group public key, per
// spec.md §4.6: g^z == R + c·PK, exactly the Ed25519 Schnorr verification
// equation, with c = H(R || PK || message). R is rejected outright if it
// is the identity or one of the eight low-order torsion points, per
// spec.md §8's requirement that non-canonical/low-order R encodings
// never verify.
func Verify(sig *Signature, message []byte, groupPublicKey *Element) (bool, error) {
	if !sig.R.IsInPrimeOrderSubgroup() {
		return false, nil
	}

	c, err := challenge(sig.R, groupPublicKey, message)
	if err != nil {
		return false, err
	}
	lhs := ScalarBaseMul(sig.Z)
	rhs := sig.R.Add(groupPublicKey.Mul(c))
	return lhs.Equal(rhs), nil
}
