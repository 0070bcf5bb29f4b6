package frost

import (
	"crypto/ed25519"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, min, max uint16) Config {
	t.Helper()
	config, err := CreateConfig(min, max)
	require.NoError(t, err)
	return config
}

// TestFullSigningFlow covers scenario S1: a 2-of-3 group generates keys,
// two signers run Round1/Round2 through a Coordinator, and the resulting
// signature verifies against the group public key with the standalone
// Verify function.
func TestFullSigningFlow(t *testing.T) {
	config := testConfig(t, 2, 3)

	groupPublicKey, packages, err := GenerateKeys(config)
	require.NoError(t, err)
	require.Len(t, packages, 3)

	for _, pkg := range packages {
		require.True(t, VerifyKeyPackage(pkg))
	}

	message := []byte("threshold signatures, same as the real thing")
	signers := []*KeyPackage{packages[0], packages[1]}

	sig, err := ThresholdSign(signers, message, config)
	require.NoError(t, err)

	ok, err := Verify(sig, message, groupPublicKey)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestFullSigningFlow_AnyQuorum checks that every size-2 subset of a
// 2-of-3 group produces a verifying signature, not just the first pair.
func TestFullSigningFlow_AnyQuorum(t *testing.T) {
	config := testConfig(t, 2, 3)
	groupPublicKey, packages, err := GenerateKeys(config)
	require.NoError(t, err)

	message := []byte("any quorum of signers must agree")
	quorums := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for _, q := range quorums {
		signers := []*KeyPackage{packages[q[0]], packages[q[1]]}
		sig, err := ThresholdSign(signers, message, config)
		require.NoError(t, err)

		ok, err := Verify(sig, message, groupPublicKey)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

// TestSignatureFromBytesRoundTrip checks that encoding and decoding a
// signature is lossless.
func TestSignatureFromBytesRoundTrip(t *testing.T) {
	config := testConfig(t, 2, 3)
	groupPublicKey, packages, err := GenerateKeys(config)
	require.NoError(t, err)

	message := []byte("round trip me")
	sig, err := ThresholdSign([]*KeyPackage{packages[0], packages[1]}, message, config)
	require.NoError(t, err)

	decoded, err := SignatureFromBytes(sig.Bytes())
	require.NoError(t, err)
	require.True(t, sig.R.Equal(decoded.R))
	require.True(t, sig.Z.Equal(decoded.Z))

	ok, err := Verify(decoded, message, groupPublicKey)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestVerify_TamperedMessageFails covers scenario S5's message-tamper
// case: a signature over
// one message must not verify against a different message.
func TestVerify_TamperedMessageFails(t *testing.T) {
	config := testConfig(t, 2, 3)
	groupPublicKey, packages, err := GenerateKeys(config)
	require.NoError(t, err)

	sig, err := ThresholdSign([]*KeyPackage{packages[0], packages[1]}, []byte("original"), config)
	require.NoError(t, err)

	ok, err := Verify(sig, []byte("tampered"), groupPublicKey)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestBackupSplitAndRecover covers scenario S4: an existing Ed25519 key
// can be split into shares and Recover reconstructs the exact same
// scalar, which then signs and verifies identically to GenerateKeys'
// output.
func TestBackupSplitAndRecover(t *testing.T) {
	config := testConfig(t, 2, 3)

	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	priv := ed25519.NewKeyFromSeed(seed)

	groupPublicKey, packages, err := Split(priv, config)
	require.NoError(t, err)
	require.Len(t, packages, 3)

	recovered, err := Recover([]*KeyShare{packages[0].Share, packages[1].Share}, config)
	require.NoError(t, err)
	defer recovered.Zeroize()

	require.True(t, ScalarBaseMul(recovered).Equal(groupPublicKey))

	message := []byte("recovered key signs like any other")
	sig, err := ThresholdSign([]*KeyPackage{packages[0], packages[1]}, message, config)
	require.NoError(t, err)

	ok, err := Verify(sig, message, groupPublicKey)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestBackupSplit_PrivateKeyMatchesStdlibPublicKey covers scenario S3's
// WebCrypto-parity property: splitting an ed25519.PrivateKey must yield
// the exact same group public key the standard library derives from
// that key's seed.
func TestBackupSplit_PrivateKeyMatchesStdlibPublicKey(t *testing.T) {
	config := testConfig(t, 2, 3)

	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 7)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	groupPublicKey, _, err := Split(priv, config)
	require.NoError(t, err)
	require.Equal(t, []byte(pub), groupPublicKey.Bytes())
}

// TestBackupSplit_RawClampedScalarMatchesStdlibPublicKey covers scenario
// S3 directly: derive the clamped Ed25519 scalar by hand exactly as RFC
// 8032 does, call Split on those 32 raw scalar bytes, and require the
// resulting PK equals the standard library's public key byte-for-byte.
// Split must use a 32-byte []byte directly as sk, not re-hash it.
func TestBackupSplit_RawClampedScalarMatchesStdlibPublicKey(t *testing.T) {
	config := testConfig(t, 2, 3)

	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 11)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	h := sha512.Sum512(seed)
	clamped := append([]byte{}, h[:32]...)
	clamped[0] &= 248
	clamped[31] &= 127
	clamped[31] |= 64

	groupPublicKey, _, err := Split(clamped, config)
	require.NoError(t, err)
	require.Equal(t, []byte(pub), groupPublicKey.Bytes())
}

// TestRecover_InsufficientSharesFails checks that fewer than MinSigners
// shares must not reconstruct anything.
func TestRecover_InsufficientSharesFails(t *testing.T) {
	config := testConfig(t, 3, 5)
	_, packages, err := GenerateKeys(config)
	require.NoError(t, err)

	_, err = Recover([]*KeyShare{packages[0].Share, packages[1].Share}, config)
	require.ErrorIs(t, err, ErrInsufficientShares)
}

// TestCoordinator_BelowThresholdSignersFails covers scenario S2: the
// coordinator refuses to build a signing package for fewer than
// MinSigners participants.
func TestCoordinator_BelowThresholdSignersFails(t *testing.T) {
	config := testConfig(t, 3, 5)
	groupPublicKey, packages, err := GenerateKeys(config)
	require.NoError(t, err)

	coordinator := NewCoordinator(config, groupPublicKey, nil, []byte("msg"))

	signer1 := NewSigner(packages[0])
	signer2 := NewSigner(packages[1])
	_, nc1, err := signer1.Round1()
	require.NoError(t, err)
	_, nc2, err := signer2.Round1()
	require.NoError(t, err)

	commitments := []*Commitment{
		{ID: packages[0].ID, Hiding: nc1.Hiding, Binding: nc1.Binding},
		{ID: packages[1].ID, Hiding: nc2.Hiding, Binding: nc2.Binding},
	}
	_, err = coordinator.CreateSigningPackage([]ID{packages[0].ID, packages[1].ID}, commitments)
	require.ErrorIs(t, err, ErrInsufficientSigners)
	require.Equal(t, StateFailed, coordinator.State())
}

// TestVerify_LowOrderRFails covers the canonicality property's low-order-R
// case: a signature whose R is a low-order torsion point (the
// identity is the degenerate case, order 1) must never verify, even if
// z were chosen to satisfy the verification equation.
func TestVerify_LowOrderRFails(t *testing.T) {
	config := testConfig(t, 2, 3)
	groupPublicKey, _, err := GenerateKeys(config)
	require.NoError(t, err)

	sig := &Signature{R: IdentityElement(), Z: scalarZero()}
	ok, err := Verify(sig, []byte("msg"), groupPublicKey)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestSign_ConvenienceFacade covers the Sign convenience described in
// spec.md §4.7: given a scalar recovered from shares, Sign re-splits it
// internally and produces a signature that verifies against the same
// group public key Recover reconstructed.
func TestSign_ConvenienceFacade(t *testing.T) {
	config := testConfig(t, 2, 3)
	groupPublicKey, packages, err := GenerateKeys(config)
	require.NoError(t, err)

	recovered, err := Recover([]*KeyShare{packages[0].Share, packages[1].Share}, config)
	require.NoError(t, err)
	defer recovered.Zeroize()

	message := []byte("signed via the recovered-scalar convenience path")
	sig, err := Sign(recovered, message, config)
	require.NoError(t, err)

	ok, err := Verify(sig, message, groupPublicKey)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCreateConfig_RejectsBadThresholds(t *testing.T) {
	_, err := CreateConfig(0, 3)
	require.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = CreateConfig(4, 3)
	require.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestNonces_SecondRound2Fails(t *testing.T) {
	config := testConfig(t, 2, 3)
	groupPublicKey, packages, err := GenerateKeys(config)
	require.NoError(t, err)

	signerPublics := map[ID]*Element{
		packages[0].ID: packages[0].Share.Public,
		packages[1].ID: packages[1].Share.Public,
	}

	signer1 := NewSigner(packages[0])
	signer2 := NewSigner(packages[1])
	nonces1, nc1, err := signer1.Round1()
	require.NoError(t, err)
	_, nc2, err := signer2.Round1()
	require.NoError(t, err)

	ids := []ID{packages[0].ID, packages[1].ID}
	commitments := []*Commitment{
		{ID: packages[0].ID, Hiding: nc1.Hiding, Binding: nc1.Binding},
		{ID: packages[1].ID, Hiding: nc2.Hiding, Binding: nc2.Binding},
	}

	coordinator := NewCoordinator(config, groupPublicKey, signerPublics, []byte("msg"))
	pkg, err := coordinator.CreateSigningPackage(ids, commitments)
	require.NoError(t, err)

	_, err = signer1.Round2(pkg, nonces1)
	require.NoError(t, err)

	_, err = signer1.Round2(pkg, nonces1)
	require.ErrorIs(t, err, ErrNoncesConsumed)
}
