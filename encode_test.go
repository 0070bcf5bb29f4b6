package frost

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLagrangeInterpolationReconstructsSecret checks the Lagrange
// coefficients used in signing are the same ones that satisfy Shamir
// reconstruction: Σ λ_i · f(i) == f(0) for any valid subset.
func TestLagrangeInterpolationReconstructsSecret(t *testing.T) {
	secret, err := RandomScalar()
	require.NoError(t, err)

	poly, err := newRandomPolynomial(1, secret)
	require.NoError(t, err)

	ids := []ID{1, 2, 3}
	shares := make(map[ID]*Scalar, len(ids))
	for _, id := range ids {
		x, err := idToScalar(id)
		require.NoError(t, err)
		shares[id] = poly.evaluate(x)
	}

	quorum := []ID{1, 3}
	reconstructed := scalarZero()
	for _, id := range quorum {
		lambda, err := lagrangeCoefficient(id, quorum)
		require.NoError(t, err)
		reconstructed = reconstructed.Add(shares[id].Mul(lambda))
	}

	require.True(t, reconstructed.Equal(secret))
}

func TestLagrangeCoefficientRejectsDuplicateIDs(t *testing.T) {
	_, err := lagrangeCoefficient(ID(1), []ID{1, 1, 2})
	require.Error(t, err)
}

func TestBindingFactorsAreDistinctPerSigner(t *testing.T) {
	groupSecret, err := RandomScalar()
	require.NoError(t, err)
	groupPublicKey := ScalarBaseMul(groupSecret)

	commitments := make([]*Commitment, 0, 3)
	for i := ID(1); i <= 3; i++ {
		_, nc, err := generateNonces()
		require.NoError(t, err)
		commitments = append(commitments, &Commitment{ID: i, Hiding: nc.Hiding, Binding: nc.Binding})
	}

	factors, err := bindingFactors(commitments, groupPublicKey, []byte("msg"))
	require.NoError(t, err)
	require.Len(t, factors, 3)
	require.False(t, factors[1].Equal(factors[2]))
	require.False(t, factors[2].Equal(factors[3]))
}

func TestEncodeCommitmentListChangesWithCommitment(t *testing.T) {
	_, nc1, err := generateNonces()
	require.NoError(t, err)
	_, nc2, err := generateNonces()
	require.NoError(t, err)

	list1 := []*Commitment{{ID: 1, Hiding: nc1.Hiding, Binding: nc1.Binding}}
	list2 := []*Commitment{{ID: 1, Hiding: nc2.Hiding, Binding: nc2.Binding}}

	require.NotEqual(t, encodeCommitmentList(list1), encodeCommitmentList(list2))
}
