package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

func TestDepositCommitmentHashSensitivity(t *testing.T) {
	depositor := testAddr()
	milestones := []types.MilestoneInput{
		{Contractor: testAddr(), Amount: math.NewInt(100), ContractorData: []byte("spec")},
	}

	base := func() []byte {
		return types.DepositCommitmentHash(
			types.ESCROW_TYPE_MILESTONE, 7, depositor, "uwork",
			types.FEE_CONFIG_CLIENT_COVERS_ALL, "0", milestones, 1700000600,
		)
	}

	require.Equal(t, base(), base(), "hash must be deterministic")
	require.Len(t, base(), 32)

	variants := [][]byte{
		types.DepositCommitmentHash(types.ESCROW_TYPE_FIXED_PRICE, 7, depositor, "uwork", types.FEE_CONFIG_CLIENT_COVERS_ALL, "0", milestones, 1700000600),
		types.DepositCommitmentHash(types.ESCROW_TYPE_MILESTONE, 8, depositor, "uwork", types.FEE_CONFIG_CLIENT_COVERS_ALL, "0", milestones, 1700000600),
		types.DepositCommitmentHash(types.ESCROW_TYPE_MILESTONE, 7, testAddr(), "uwork", types.FEE_CONFIG_CLIENT_COVERS_ALL, "0", milestones, 1700000600),
		types.DepositCommitmentHash(types.ESCROW_TYPE_MILESTONE, 7, depositor, "uatom", types.FEE_CONFIG_CLIENT_COVERS_ALL, "0", milestones, 1700000600),
		types.DepositCommitmentHash(types.ESCROW_TYPE_MILESTONE, 7, depositor, "uwork", types.FEE_CONFIG_NO_FEES, "0", milestones, 1700000600),
		types.DepositCommitmentHash(types.ESCROW_TYPE_MILESTONE, 7, depositor, "uwork", types.FEE_CONFIG_CLIENT_COVERS_ALL, "1", milestones, 1700000600),
		types.DepositCommitmentHash(types.ESCROW_TYPE_MILESTONE, 7, depositor, "uwork", types.FEE_CONFIG_CLIENT_COVERS_ALL, "0", nil, 1700000600),
		types.DepositCommitmentHash(types.ESCROW_TYPE_MILESTONE, 7, depositor, "uwork", types.FEE_CONFIG_CLIENT_COVERS_ALL, "0", milestones, 1700000601),
	}
	for i, variant := range variants {
		require.NotEqual(t, base(), variant, "variant %d must change the digest", i)
	}
}

func TestComputeSubmissionHash(t *testing.T) {
	h1 := types.ComputeSubmissionHash([]byte("work"), []byte("salt"))
	h2 := types.ComputeSubmissionHash([]byte("work"), []byte("salt"))
	require.Equal(t, h1, h2)
	require.Len(t, h1, 32)

	require.NotEqual(t, h1, types.ComputeSubmissionHash([]byte("work"), []byte("other")))
	require.NotEqual(t, h1, types.ComputeSubmissionHash([]byte("other"), []byte("salt")))
}

func TestRecoveryHashDeterminism(t *testing.T) {
	old, next := testAddr(), testAddr()
	h1 := types.RecoveryHash(types.ESCROW_TYPE_HOURLY, 3, 1, old, next, types.ACCOUNT_TYPE_CONTRACTOR)
	h2 := types.RecoveryHash(types.ESCROW_TYPE_HOURLY, 3, 1, old, next, types.ACCOUNT_TYPE_CONTRACTOR)
	require.Equal(t, h1, h2)
	require.Len(t, h1, 32)

	require.NotEqual(t, h1, types.RecoveryHash(types.ESCROW_TYPE_HOURLY, 3, 2, old, next, types.ACCOUNT_TYPE_CONTRACTOR))
	require.NotEqual(t, h1, types.RecoveryHash(types.ESCROW_TYPE_HOURLY, 3, 1, old, next, types.ACCOUNT_TYPE_CLIENT))
	require.NotEqual(t, h1, types.RecoveryHash(types.ESCROW_TYPE_HOURLY, 3, 1, next, old, types.ACCOUNT_TYPE_CONTRACTOR))
}
