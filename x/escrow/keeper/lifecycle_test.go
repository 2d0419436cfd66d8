package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/worklock-chain/worklock/testutil/keeper"
	"github.com/worklock-chain/worklock/x/escrow/types"
)

func TestSubmitRevealsCommitment(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)

	// seed a commitment the way a real deposit would carry it
	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	data := []byte("deliverable v1")
	salt := []byte("nonce-42")
	unit.ContractorData = types.ComputeSubmissionHash(data, salt)
	require.NoError(t, k.SetUnit(ctx, unit))

	// wrong reveal is rejected
	err = k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, []byte("other work"), salt)
	require.ErrorIs(t, err, types.ErrCommitmentMismatch)

	// wrong salt too
	err = k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, data, []byte("bad salt"))
	require.ErrorIs(t, err, types.ErrCommitmentMismatch)

	// correct reveal transitions to SUBMITTED
	require.NoError(t, k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, data, salt))
	unit, err = k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, types.STATUS_SUBMITTED, unit.Status)

	// no double submission
	err = k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, data, salt)
	require.ErrorIs(t, err, types.ErrInvalidStatus)
}

func TestSubmitBindsContractor(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	// open unit: no contractor assigned yet
	msg := &types.MsgDeposit{
		Depositor:  client.String(),
		EscrowType: types.ESCROW_TYPE_HOURLY,
		Denom:      testDenom,
		FeeConfig:  types.FEE_CONFIG_NO_FEES,
		Amount:     math.NewInt(1000),
	}
	contractID, _, _, err := k.Deposit(ctx, client, msg)
	require.NoError(t, err)

	require.NoError(t, k.Submit(ctx, contractor, types.ESCROW_TYPE_HOURLY, contractID, 0, []byte("timesheet"), []byte("s")))

	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_HOURLY, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, contractor.String(), unit.Contractor)
	// first submission bound the commitment
	require.Equal(t, types.ComputeSubmissionHash([]byte("timesheet"), []byte("s")), unit.ContractorData)
}

func TestSubmitWrongContractor(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)

	err := k.Submit(ctx, newAddr(), types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, []byte("w"), []byte("s"))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestApproveEarmarksAmount(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)

	// cannot approve before submission on a fixed-price unit
	_, err := k.Approve(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, math.NewInt(400), contractor.String())
	require.ErrorIs(t, err, types.ErrInvalidStatus)

	require.NoError(t, k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, []byte("w"), []byte("s")))

	// only the client or an admin approves
	_, err = k.Approve(ctx, newAddr(), types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, math.NewInt(400), contractor.String())
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// receiver must match the bound contractor
	_, err = k.Approve(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, math.NewInt(400), newAddr().String())
	require.ErrorIs(t, err, types.ErrUnauthorized)

	earmarked, err := k.Approve(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, math.NewInt(400), contractor.String())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400), earmarked)

	// a second approval accumulates
	earmarked, err = k.Approve(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, math.NewInt(300), contractor.String())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(700), earmarked)

	// cannot earmark beyond the remaining principal
	_, err = k.Approve(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, math.NewInt(301), contractor.String())
	require.ErrorIs(t, err, types.ErrAmountExceedsPrincipal)
}

func TestApproveHourlyFromActive(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositHourly(t, k, ctx, client, contractor, 500, types.FEE_CONFIG_NO_FEES)

	// weekly bills have no submission step
	earmarked, err := k.Approve(ctx, client, types.ESCROW_TYPE_HOURLY, contractID, 0, math.NewInt(500), contractor.String())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), earmarked)
}

func TestApproveHourlyDrawsFromPrepayment(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 5000)

	contractID := depositHourly(t, k, ctx, client, contractor, 500, types.FEE_CONFIG_NO_FEES)
	_, err := k.Refill(ctx, client, types.ESCROW_TYPE_HOURLY, contractID, 0, math.NewInt(1000), types.REFILL_TYPE_PREPAYMENT)
	require.NoError(t, err)

	// 800 > 500 principal: the 300 shortfall comes out of the prepayment pool
	earmarked, err := k.Approve(ctx, client, types.ESCROW_TYPE_HOURLY, contractID, 0, math.NewInt(800), contractor.String())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(800), earmarked)

	contract, err := k.GetContract(ctx, types.ESCROW_TYPE_HOURLY, contractID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(700), contract.PrepaymentBalance)

	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_HOURLY, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(800), unit.Amount)

	// prepayment cannot cover more than it holds
	_, err = k.Approve(ctx, client, types.ESCROW_TYPE_HOURLY, contractID, 0, math.NewInt(800), contractor.String())
	require.ErrorIs(t, err, types.ErrInsufficientPrepayment)
}
