package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/worklock-chain/worklock/testutil/keeper"
	"github.com/worklock-chain/worklock/x/escrow/types"
)

func TestRecoveryClientLifecycle(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	newClient := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)

	guardian := newAddr()
	require.NoError(t, k.GrantRole(ctx, k.GetAuthority(), guardian, types.RoleGuardian))

	initMsg := types.NewMsgInitiateRecovery(
		guardian.String(), types.ESCROW_TYPE_FIXED_PRICE, contractID, 0,
		client.String(), newClient.String(), types.ACCOUNT_TYPE_CLIENT,
	)

	// guardian role required
	_, _, err := k.InitiateRecovery(ctx, newAddr(), initMsg)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// the old account must own the targeted side
	badMsg := *initMsg
	badMsg.OldAccount = newAddr().String()
	_, _, err = k.InitiateRecovery(ctx, guardian, &badMsg)
	require.ErrorIs(t, err, types.ErrOwnershipMismatch)

	hashHex, unlockAt, err := k.InitiateRecovery(ctx, guardian, initMsg)
	require.NoError(t, err)
	require.Equal(t, ctx.BlockTime().Unix()+types.DefaultParams().RecoveryPeriodSeconds, unlockAt)
	require.Len(t, hashHex, 64)

	execMsg := types.NewMsgExecuteRecovery(
		types.ESCROW_TYPE_FIXED_PRICE, contractID, 0,
		client.String(), newClient.String(), types.ACCOUNT_TYPE_CLIENT,
	)

	// locked until the timelock elapses
	err = k.ExecuteRecovery(ctx, newClient, execMsg)
	require.ErrorIs(t, err, types.ErrRecoveryLocked)

	unlocked := ctx.WithBlockTime(time.Unix(unlockAt, 0))

	// only the new account may execute
	err = k.ExecuteRecovery(unlocked, client, execMsg)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, k.ExecuteRecovery(unlocked, newClient, execMsg))

	contract, err := k.GetContract(unlocked, types.ESCROW_TYPE_FIXED_PRICE, contractID)
	require.NoError(t, err)
	require.Equal(t, newClient.String(), contract.Client)

	// exactly once
	err = k.ExecuteRecovery(unlocked, newClient, execMsg)
	require.ErrorIs(t, err, types.ErrRecoveryExecuted)

	// a spent hash cannot be re-initiated either
	_, _, err = k.InitiateRecovery(unlocked, guardian, initMsg)
	require.ErrorIs(t, err, types.ErrRecoveryExecuted)
}

func TestRecoveryCancelBlocksExecution(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	newContractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)

	guardian := newAddr()
	require.NoError(t, k.GrantRole(ctx, k.GetAuthority(), guardian, types.RoleGuardian))

	initMsg := types.NewMsgInitiateRecovery(
		guardian.String(), types.ESCROW_TYPE_FIXED_PRICE, contractID, 0,
		contractor.String(), newContractor.String(), types.ACCOUNT_TYPE_CONTRACTOR,
	)
	hashHex, unlockAt, err := k.InitiateRecovery(ctx, guardian, initMsg)
	require.NoError(t, err)

	// only the account being recovered may cancel
	err = k.CancelRecovery(ctx, newContractor, hashHex)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, k.CancelRecovery(ctx, contractor, hashHex))

	// a canceled recovery never executes, even after the unlock time
	unlocked := ctx.WithBlockTime(time.Unix(unlockAt, 0))
	execMsg := types.NewMsgExecuteRecovery(
		types.ESCROW_TYPE_FIXED_PRICE, contractID, 0,
		contractor.String(), newContractor.String(), types.ACCOUNT_TYPE_CONTRACTOR,
	)
	err = k.ExecuteRecovery(unlocked, newContractor, execMsg)
	require.ErrorIs(t, err, types.ErrRecoveryExecuted)

	// cancel is also one-shot
	err = k.CancelRecovery(ctx, contractor, hashHex)
	require.ErrorIs(t, err, types.ErrRecoveryExecuted)

	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, contractor.String(), unit.Contractor)
}

func TestRecoveryContractorTransfersAllUnits(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	newContractor := newAddr()
	fundAccount(t, k, ctx, client, 5000)

	// hourly contract with two weekly bills held by the same contractor
	contractID := depositHourly(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)
	msg := &types.MsgDeposit{
		Depositor:  client.String(),
		EscrowType: types.ESCROW_TYPE_HOURLY,
		ContractId: contractID,
		Denom:      testDenom,
		FeeConfig:  types.FEE_CONFIG_NO_FEES,
		Amount:     math.NewInt(500),
		Contractor: contractor.String(),
	}
	_, subID, _, err := k.Deposit(ctx, client, msg)
	require.NoError(t, err)
	require.EqualValues(t, 1, subID)

	guardian := newAddr()
	require.NoError(t, k.GrantRole(ctx, k.GetAuthority(), guardian, types.RoleGuardian))

	initMsg := types.NewMsgInitiateRecovery(
		guardian.String(), types.ESCROW_TYPE_HOURLY, contractID, 0,
		contractor.String(), newContractor.String(), types.ACCOUNT_TYPE_CONTRACTOR,
	)
	_, unlockAt, err := k.InitiateRecovery(ctx, guardian, initMsg)
	require.NoError(t, err)

	unlocked := ctx.WithBlockTime(time.Unix(unlockAt, 0))
	execMsg := types.NewMsgExecuteRecovery(
		types.ESCROW_TYPE_HOURLY, contractID, 0,
		contractor.String(), newContractor.String(), types.ACCOUNT_TYPE_CONTRACTOR,
	)
	require.NoError(t, k.ExecuteRecovery(unlocked, newContractor, execMsg))

	for subID := uint64(0); subID < 2; subID++ {
		unit, err := k.GetUnit(unlocked, types.ESCROW_TYPE_HOURLY, contractID, subID)
		require.NoError(t, err)
		require.Equal(t, newContractor.String(), unit.Contractor)
	}
}
