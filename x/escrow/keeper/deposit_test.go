package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/worklock-chain/worklock/testutil/keeper"
	"github.com/worklock-chain/worklock/x/escrow/types"
)

func TestDepositFixedPriceCreatesContract(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_CLIENT_COVERS_ALL)
	require.EqualValues(t, 1, contractID)

	// client paid principal plus the 3%+5% prefund
	require.Equal(t, math.NewInt(2000-1080), balanceOf(k, ctx, client))
	require.Equal(t, math.NewInt(1080), balanceOf(k, ctx, k.GetModuleAddress()))

	contract, err := k.GetContract(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID)
	require.NoError(t, err)
	require.Equal(t, client.String(), contract.Client)
	require.Equal(t, testDenom, contract.Denom)

	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), unit.Amount)
	require.Equal(t, math.NewInt(80), unit.FeeBalance)
	require.Equal(t, types.STATUS_ACTIVE, unit.Status)
	require.Equal(t, contractor.String(), unit.Contractor)
}

func TestDepositRejectsUnknownDenom(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()

	msg := &types.MsgDeposit{
		Depositor:  client.String(),
		EscrowType: types.ESCROW_TYPE_HOURLY,
		Denom:      "shitcoin",
		FeeConfig:  types.FEE_CONFIG_NO_FEES,
		Amount:     math.NewInt(100),
		Contractor: newAddr().String(),
	}
	_, _, _, err := k.Deposit(ctx, client, msg)
	require.ErrorIs(t, err, types.ErrDenomNotAllowed)
}

func TestDepositRequiresAuthorization(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	msg := &types.MsgDeposit{
		Depositor:  client.String(),
		EscrowType: types.ESCROW_TYPE_FIXED_PRICE,
		Denom:      testDenom,
		FeeConfig:  types.FEE_CONFIG_NO_FEES,
		Amount:     math.NewInt(100),
		Contractor: newAddr().String(),
	}
	_, _, _, err := k.Deposit(ctx, client, msg)
	require.ErrorIs(t, err, types.ErrInvalidAuthorization)

	// hourly deposits need no co-signature
	msg.EscrowType = types.ESCROW_TYPE_HOURLY
	_, _, _, err = k.Deposit(ctx, client, msg)
	require.NoError(t, err)
}

func TestDepositAuthorizationChecks(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	fundAccount(t, k, ctx, client, 5000)
	admin, priv := setupAdmin(t, k, ctx)
	now := ctx.BlockTime().Unix()

	newMsg := func() *types.MsgDeposit {
		return &types.MsgDeposit{
			Depositor:  client.String(),
			EscrowType: types.ESCROW_TYPE_FIXED_PRICE,
			Denom:      testDenom,
			FeeConfig:  types.FEE_CONFIG_NO_FEES,
			Amount:     math.NewInt(100),
			Contractor: newAddr().String(),
		}
	}

	t.Run("expired", func(t *testing.T) {
		msg := newMsg()
		msg.Authorization = signDeposit(admin, priv, msg, now-1)
		_, _, _, err := k.Deposit(ctx, client, msg)
		require.ErrorIs(t, err, types.ErrAuthorizationExpired)
	})

	t.Run("expiration beyond max ttl", func(t *testing.T) {
		msg := newMsg()
		ttl := types.DefaultParams().MaxAuthorizationTTLSeconds
		msg.Authorization = signDeposit(admin, priv, msg, now+ttl+60)
		_, _, _, err := k.Deposit(ctx, client, msg)
		require.ErrorIs(t, err, types.ErrInvalidAuthorization)
	})

	t.Run("signer without admin role", func(t *testing.T) {
		msg := newMsg()
		msg.Authorization = signDeposit(admin, priv, msg, now+600)
		msg.Authorization.Signer = newAddr().String()
		_, _, _, err := k.Deposit(ctx, client, msg)
		require.ErrorIs(t, err, types.ErrUnauthorized)
	})

	t.Run("signature over different terms", func(t *testing.T) {
		msg := newMsg()
		msg.Authorization = signDeposit(admin, priv, msg, now+600)
		msg.Amount = math.NewInt(999) // terms changed after signing
		_, _, _, err := k.Deposit(ctx, client, msg)
		require.ErrorIs(t, err, types.ErrInvalidAuthorization)
	})

	t.Run("valid", func(t *testing.T) {
		msg := newMsg()
		msg.Authorization = signDeposit(admin, priv, msg, now+600)
		_, _, _, err := k.Deposit(ctx, client, msg)
		require.NoError(t, err)
	})
}

func TestDepositMilestoneBatch(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	fundAccount(t, k, ctx, client, 10000)
	admin, priv := setupAdmin(t, k, ctx)
	c1, c2 := newAddr(), newAddr()

	msg := &types.MsgDeposit{
		Depositor:  client.String(),
		EscrowType: types.ESCROW_TYPE_MILESTONE,
		Denom:      testDenom,
		FeeConfig:  types.FEE_CONFIG_CLIENT_COVERS_ALL,
		Milestones: []types.MilestoneInput{
			{Contractor: c1.String(), Amount: math.NewInt(1000)},
			{Contractor: c2.String(), Amount: math.NewInt(2000)},
		},
	}
	msg.Authorization = signDeposit(admin, priv, msg, ctx.BlockTime().Unix()+600)

	contractID, firstSubID, fee, err := k.Deposit(ctx, client, msg)
	require.NoError(t, err)
	require.EqualValues(t, 0, firstSubID)
	require.Equal(t, math.NewInt(80+160), fee)

	unit0, err := k.GetUnit(ctx, types.ESCROW_TYPE_MILESTONE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, c1.String(), unit0.Contractor)
	require.Equal(t, math.NewInt(1000), unit0.Amount)

	unit1, err := k.GetUnit(ctx, types.ESCROW_TYPE_MILESTONE, contractID, 1)
	require.NoError(t, err)
	require.Equal(t, c2.String(), unit1.Contractor)
	require.Equal(t, math.NewInt(2000), unit1.Amount)

	// module holds both principals plus both prefunds
	require.Equal(t, math.NewInt(3240), balanceOf(k, ctx, k.GetModuleAddress()))
}

func TestDepositMilestoneBatchLimit(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	fundAccount(t, k, ctx, client, 100000)
	admin, priv := setupAdmin(t, k, ctx)

	var milestones []types.MilestoneInput
	for i := uint32(0); i <= types.DefaultParams().MaxMilestonesPerTx; i++ {
		milestones = append(milestones, types.MilestoneInput{Contractor: newAddr().String(), Amount: math.NewInt(10)})
	}
	msg := &types.MsgDeposit{
		Depositor:  client.String(),
		EscrowType: types.ESCROW_TYPE_MILESTONE,
		Denom:      testDenom,
		FeeConfig:  types.FEE_CONFIG_NO_FEES,
		Milestones: milestones,
	}
	msg.Authorization = signDeposit(admin, priv, msg, ctx.BlockTime().Unix()+600)

	_, _, _, err := k.Deposit(ctx, client, msg)
	require.ErrorIs(t, err, types.ErrBatchLimitExceeded)
}

func TestDepositFixedPriceTopUp(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 5000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_CLIENT_COVERS_ALL)

	admin, priv := setupAdmin(t, k, ctx)
	msg := &types.MsgDeposit{
		Depositor:  client.String(),
		EscrowType: types.ESCROW_TYPE_FIXED_PRICE,
		ContractId: contractID,
		Denom:      testDenom,
		FeeConfig:  types.FEE_CONFIG_CLIENT_COVERS_ALL,
		Amount:     math.NewInt(500),
	}
	msg.Authorization = signDeposit(admin, priv, msg, ctx.BlockTime().Unix()+600)

	gotID, subID, fee, err := k.Deposit(ctx, client, msg)
	require.NoError(t, err)
	require.Equal(t, contractID, gotID)
	require.EqualValues(t, 0, subID)
	require.Equal(t, math.NewInt(40), fee)

	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1500), unit.Amount)
	require.Equal(t, math.NewInt(120), unit.FeeBalance)

	// only the client may top up
	stranger := newAddr()
	fundAccount(t, k, ctx, stranger, 1000)
	msg2 := &types.MsgDeposit{
		Depositor:  stranger.String(),
		EscrowType: types.ESCROW_TYPE_FIXED_PRICE,
		ContractId: contractID,
		Denom:      testDenom,
		FeeConfig:  types.FEE_CONFIG_CLIENT_COVERS_ALL,
		Amount:     math.NewInt(100),
	}
	msg2.Authorization = signDeposit(admin, priv, msg2, ctx.BlockTime().Unix()+600)
	_, _, _, err = k.Deposit(ctx, stranger, msg2)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestDepositContractorCoversClaimPrefundsNothing(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositHourly(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_CONTRACTOR_COVERS_CLAIM)

	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_HOURLY, contractID, 0)
	require.NoError(t, err)
	require.True(t, unit.FeeBalance.IsZero())
	require.Equal(t, math.NewInt(1000), balanceOf(k, ctx, k.GetModuleAddress()))
}
