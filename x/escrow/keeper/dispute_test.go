package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/worklock-chain/worklock/testutil/keeper"
	"github.com/worklock-chain/worklock/x/escrow/types"
)

func TestCreateDispute(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)

	// cannot dispute an ACTIVE unit
	err := k.CreateDispute(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.ErrorIs(t, err, types.ErrInvalidStatus)

	require.NoError(t, k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, []byte("w"), []byte("s")))

	// outsiders cannot dispute
	err = k.CreateDispute(ctx, newAddr(), types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// the contractor can escalate a contested submission
	require.NoError(t, k.CreateDispute(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0))
	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, types.STATUS_DISPUTED, unit.Status)
	require.Equal(t, types.STATUS_SUBMITTED, unit.PrevStatus)
}

func TestCreateDisputeFromReturnRequested(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)
	require.NoError(t, k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, []byte("w"), []byte("s")))
	require.NoError(t, k.RequestReturn(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0))

	require.NoError(t, k.CreateDispute(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0))
}

func TestResolveDisputeSplit(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)
	admin, _ := setupAdmin(t, k, ctx)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)
	require.NoError(t, k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, []byte("w"), []byte("s")))
	require.NoError(t, k.CreateDispute(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0))

	// admin role required
	err := k.ResolveDispute(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, contractor.String(), math.NewInt(400), math.NewInt(600))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// the split cannot exceed the principal
	err = k.ResolveDispute(ctx, admin, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, contractor.String(), math.NewInt(500), math.NewInt(501))
	require.ErrorIs(t, err, types.ErrAmountExceedsPrincipal)

	require.NoError(t, k.ResolveDispute(ctx, admin, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, contractor.String(), math.NewInt(400), math.NewInt(600)))

	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, types.STATUS_RESOLVED, unit.Status)
	require.Equal(t, math.NewInt(400), unit.AmountToWithdraw)
	require.Equal(t, math.NewInt(600), unit.AmountToClaim)
	require.Equal(t, contractor.String(), unit.Winner)

	// cannot resolve twice
	err = k.ResolveDispute(ctx, admin, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, contractor.String(), math.NewInt(400), math.NewInt(600))
	require.ErrorIs(t, err, types.ErrInvalidStatus)

	// both sides collect their share
	net, _, err := k.Claim(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), net)

	withdrawn, _, err := k.Withdraw(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400), withdrawn)

	require.True(t, balanceOf(k, ctx, k.GetModuleAddress()).IsZero())
}

func TestResolveDisputeUnderSplitReturnsResidue(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)
	admin, _ := setupAdmin(t, k, ctx)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)
	require.NoError(t, k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, []byte("w"), []byte("s")))
	require.NoError(t, k.CreateDispute(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0))

	// the split awards only 900 of the 1000 principal
	require.NoError(t, k.ResolveDispute(ctx, admin, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, contractor.String(), math.NewInt(300), math.NewInt(600)))

	// the 100 residue is folded into the client's withdrawable share
	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400), unit.AmountToWithdraw)
	require.Equal(t, math.NewInt(600), unit.AmountToClaim)
	require.True(t, unit.UnearmarkedAmount().IsZero())

	net, _, err := k.Claim(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), net)

	withdrawn, _, err := k.Withdraw(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400), withdrawn)

	// both sides settled: the unit is closed and the module holds nothing
	unit, err = k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, types.STATUS_CANCELED, unit.Status)
	require.Equal(t, math.NewInt(1400), balanceOf(k, ctx, client))
	require.Equal(t, math.NewInt(600), balanceOf(k, ctx, contractor))
	require.True(t, balanceOf(k, ctx, k.GetModuleAddress()).IsZero())
}
