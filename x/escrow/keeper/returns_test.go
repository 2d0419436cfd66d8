package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/worklock-chain/worklock/testutil/keeper"
	"github.com/worklock-chain/worklock/x/escrow/types"
)

func TestRequestReturnMemoizesStatus(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)
	require.NoError(t, k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, []byte("w"), []byte("s")))

	// client only
	err := k.RequestReturn(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, k.RequestReturn(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0))
	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, types.STATUS_RETURN_REQUESTED, unit.Status)
	require.Equal(t, types.STATUS_SUBMITTED, unit.PrevStatus)

	// no double request
	err = k.RequestReturn(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.ErrorIs(t, err, types.ErrInvalidStatus)
}

func TestCancelReturnRestoresStatus(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)
	require.NoError(t, k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, []byte("w"), []byte("s")))
	require.NoError(t, k.RequestReturn(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0))

	require.NoError(t, k.CancelReturn(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0))
	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, types.STATUS_SUBMITTED, unit.Status)
	require.Equal(t, types.STATUS_NONE, unit.PrevStatus)
}

func TestApproveReturnFromActiveCancels(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)
	require.NoError(t, k.RequestReturn(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0))

	// client cannot accept their own return request
	_, err := k.ApproveReturn(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	withdrawable, err := k.ApproveReturn(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), withdrawable)

	// no work was ever submitted: the unit closes outright
	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, types.STATUS_CANCELED, unit.Status)
}

func TestApproveReturnAfterSubmission(t *testing.T) {
	k, ctx := keepertest.EscrowKeeper(t)
	client := newAddr()
	contractor := newAddr()
	fundAccount(t, k, ctx, client, 2000)

	contractID := depositFixedPrice(t, k, ctx, client, contractor, 1000, types.FEE_CONFIG_NO_FEES)
	require.NoError(t, k.Submit(ctx, contractor, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0, []byte("w"), []byte("s")))
	require.NoError(t, k.RequestReturn(ctx, client, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0))

	// an admin may accept on the contractor's behalf
	admin, _ := setupAdmin(t, k, ctx)
	_, err := k.ApproveReturn(ctx, admin, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)

	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contractID, 0)
	require.NoError(t, err)
	require.Equal(t, types.STATUS_REFUND_APPROVED, unit.Status)
	require.Equal(t, math.NewInt(1000), unit.AmountToWithdraw)
}
