package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// RequestReturn asks for a sub-unit's remaining funds back. Client only, from
// ACTIVE or SUBMITTED; the previous status is memoized so a cancellation can
// restore it.
func (k Keeper) RequestReturn(ctx context.Context, client sdk.AccAddress, escrowType types.EscrowType, contractID, subID uint64) error {
	contract, err := k.GetContract(ctx, escrowType, contractID)
	if err != nil {
		return err
	}
	if contract.Client != client.String() {
		return types.ErrUnauthorized.Wrapf("%s is not the contract client", client)
	}
	unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
	if err != nil {
		return err
	}
	if unit.Status != types.STATUS_ACTIVE && unit.Status != types.STATUS_SUBMITTED {
		return types.ErrInvalidStatus.Wrapf("cannot request a return from %s", unit.Status)
	}

	unit.PrevStatus = unit.Status
	unit.Status = types.STATUS_RETURN_REQUESTED
	if err := k.SetUnit(ctx, unit); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeReturnRequested,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyClient, client.String()),
			sdk.NewAttribute(types.AttributeKeyPrevStatus, unit.PrevStatus.String()),
		),
	)
	return nil
}

// ApproveReturn accepts a pending return request, earmarking the whole
// remaining principal for withdrawal. Sent by the unit contractor or an
// admin. A unit on which no work was ever submitted closes straight to
// CANCELED; otherwise it parks in REFUND_APPROVED until the client withdraws.
func (k Keeper) ApproveReturn(ctx context.Context, approver sdk.AccAddress, escrowType types.EscrowType, contractID, subID uint64) (math.Int, error) {
	unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
	if err != nil {
		return math.Int{}, err
	}
	if unit.Status != types.STATUS_RETURN_REQUESTED {
		return math.Int{}, types.ErrInvalidStatus.Wrapf("cannot approve a return from %s", unit.Status)
	}
	if unit.Contractor != approver.String() && !k.IsAdmin(ctx, approver) {
		return math.Int{}, types.ErrUnauthorized.Wrapf("%s is neither the unit contractor nor an admin", approver)
	}

	unit.AmountToWithdraw = unit.Amount
	if unit.PrevStatus == types.STATUS_ACTIVE {
		unit.Status = types.STATUS_CANCELED
	} else {
		unit.Status = types.STATUS_REFUND_APPROVED
	}
	if err := k.SetUnit(ctx, unit); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeReturnApproved,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, unit.AmountToWithdraw.String()),
			sdk.NewAttribute(types.AttributeKeyStatus, unit.Status.String()),
		),
	)
	return unit.AmountToWithdraw, nil
}

// CancelReturn withdraws a pending return request, restoring the memoized
// previous status. Client only.
func (k Keeper) CancelReturn(ctx context.Context, client sdk.AccAddress, escrowType types.EscrowType, contractID, subID uint64) error {
	contract, err := k.GetContract(ctx, escrowType, contractID)
	if err != nil {
		return err
	}
	if contract.Client != client.String() {
		return types.ErrUnauthorized.Wrapf("%s is not the contract client", client)
	}
	unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
	if err != nil {
		return err
	}
	if unit.Status != types.STATUS_RETURN_REQUESTED {
		return types.ErrInvalidStatus.Wrapf("cannot cancel a return from %s", unit.Status)
	}

	restored := unit.PrevStatus
	unit.Status = restored
	unit.PrevStatus = types.STATUS_NONE
	if err := k.SetUnit(ctx, unit); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeReturnCanceled,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyStatus, restored.String()),
		),
	)
	return nil
}
