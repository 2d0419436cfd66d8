package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// CreateDispute escalates a contested sub-unit to arbitration. Either party
// may raise it, but only from RETURN_REQUESTED or SUBMITTED; the previous
// status is memoized for the dispute record.
func (k Keeper) CreateDispute(ctx context.Context, party sdk.AccAddress, escrowType types.EscrowType, contractID, subID uint64) error {
	contract, err := k.GetContract(ctx, escrowType, contractID)
	if err != nil {
		return err
	}
	unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
	if err != nil {
		return err
	}
	if contract.Client != party.String() && unit.Contractor != party.String() {
		return types.ErrUnauthorized.Wrapf("%s is neither the client nor the unit contractor", party)
	}
	if unit.Status != types.STATUS_RETURN_REQUESTED && unit.Status != types.STATUS_SUBMITTED {
		return types.ErrInvalidStatus.Wrapf("cannot dispute from %s", unit.Status)
	}

	unit.PrevStatus = unit.Status
	unit.Status = types.STATUS_DISPUTED
	if err := k.SetUnit(ctx, unit); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDisputeCreated,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, party.String()),
			sdk.NewAttribute(types.AttributeKeyPrevStatus, unit.PrevStatus.String()),
		),
	)
	return nil
}

// ResolveDispute settles a disputed sub-unit with an admin-decided split.
// The contractor split becomes claimable; the client split, plus any
// principal the split leaves unawarded, becomes withdrawable. The two
// awards together must not exceed the remaining principal.
func (k Keeper) ResolveDispute(ctx context.Context, admin sdk.AccAddress, escrowType types.EscrowType, contractID, subID uint64, winner string, clientAmount, contractorAmount math.Int) error {
	if !k.IsAdmin(ctx, admin) {
		return types.ErrUnauthorized.Wrapf("%s lacks the admin role", admin)
	}
	unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
	if err != nil {
		return err
	}
	if unit.Status != types.STATUS_DISPUTED {
		return types.ErrInvalidStatus.Wrapf("cannot resolve from %s", unit.Status)
	}
	if clientAmount.Add(contractorAmount).GT(unit.Amount) {
		return types.ErrAmountExceedsPrincipal.Wrapf(
			"split %s+%s exceeds remaining principal %s",
			clientAmount, contractorAmount, unit.Amount,
		)
	}

	// unawarded principal goes back to the client; leaving it unearmarked
	// would strand it, since no operation can move a RESOLVED unit again
	residue := unit.Amount.Sub(clientAmount).Sub(contractorAmount)
	unit.AmountToWithdraw = clientAmount.Add(residue)
	unit.AmountToClaim = contractorAmount
	unit.Winner = winner
	unit.Status = types.STATUS_RESOLVED
	if err := k.SetUnit(ctx, unit); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDisputeResolved,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyWinner, winner),
			sdk.NewAttribute(types.AttributeKeyClientAmount, clientAmount.String()),
			sdk.NewAttribute(types.AttributeKeyContractorAmount, contractorAmount.String()),
		),
	)
	return nil
}
