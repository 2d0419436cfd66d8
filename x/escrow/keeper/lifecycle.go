package keeper

import (
	"bytes"
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// Submit reveals the work delivery for a sub-unit. The revealed
// sha256(data||salt) must match the commitment stored at deposit time; if no
// commitment was bound yet, the first submission binds it. A successful
// submission by an unassigned unit's first submitter also binds the
// contractor identity.
func (k Keeper) Submit(ctx context.Context, contractor sdk.AccAddress, escrowType types.EscrowType, contractID, subID uint64, data, salt []byte) error {
	unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
	if err != nil {
		return err
	}
	if unit.Status != types.STATUS_ACTIVE {
		return types.ErrInvalidStatus.Wrapf("cannot submit from %s", unit.Status)
	}
	if unit.Contractor != "" && unit.Contractor != contractor.String() {
		return types.ErrUnauthorized.Wrapf("%s is not the unit contractor", contractor)
	}

	hash := types.ComputeSubmissionHash(data, salt)
	if len(unit.ContractorData) == 0 {
		unit.ContractorData = hash
	} else if !bytes.Equal(hash, unit.ContractorData) {
		return types.ErrCommitmentMismatch.Wrap("revealed data and salt do not hash to the stored commitment")
	}

	unit.Contractor = contractor.String()
	unit.Status = types.STATUS_SUBMITTED
	if err := k.SetUnit(ctx, unit); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmitted,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyContractor, unit.Contractor),
		),
	)
	return nil
}

// Approve earmarks part of a sub-unit's principal for the contractor to
// claim. Sent by the client or an admin. Hourly units may be approved
// straight from ACTIVE (weekly bills have no submission step), and an hourly
// shortfall is drawn from the contract's prepayment pool before bounding.
func (k Keeper) Approve(ctx context.Context, approver sdk.AccAddress, escrowType types.EscrowType, contractID, subID uint64, amount math.Int, receiver string) (math.Int, error) {
	contract, err := k.GetContract(ctx, escrowType, contractID)
	if err != nil {
		return math.Int{}, err
	}
	if contract.Client != approver.String() && !k.IsAdmin(ctx, approver) {
		return math.Int{}, types.ErrUnauthorized.Wrapf("%s is neither the client nor an admin", approver)
	}

	unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
	if err != nil {
		return math.Int{}, err
	}

	switch unit.Status {
	case types.STATUS_SUBMITTED, types.STATUS_APPROVED:
	case types.STATUS_ACTIVE:
		if escrowType != types.ESCROW_TYPE_HOURLY {
			return math.Int{}, types.ErrInvalidStatus.Wrapf("cannot approve a %s %s unit", unit.Status, escrowType)
		}
	default:
		return math.Int{}, types.ErrInvalidStatus.Wrapf("cannot approve from %s", unit.Status)
	}

	if unit.Contractor == "" {
		unit.Contractor = receiver
	} else if unit.Contractor != receiver {
		return math.Int{}, types.ErrUnauthorized.Wrapf("receiver %s is not the unit contractor", receiver)
	}

	available := unit.UnearmarkedAmount()
	if escrowType == types.ESCROW_TYPE_HOURLY && amount.GT(available) {
		shortfall := amount.Sub(available)
		if shortfall.GT(contract.PrepaymentBalance) {
			return math.Int{}, types.ErrInsufficientPrepayment.Wrapf("need %s more, prepayment holds %s", shortfall, contract.PrepaymentBalance)
		}
		contract.PrepaymentBalance = contract.PrepaymentBalance.Sub(shortfall)
		unit.Amount = unit.Amount.Add(shortfall)
		available = unit.UnearmarkedAmount()
		if err := k.SetContract(ctx, contract); err != nil {
			return math.Int{}, err
		}
	}
	if amount.GT(available) {
		return math.Int{}, types.ErrAmountExceedsPrincipal.Wrapf("approve %s, available %s", amount, available)
	}

	unit.AmountToClaim = unit.AmountToClaim.Add(amount)
	unit.Status = types.STATUS_APPROVED
	if err := k.SetUnit(ctx, unit); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApproved,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver),
		),
	)
	return unit.AmountToClaim, nil
}
