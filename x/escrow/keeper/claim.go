package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// settleClaim applies a claim to the unit in place and returns the
// contractor's net payout, the fee forwarded to the treasury, and any
// residual prefunded fee owed back to the client on full cancellation.
// It performs no transfers; callers persist the unit and move the coins.
func (k Keeper) settleClaim(ctx context.Context, contract types.Contract, unit *types.Unit) (net, treasuryFee, clientRefund math.Int, err error) {
	if unit.Status != types.STATUS_APPROVED && unit.Status != types.STATUS_RESOLVED {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidStatus.Wrapf("cannot claim from %s", unit.Status)
	}
	if !unit.AmountToClaim.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrNothingToClaim.Wrapf("unit %d/%d", unit.ContractId, unit.SubId)
	}

	client, err := sdk.AccAddressFromBech32(contract.Client)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidAddress.Wrapf("contract client: %v", err)
	}
	rates, err := k.ResolveFeeRates(ctx, unit.EscrowType, unit.ContractId, client)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	claimed := unit.AmountToClaim
	net, contractorFee, clientFee, err := ComputeClaimableAmountAndFee(rates, claimed, unit.FeeConfig)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if clientFee.GT(unit.FeeBalance) {
		clientFee = unit.FeeBalance
	}

	unit.Amount = unit.Amount.Sub(claimed)
	unit.AmountToClaim = math.ZeroInt()
	unit.FeeBalance = unit.FeeBalance.Sub(clientFee)
	treasuryFee = contractorFee.Add(clientFee)
	clientRefund = math.ZeroInt()

	if unit.Amount.IsZero() && unit.AmountToWithdraw.IsZero() {
		if unit.Status == types.STATUS_RESOLVED {
			// fully settled split: residual prefunded fee goes home
			unit.Status = types.STATUS_CANCELED
			clientRefund = unit.FeeBalance
		} else {
			unit.Status = types.STATUS_COMPLETED
			treasuryFee = treasuryFee.Add(unit.FeeBalance)
		}
		unit.FeeBalance = math.ZeroInt()
	} else if unit.Status == types.STATUS_APPROVED {
		// remaining principal re-enters the work cycle
		unit.Status = types.STATUS_ACTIVE
	}

	return net, treasuryFee, clientRefund, nil
}

// Claim pays out a sub-unit's earmarked amount to the contractor, forwarding
// the fee share to the treasury.
func (k Keeper) Claim(ctx context.Context, contractor sdk.AccAddress, escrowType types.EscrowType, contractID, subID uint64) (math.Int, math.Int, error) {
	contract, err := k.GetContract(ctx, escrowType, contractID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if unit.Contractor != contractor.String() {
		return math.Int{}, math.Int{}, types.ErrUnauthorized.Wrapf("%s is not the unit contractor", contractor)
	}

	net, treasuryFee, clientRefund, err := k.settleClaim(ctx, contract, &unit)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.SetUnit(ctx, unit); err != nil {
		return math.Int{}, math.Int{}, err
	}

	if err := k.payOut(ctx, contract, contractor, net, treasuryFee, clientRefund); err != nil {
		return math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimed,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyContractor, contractor.String()),
			sdk.NewAttribute(types.AttributeKeyNetAmount, net.String()),
			sdk.NewAttribute(types.AttributeKeyFee, treasuryFee.String()),
			sdk.NewAttribute(types.AttributeKeyStatus, unit.Status.String()),
		),
	)
	return net, treasuryFee, nil
}

// ClaimAll pays out every claimable sub-unit in the inclusive sub-id range
// with one combined contractor transfer and one combined treasury transfer.
// Units the caller cannot claim are skipped; claiming nothing is an error.
func (k Keeper) ClaimAll(ctx context.Context, contractor sdk.AccAddress, escrowType types.EscrowType, contractID, startSubID, endSubID uint64) (uint64, math.Int, math.Int, error) {
	contract, err := k.GetContract(ctx, escrowType, contractID)
	if err != nil {
		return 0, math.Int{}, math.Int{}, err
	}

	var (
		claimedUnits uint64
		totalNet     = math.ZeroInt()
		totalFee     = math.ZeroInt()
		totalRefund  = math.ZeroInt()
	)
	for subID := startSubID; subID <= endSubID; subID++ {
		unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
		if err != nil {
			continue
		}
		if unit.Contractor != contractor.String() || !unit.AmountToClaim.IsPositive() {
			continue
		}
		if unit.Status != types.STATUS_APPROVED && unit.Status != types.STATUS_RESOLVED {
			continue
		}

		net, treasuryFee, clientRefund, err := k.settleClaim(ctx, contract, &unit)
		if err != nil {
			return 0, math.Int{}, math.Int{}, err
		}
		if err := k.SetUnit(ctx, unit); err != nil {
			return 0, math.Int{}, math.Int{}, err
		}
		claimedUnits++
		totalNet = totalNet.Add(net)
		totalFee = totalFee.Add(treasuryFee)
		totalRefund = totalRefund.Add(clientRefund)
	}
	if claimedUnits == 0 {
		return 0, math.Int{}, math.Int{}, types.ErrNothingToClaim.Wrapf("no claimable units in range %d-%d", startSubID, endSubID)
	}

	if err := k.payOut(ctx, contract, contractor, totalNet, totalFee, totalRefund); err != nil {
		return 0, math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimedAll,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubIDRange, fmt.Sprintf("%d-%d", startSubID, endSubID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyContractor, contractor.String()),
			sdk.NewAttribute(types.AttributeKeyNetAmount, totalNet.String()),
			sdk.NewAttribute(types.AttributeKeyFee, totalFee.String()),
		),
	)
	return claimedUnits, totalNet, totalFee, nil
}

// payOut moves settled claim proceeds out of the module account
func (k Keeper) payOut(ctx context.Context, contract types.Contract, contractor sdk.AccAddress, net, treasuryFee, clientRefund math.Int) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if net.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(contract.Denom, net))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, contractor, coins); err != nil {
			return fmt.Errorf("claim payout: %w", err)
		}
	}
	if treasuryFee.IsPositive() {
		treasury, err := sdk.AccAddressFromBech32(params.Treasury)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("treasury: %v", err)
		}
		coins := sdk.NewCoins(sdk.NewCoin(contract.Denom, treasuryFee))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, treasury, coins); err != nil {
			return fmt.Errorf("fee payout: %w", err)
		}
	}
	if clientRefund.IsPositive() {
		client, err := sdk.AccAddressFromBech32(contract.Client)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("contract client: %v", err)
		}
		coins := sdk.NewCoins(sdk.NewCoin(contract.Denom, clientRefund))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, client, coins); err != nil {
			return fmt.Errorf("fee refund: %w", err)
		}
	}
	return nil
}

// Withdraw returns a sub-unit's earmarked refund to the client, together with
// the proportional share of the prefunded fee.
func (k Keeper) Withdraw(ctx context.Context, client sdk.AccAddress, escrowType types.EscrowType, contractID, subID uint64) (math.Int, math.Int, error) {
	contract, err := k.GetContract(ctx, escrowType, contractID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if contract.Client != client.String() {
		return math.Int{}, math.Int{}, types.ErrUnauthorized.Wrapf("%s is not the contract client", client)
	}
	unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	switch unit.Status {
	case types.STATUS_REFUND_APPROVED, types.STATUS_RESOLVED, types.STATUS_CANCELED:
	default:
		return math.Int{}, math.Int{}, types.ErrInvalidStatus.Wrapf("cannot withdraw from %s", unit.Status)
	}
	if !unit.AmountToWithdraw.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrNothingToWithdraw.Wrapf("unit %d/%d", contractID, subID)
	}

	withdrawn := unit.AmountToWithdraw
	unit.Amount = unit.Amount.Sub(withdrawn)
	unit.AmountToWithdraw = math.ZeroInt()

	feeRefund := math.ZeroInt()
	if unit.FeeConfig != types.FEE_CONFIG_CONTRACTOR_COVERS_CLAIM && unit.FeeConfig != types.FEE_CONFIG_NO_FEES {
		rates, err := k.ResolveFeeRates(ctx, escrowType, contractID, client)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		_, fee, err := ComputeDepositAmountAndFee(rates, withdrawn, unit.FeeConfig)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		feeRefund = fee
	}
	if feeRefund.GT(unit.FeeBalance) {
		feeRefund = unit.FeeBalance
	}

	if unit.Amount.IsZero() && unit.AmountToClaim.IsZero() {
		// full refund: flush the remaining prefunded fee and close the unit
		feeRefund = unit.FeeBalance
		unit.Status = types.STATUS_CANCELED
	}
	unit.FeeBalance = unit.FeeBalance.Sub(feeRefund)

	if err := k.SetUnit(ctx, unit); err != nil {
		return math.Int{}, math.Int{}, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(contract.Denom, withdrawn.Add(feeRefund)))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, client, coins); err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("withdraw transfer: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawn,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyClient, client.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, withdrawn.String()),
			sdk.NewAttribute(types.AttributeKeyFee, feeRefund.String()),
			sdk.NewAttribute(types.AttributeKeyStatus, unit.Status.String()),
		),
	)
	return withdrawn, feeRefund, nil
}

// Refill tops up a sub-unit's principal, or an hourly contract's fee-free
// prepayment pool. Client only.
func (k Keeper) Refill(ctx context.Context, client sdk.AccAddress, escrowType types.EscrowType, contractID, subID uint64, amount math.Int, refillType types.RefillType) (math.Int, error) {
	contract, err := k.GetContract(ctx, escrowType, contractID)
	if err != nil {
		return math.Int{}, err
	}
	if contract.Client != client.String() {
		return math.Int{}, types.ErrUnauthorized.Wrapf("%s is not the contract client", client)
	}

	var fee math.Int
	switch refillType {
	case types.REFILL_TYPE_PREPAYMENT:
		if escrowType != types.ESCROW_TYPE_HOURLY {
			return math.Int{}, types.ErrInvalidEscrowType.Wrap("prepayment refill requires an hourly contract")
		}
		coins := sdk.NewCoins(sdk.NewCoin(contract.Denom, amount))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, client, types.ModuleName, coins); err != nil {
			return math.Int{}, fmt.Errorf("refill transfer: %w", err)
		}
		contract.PrepaymentBalance = contract.PrepaymentBalance.Add(amount)
		if err := k.SetContract(ctx, contract); err != nil {
			return math.Int{}, err
		}
		fee = math.ZeroInt()

	case types.REFILL_TYPE_PRINCIPAL:
		unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
		if err != nil {
			return math.Int{}, err
		}
		if unit.Status != types.STATUS_ACTIVE {
			return math.Int{}, types.ErrInvalidStatus.Wrapf("cannot refill a %s unit", unit.Status)
		}
		_, fee, err = k.depositFeeForUnit(ctx, escrowType, contractID, client, amount, unit.FeeConfig)
		if err != nil {
			return math.Int{}, err
		}
		coins := sdk.NewCoins(sdk.NewCoin(contract.Denom, amount.Add(fee)))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, client, types.ModuleName, coins); err != nil {
			return math.Int{}, fmt.Errorf("refill transfer: %w", err)
		}
		unit.Amount = unit.Amount.Add(amount)
		unit.FeeBalance = unit.FeeBalance.Add(fee)
		if err := k.SetUnit(ctx, unit); err != nil {
			return math.Int{}, err
		}

	default:
		return math.Int{}, types.ErrInvalidAmount.Wrapf("invalid refill type %d", refillType)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRefilled,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyClient, client.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyRefillType, fmt.Sprintf("%d", refillType)),
		),
	)
	return fee, nil
}
