package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// Deposit creates a contract (ContractId 0) or adds funds to an existing one.
// The client is charged principal plus the prefunded fee share in a single
// transfer to the module account; fixed-price and milestone deposits must
// carry a valid admin co-signed authorization.
//
// Returns the contract id, the first sub id funded by this deposit, and the
// total fee charged.
func (k Keeper) Deposit(ctx context.Context, depositor sdk.AccAddress, msg *types.MsgDeposit) (uint64, uint64, math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, 0, math.Int{}, err
	}
	if !params.DenomAllowed(msg.Denom) {
		return 0, 0, math.Int{}, types.ErrDenomNotAllowed.Wrapf("%s", msg.Denom)
	}

	if msg.EscrowType == types.ESCROW_TYPE_FIXED_PRICE || msg.EscrowType == types.ESCROW_TYPE_MILESTONE {
		if err := k.VerifyDepositAuthorization(ctx, msg); err != nil {
			return 0, 0, math.Int{}, err
		}
	}

	if msg.EscrowType == types.ESCROW_TYPE_MILESTONE && uint32(len(msg.Milestones)) > params.MaxMilestonesPerTx {
		return 0, 0, math.Int{}, types.ErrBatchLimitExceeded.Wrapf("%d milestones, limit %d", len(msg.Milestones), params.MaxMilestonesPerTx)
	}

	var contract types.Contract
	creating := msg.ContractId == 0
	if creating {
		contract = types.Contract{
			Id:                k.nextContractID(ctx),
			EscrowType:        msg.EscrowType,
			Client:            depositor.String(),
			Denom:             msg.Denom,
			PrepaymentBalance: math.ZeroInt(),
		}
	} else {
		contract, err = k.GetContract(ctx, msg.EscrowType, msg.ContractId)
		if err != nil {
			return 0, 0, math.Int{}, err
		}
		if contract.Client != depositor.String() {
			return 0, 0, math.Int{}, types.ErrUnauthorized.Wrapf("%s is not the contract client", depositor)
		}
		if contract.Denom != msg.Denom {
			return 0, 0, math.Int{}, types.ErrDenomNotAllowed.Wrapf("contract is denominated in %s", contract.Denom)
		}
	}

	// Fixed-price contracts have exactly one unit: a repeat deposit tops it
	// up rather than minting a new sub-unit.
	if msg.EscrowType == types.ESCROW_TYPE_FIXED_PRICE && !creating {
		fee, err := k.augmentFixedPriceUnit(ctx, depositor, contract, msg.Amount)
		if err != nil {
			return 0, 0, math.Int{}, err
		}
		return contract.Id, 0, fee, nil
	}

	var (
		newUnits       []types.Unit
		totalPrincipal = math.ZeroInt()
		totalFee       = math.ZeroInt()
	)
	addUnit := func(contractor string, amount math.Int, contractorData []byte) error {
		_, fee, err := k.depositFeeForUnit(ctx, msg.EscrowType, contract.Id, depositor, amount, msg.FeeConfig)
		if err != nil {
			return err
		}
		newUnits = append(newUnits, types.Unit{
			ContractId:       contract.Id,
			SubId:            contract.NextSubId,
			EscrowType:       msg.EscrowType,
			Contractor:       contractor,
			Amount:           amount,
			AmountToClaim:    math.ZeroInt(),
			AmountToWithdraw: math.ZeroInt(),
			FeeBalance:       fee,
			ContractorData:   contractorData,
			FeeConfig:        msg.FeeConfig,
			Status:           types.STATUS_ACTIVE,
		})
		contract.NextSubId++
		totalPrincipal = totalPrincipal.Add(amount)
		totalFee = totalFee.Add(fee)
		return nil
	}

	switch msg.EscrowType {
	case types.ESCROW_TYPE_MILESTONE:
		for _, m := range msg.Milestones {
			if err := addUnit(m.Contractor, m.Amount, m.ContractorData); err != nil {
				return 0, 0, math.Int{}, err
			}
		}
	default: // fixed-price creation and hourly weekly bills
		if err := addUnit(msg.Contractor, msg.Amount, msg.ContractorData); err != nil {
			return 0, 0, math.Int{}, err
		}
	}

	charge := sdk.NewCoins(sdk.NewCoin(msg.Denom, totalPrincipal.Add(totalFee)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, charge); err != nil {
		return 0, 0, math.Int{}, fmt.Errorf("deposit transfer: %w", err)
	}

	if err := k.SetContract(ctx, contract); err != nil {
		return 0, 0, math.Int{}, err
	}
	firstSubID := newUnits[0].SubId
	for _, unit := range newUnits {
		if err := k.SetUnit(ctx, unit); err != nil {
			return 0, 0, math.Int{}, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposited,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contract.Id)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", firstSubID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, msg.EscrowType.String()),
			sdk.NewAttribute(types.AttributeKeyClient, contract.Client),
			sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, totalPrincipal.String()),
			sdk.NewAttribute(types.AttributeKeyFee, totalFee.String()),
			sdk.NewAttribute(types.AttributeKeyFeeConfig, msg.FeeConfig.String()),
		),
	)

	return contract.Id, firstSubID, totalFee, nil
}

// augmentFixedPriceUnit tops up the single unit of an existing fixed-price
// contract. The unit must still be ACTIVE and keeps its original fee config.
func (k Keeper) augmentFixedPriceUnit(ctx context.Context, depositor sdk.AccAddress, contract types.Contract, amount math.Int) (math.Int, error) {
	unit, err := k.GetUnit(ctx, types.ESCROW_TYPE_FIXED_PRICE, contract.Id, 0)
	if err != nil {
		return math.Int{}, err
	}
	if unit.Status != types.STATUS_ACTIVE {
		return math.Int{}, types.ErrInvalidStatus.Wrapf("cannot top up a %s unit", unit.Status)
	}

	_, fee, err := k.depositFeeForUnit(ctx, unit.EscrowType, contract.Id, depositor, amount, unit.FeeConfig)
	if err != nil {
		return math.Int{}, err
	}

	charge := sdk.NewCoins(sdk.NewCoin(contract.Denom, amount.Add(fee)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, charge); err != nil {
		return math.Int{}, fmt.Errorf("deposit transfer: %w", err)
	}

	unit.Amount = unit.Amount.Add(amount)
	unit.FeeBalance = unit.FeeBalance.Add(fee)
	if err := k.SetUnit(ctx, unit); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposited,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contract.Id)),
			sdk.NewAttribute(types.AttributeKeySubID, "0"),
			sdk.NewAttribute(types.AttributeKeyEscrowType, unit.EscrowType.String()),
			sdk.NewAttribute(types.AttributeKeyClient, contract.Client),
			sdk.NewAttribute(types.AttributeKeyDenom, contract.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyFeeConfig, unit.FeeConfig.String()),
		),
	)

	return fee, nil
}
