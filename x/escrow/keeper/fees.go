package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

const bpsDenominator = 10000

// bpsShare returns amount * bps / 10000, truncated
func bpsShare(amount math.Int, bps uint32) math.Int {
	return math.LegacyNewDecFromInt(amount).MulInt64(int64(bps)).QuoInt64(bpsDenominator).TruncateInt()
}

// SetFeeRates writes a coverage/claim rate pair at one resolution tier.
// Admin only; both rates bounded by params.MaxFeeBps.
func (k Keeper) SetFeeRates(
	ctx context.Context,
	admin sdk.AccAddress,
	tier types.FeeTier,
	escrowType types.EscrowType,
	contractID uint64,
	account string,
	coverageBps, claimBps uint32,
) error {
	if !k.IsAdmin(ctx, admin) {
		return types.ErrUnauthorized.Wrapf("%s lacks the admin role", admin)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if coverageBps > params.MaxFeeBps {
		return types.ErrFeeTooHigh.Wrapf("coverage %d bps exceeds max %d", coverageBps, params.MaxFeeBps)
	}
	if claimBps > params.MaxFeeBps {
		return types.ErrFeeTooHigh.Wrapf("claim %d bps exceeds max %d", claimBps, params.MaxFeeBps)
	}

	key, err := feeTierKey(tier, escrowType, contractID, account)
	if err != nil {
		return err
	}

	rates := types.FeeRates{CoverageBps: coverageBps, ClaimBps: claimBps, Set: true}
	bz, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("marshal fee rates: %w", err)
	}
	k.getStore(ctx).Set(key, bz)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeRatesUpdated,
			sdk.NewAttribute(types.AttributeKeyTier, tier.String()),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeyAccount, account),
			sdk.NewAttribute(types.AttributeKeyCoverageBps, fmt.Sprintf("%d", coverageBps)),
			sdk.NewAttribute(types.AttributeKeyClaimBps, fmt.Sprintf("%d", claimBps)),
		),
	)
	return nil
}

func feeTierKey(tier types.FeeTier, escrowType types.EscrowType, contractID uint64, account string) ([]byte, error) {
	switch tier {
	case types.FEE_TIER_CONTRACT:
		if !escrowType.IsValid() {
			return nil, types.ErrInvalidEscrowType.Wrapf("%d", escrowType)
		}
		return types.ContractFeeKey(escrowType, contractID), nil
	case types.FEE_TIER_INSTANCE:
		if !escrowType.IsValid() {
			return nil, types.ErrInvalidEscrowType.Wrapf("%d", escrowType)
		}
		return types.InstanceFeeKey(escrowType), nil
	case types.FEE_TIER_USER:
		addr, err := sdk.AccAddressFromBech32(account)
		if err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("invalid account address: %v", err)
		}
		return types.UserFeeKey(addr), nil
	default:
		return nil, types.ErrInvalidAmount.Wrapf("invalid fee tier %d", tier)
	}
}

func (k Keeper) getFeeRates(ctx context.Context, key []byte) (types.FeeRates, bool) {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return types.FeeRates{}, false
	}
	var rates types.FeeRates
	if err := json.Unmarshal(bz, &rates); err != nil {
		return types.FeeRates{}, false
	}
	return rates, rates.Set
}

// ResolveFeeRates walks the fee tiers from most to least specific:
// per-(shape, contract) > per-shape > per-user > params default. A tier
// participates only when its explicit Set flag is on.
func (k Keeper) ResolveFeeRates(ctx context.Context, escrowType types.EscrowType, contractID uint64, user sdk.AccAddress) (types.FeeRates, error) {
	if rates, ok := k.getFeeRates(ctx, types.ContractFeeKey(escrowType, contractID)); ok {
		return rates, nil
	}
	if rates, ok := k.getFeeRates(ctx, types.InstanceFeeKey(escrowType)); ok {
		return rates, nil
	}
	if rates, ok := k.getFeeRates(ctx, types.UserFeeKey(user)); ok {
		return rates, nil
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.FeeRates{}, err
	}
	return types.FeeRates{
		CoverageBps: params.DefaultCoverageBps,
		ClaimBps:    params.DefaultClaimBps,
		Set:         true,
	}, nil
}

// ComputeDepositAmountAndFee returns the total the client is charged for
// depositing amount of principal, and the fee portion of that total.
func ComputeDepositAmountAndFee(rates types.FeeRates, amount math.Int, feeConfig types.FeeConfig) (total, fee math.Int, err error) {
	switch feeConfig {
	case types.FEE_CONFIG_CLIENT_COVERS_ALL:
		fee = bpsShare(amount, rates.CoverageBps+rates.ClaimBps)
	case types.FEE_CONFIG_CLIENT_COVERS_ONLY:
		fee = bpsShare(amount, rates.CoverageBps)
	case types.FEE_CONFIG_NO_FEES:
		fee = math.ZeroInt()
	case types.FEE_CONFIG_CONTRACTOR_COVERS_CLAIM:
		return math.Int{}, math.Int{}, types.ErrInvalidFeeConfig.Wrap("contractor-covers-claim cannot be charged at deposit")
	default:
		return math.Int{}, math.Int{}, types.ErrInvalidFeeConfig.Wrapf("%d", feeConfig)
	}
	return amount.Add(fee), fee, nil
}

// ComputeClaimableAmountAndFee splits a claimed amount into the contractor's
// net payout, the fee deducted from the contractor, and the client-prefunded
// fee released alongside the claim.
func ComputeClaimableAmountAndFee(rates types.FeeRates, claimed math.Int, feeConfig types.FeeConfig) (net, contractorFee, clientFee math.Int, err error) {
	net = claimed
	contractorFee = math.ZeroInt()
	clientFee = math.ZeroInt()

	switch feeConfig {
	case types.FEE_CONFIG_CLIENT_COVERS_ALL:
		clientFee = bpsShare(claimed, rates.CoverageBps+rates.ClaimBps)
	case types.FEE_CONFIG_CLIENT_COVERS_ONLY:
		contractorFee = bpsShare(claimed, rates.ClaimBps)
		clientFee = bpsShare(claimed, rates.CoverageBps)
		net = claimed.Sub(contractorFee)
	case types.FEE_CONFIG_CONTRACTOR_COVERS_CLAIM:
		contractorFee = bpsShare(claimed, rates.ClaimBps)
		net = claimed.Sub(contractorFee)
	case types.FEE_CONFIG_NO_FEES:
	default:
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidFeeConfig.Wrapf("%d", feeConfig)
	}
	return net, contractorFee, clientFee, nil
}

// depositFeeForUnit resolves rates and computes the deposit charge for one
// unit. Contractor-covers-claim prefunds nothing: its fee is deducted at
// claim time, so the engine function is never consulted for it here.
func (k Keeper) depositFeeForUnit(ctx context.Context, escrowType types.EscrowType, contractID uint64, client sdk.AccAddress, amount math.Int, feeConfig types.FeeConfig) (total, fee math.Int, err error) {
	if feeConfig == types.FEE_CONFIG_CONTRACTOR_COVERS_CLAIM {
		return amount, math.ZeroInt(), nil
	}
	rates, err := k.ResolveFeeRates(ctx, escrowType, contractID, client)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return ComputeDepositAmountAndFee(rates, amount, feeConfig)
}

// exportFeeRates walks all configured fee tiers for genesis export
func (k Keeper) exportFeeRates(ctx context.Context) ([]types.FeeRatesRecord, error) {
	store := k.getStore(ctx)
	records := []types.FeeRatesRecord{}

	appendRecords := func(prefix []byte, decode func(key []byte, rates types.FeeRates) types.FeeRatesRecord) error {
		iterator := storetypes.KVStorePrefixIterator(store, prefix)
		defer iterator.Close()
		for ; iterator.Valid(); iterator.Next() {
			var rates types.FeeRates
			if err := json.Unmarshal(iterator.Value(), &rates); err != nil {
				return fmt.Errorf("unmarshal fee rates record: %w", err)
			}
			records = append(records, decode(iterator.Key()[len(prefix):], rates))
		}
		return nil
	}

	if err := appendRecords(types.ContractFeeKeyPrefix, func(key []byte, rates types.FeeRates) types.FeeRatesRecord {
		return types.FeeRatesRecord{
			Tier:       types.FEE_TIER_CONTRACT,
			EscrowType: types.EscrowType(key[0]),
			ContractId: binary.BigEndian.Uint64(key[1:]),
			Rates:      rates,
		}
	}); err != nil {
		return nil, err
	}
	if err := appendRecords(types.InstanceFeeKeyPrefix, func(key []byte, rates types.FeeRates) types.FeeRatesRecord {
		return types.FeeRatesRecord{
			Tier:       types.FEE_TIER_INSTANCE,
			EscrowType: types.EscrowType(key[0]),
			Rates:      rates,
		}
	}); err != nil {
		return nil, err
	}
	if err := appendRecords(types.UserFeeKeyPrefix, func(key []byte, rates types.FeeRates) types.FeeRatesRecord {
		return types.FeeRatesRecord{
			Tier:    types.FEE_TIER_USER,
			Account: sdk.AccAddress(key).String(),
			Rates:   rates,
		}
	}); err != nil {
		return nil, err
	}

	return records, nil
}

// setFeeRatesUnchecked writes a fee tier record without the admin check, for genesis
func (k Keeper) setFeeRatesUnchecked(ctx context.Context, record types.FeeRatesRecord) error {
	key, err := feeTierKey(record.Tier, record.EscrowType, record.ContractId, record.Account)
	if err != nil {
		return err
	}
	rates := record.Rates
	rates.Set = true
	bz, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("marshal fee rates: %w", err)
	}
	k.getStore(ctx).Set(key, bz)
	return nil
}
