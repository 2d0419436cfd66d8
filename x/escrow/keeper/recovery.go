package keeper

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// getRecovery returns a recovery record by its parameter hash
func (k Keeper) getRecovery(ctx context.Context, hash []byte) (types.Recovery, bool, error) {
	bz := k.getStore(ctx).Get(types.RecoveryKey(hash))
	if bz == nil {
		return types.Recovery{}, false, nil
	}
	var recovery types.Recovery
	if err := json.Unmarshal(bz, &recovery); err != nil {
		return types.Recovery{}, false, fmt.Errorf("unmarshal recovery record: %w", err)
	}
	return recovery, true, nil
}

func (k Keeper) setRecovery(ctx context.Context, hash []byte, recovery types.Recovery) error {
	bz, err := json.Marshal(recovery)
	if err != nil {
		return fmt.Errorf("marshal recovery record: %w", err)
	}
	k.getStore(ctx).Set(types.RecoveryKey(hash), bz)
	return nil
}

// InitiateRecovery opens a timelocked ownership transfer for a lost account.
// Guardian only. The request is keyed by the hash of its parameters and is
// never physically deleted, so re-initiating a spent hash is rejected.
func (k Keeper) InitiateRecovery(ctx context.Context, guardian sdk.AccAddress, msg *types.MsgInitiateRecovery) (string, int64, error) {
	if !k.IsGuardian(ctx, guardian) {
		return "", 0, types.ErrUnauthorized.Wrapf("%s lacks the guardian role", guardian)
	}

	// the old account must actually own the targeted side of the contract
	if err := k.checkRecoveryOwnership(ctx, msg.EscrowType, msg.ContractId, msg.SubId, msg.OldAccount, msg.AccountType); err != nil {
		return "", 0, err
	}

	hash := types.RecoveryHash(msg.EscrowType, msg.ContractId, msg.SubId, msg.OldAccount, msg.NewAccount, msg.AccountType)
	if existing, found, err := k.getRecovery(ctx, hash); err != nil {
		return "", 0, err
	} else if found && existing.Executed {
		return "", 0, types.ErrRecoveryExecuted.Wrap("cannot re-initiate a spent recovery")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return "", 0, err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	unlockAt := sdkCtx.BlockTime().Unix() + params.ClampRecoveryPeriod()

	recovery := types.Recovery{
		EscrowType:  msg.EscrowType,
		ContractId:  msg.ContractId,
		SubId:       msg.SubId,
		OldAccount:  msg.OldAccount,
		NewAccount:  msg.NewAccount,
		AccountType: msg.AccountType,
		UnlockAt:    unlockAt,
	}
	if err := k.setRecovery(ctx, hash, recovery); err != nil {
		return "", 0, err
	}

	hashHex := hex.EncodeToString(hash)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRecoveryInitiated,
			sdk.NewAttribute(types.AttributeKeyRecoveryHash, hashHex),
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", msg.ContractId)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, msg.EscrowType.String()),
			sdk.NewAttribute(types.AttributeKeyOldAccount, msg.OldAccount),
			sdk.NewAttribute(types.AttributeKeyNewAccount, msg.NewAccount),
			sdk.NewAttribute(types.AttributeKeyAccountType, msg.AccountType.String()),
			sdk.NewAttribute(types.AttributeKeyUnlockAt, fmt.Sprintf("%d", unlockAt)),
		),
	)
	return hashHex, unlockAt, nil
}

// ExecuteRecovery claims an unlocked recovery. Only the new account may send
// it, at or after the unlock time, exactly once.
func (k Keeper) ExecuteRecovery(ctx context.Context, caller sdk.AccAddress, msg *types.MsgExecuteRecovery) error {
	if caller.String() != msg.NewAccount {
		return types.ErrUnauthorized.Wrap("recovery must be executed by the new account")
	}

	hash := msg.Hash()
	recovery, found, err := k.getRecovery(ctx, hash)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrRecoveryNotFound.Wrapf("%x", hash)
	}
	if recovery.Executed {
		return types.ErrRecoveryExecuted.Wrapf("%x", hash)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	if now < recovery.UnlockAt {
		return types.ErrRecoveryLocked.Wrapf("unlocks at %d, block time %d", recovery.UnlockAt, now)
	}

	switch recovery.AccountType {
	case types.ACCOUNT_TYPE_CLIENT:
		err = k.transferClientOwnership(ctx, recovery.EscrowType, recovery.ContractId, recovery.OldAccount, recovery.NewAccount)
	case types.ACCOUNT_TYPE_CONTRACTOR:
		err = k.transferContractorOwnership(ctx, recovery.EscrowType, recovery.ContractId, recovery.SubId, recovery.OldAccount, recovery.NewAccount)
	default:
		err = types.ErrInvalidRole.Wrapf("invalid account type %d", recovery.AccountType)
	}
	if err != nil {
		return err
	}

	recovery.Executed = true
	if err := k.setRecovery(ctx, hash, recovery); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRecoveryExecuted,
			sdk.NewAttribute(types.AttributeKeyRecoveryHash, hex.EncodeToString(hash)),
			sdk.NewAttribute(types.AttributeKeyOldAccount, recovery.OldAccount),
			sdk.NewAttribute(types.AttributeKeyNewAccount, recovery.NewAccount),
			sdk.NewAttribute(types.AttributeKeyAccountType, recovery.AccountType.String()),
		),
	)
	return nil
}

// CancelRecovery marks a pending recovery as spent without transferring.
// Only the account being recovered may cancel.
func (k Keeper) CancelRecovery(ctx context.Context, caller sdk.AccAddress, hashHex string) error {
	hash, err := hex.DecodeString(hashHex)
	if err != nil {
		return types.ErrRecoveryNotFound.Wrap("malformed recovery hash")
	}
	recovery, found, err := k.getRecovery(ctx, hash)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrRecoveryNotFound.Wrapf("%s", hashHex)
	}
	if recovery.Executed {
		return types.ErrRecoveryExecuted.Wrapf("%s", hashHex)
	}
	if recovery.OldAccount != caller.String() {
		return types.ErrUnauthorized.Wrap("only the account being recovered may cancel")
	}

	recovery.Executed = true
	if err := k.setRecovery(ctx, hash, recovery); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRecoveryCanceled,
			sdk.NewAttribute(types.AttributeKeyRecoveryHash, hashHex),
			sdk.NewAttribute(types.AttributeKeyOldAccount, recovery.OldAccount),
		),
	)
	return nil
}

// checkRecoveryOwnership verifies the old account currently owns the side of
// the contract the recovery targets.
func (k Keeper) checkRecoveryOwnership(ctx context.Context, escrowType types.EscrowType, contractID, subID uint64, oldAccount string, accountType types.AccountType) error {
	switch accountType {
	case types.ACCOUNT_TYPE_CLIENT:
		contract, err := k.GetContract(ctx, escrowType, contractID)
		if err != nil {
			return err
		}
		if contract.Client != oldAccount {
			return types.ErrOwnershipMismatch.Wrapf("%s is not the contract client", oldAccount)
		}
	case types.ACCOUNT_TYPE_CONTRACTOR:
		if escrowType == types.ESCROW_TYPE_MILESTONE {
			unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
			if err != nil {
				return err
			}
			if unit.Contractor != oldAccount {
				return types.ErrOwnershipMismatch.Wrapf("%s is not the milestone contractor", oldAccount)
			}
			return nil
		}
		owned := false
		if err := k.iterateContractUnits(ctx, escrowType, contractID, func(unit types.Unit) bool {
			if unit.Contractor == oldAccount {
				owned = true
				return true
			}
			return false
		}); err != nil {
			return err
		}
		if !owned {
			return types.ErrOwnershipMismatch.Wrapf("%s holds no unit of contract %d", oldAccount, contractID)
		}
	default:
		return types.ErrInvalidRole.Wrapf("invalid account type %d", accountType)
	}
	return nil
}

// transferClientOwnership replaces the contract-level client identity.
// Reachable only through recovery execution.
func (k Keeper) transferClientOwnership(ctx context.Context, escrowType types.EscrowType, contractID uint64, oldAccount, newAccount string) error {
	contract, err := k.GetContract(ctx, escrowType, contractID)
	if err != nil {
		return err
	}
	if contract.Client != oldAccount {
		return types.ErrOwnershipMismatch.Wrapf("%s is no longer the contract client", oldAccount)
	}

	contract.Client = newAccount
	if err := k.SetContract(ctx, contract); err != nil {
		return err
	}

	k.emitOwnershipTransferred(ctx, escrowType, contractID, 0, oldAccount, newAccount, types.ACCOUNT_TYPE_CLIENT)
	return nil
}

// transferContractorOwnership replaces the contractor identity: per-milestone
// for the milestone shape, across the whole contract for fixed-price and
// hourly. Reachable only through recovery execution.
func (k Keeper) transferContractorOwnership(ctx context.Context, escrowType types.EscrowType, contractID, subID uint64, oldAccount, newAccount string) error {
	if escrowType == types.ESCROW_TYPE_MILESTONE {
		unit, err := k.GetUnit(ctx, escrowType, contractID, subID)
		if err != nil {
			return err
		}
		if unit.Contractor != oldAccount {
			return types.ErrOwnershipMismatch.Wrapf("%s is no longer the milestone contractor", oldAccount)
		}
		unit.Contractor = newAccount
		if err := k.SetUnit(ctx, unit); err != nil {
			return err
		}
		k.emitOwnershipTransferred(ctx, escrowType, contractID, subID, oldAccount, newAccount, types.ACCOUNT_TYPE_CONTRACTOR)
		return nil
	}

	var (
		updated  []types.Unit
		replaced bool
	)
	if err := k.iterateContractUnits(ctx, escrowType, contractID, func(unit types.Unit) bool {
		if unit.Contractor == oldAccount {
			unit.Contractor = newAccount
			updated = append(updated, unit)
			replaced = true
		}
		return false
	}); err != nil {
		return err
	}
	if !replaced {
		return types.ErrOwnershipMismatch.Wrapf("%s holds no unit of contract %d", oldAccount, contractID)
	}
	for _, unit := range updated {
		if err := k.SetUnit(ctx, unit); err != nil {
			return err
		}
	}

	k.emitOwnershipTransferred(ctx, escrowType, contractID, 0, oldAccount, newAccount, types.ACCOUNT_TYPE_CONTRACTOR)
	return nil
}

func (k Keeper) emitOwnershipTransferred(ctx context.Context, escrowType types.EscrowType, contractID, subID uint64, oldAccount, newAccount string, accountType types.AccountType) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOwnershipTransferred,
			sdk.NewAttribute(types.AttributeKeyContractID, fmt.Sprintf("%d", contractID)),
			sdk.NewAttribute(types.AttributeKeySubID, fmt.Sprintf("%d", subID)),
			sdk.NewAttribute(types.AttributeKeyEscrowType, escrowType.String()),
			sdk.NewAttribute(types.AttributeKeyOldAccount, oldAccount),
			sdk.NewAttribute(types.AttributeKeyNewAccount, newAccount),
			sdk.NewAttribute(types.AttributeKeyAccountType, accountType.String()),
		),
	)
}

// exportRecoveries walks every recovery record for genesis export
func (k Keeper) exportRecoveries(ctx context.Context) ([]types.RecoveryRecord, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.RecoveryKeyPrefix)
	defer iterator.Close()

	records := []types.RecoveryRecord{}
	for ; iterator.Valid(); iterator.Next() {
		var recovery types.Recovery
		if err := json.Unmarshal(iterator.Value(), &recovery); err != nil {
			return nil, fmt.Errorf("unmarshal recovery record: %w", err)
		}
		records = append(records, types.RecoveryRecord{
			Hash:     hex.EncodeToString(iterator.Key()[len(types.RecoveryKeyPrefix):]),
			Recovery: recovery,
		})
	}
	return records, nil
}
