package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// GetContract returns a contract record by (shape, id)
func (k Keeper) GetContract(ctx context.Context, escrowType types.EscrowType, contractID uint64) (types.Contract, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.ContractKey(escrowType, contractID))
	if bz == nil {
		return types.Contract{}, types.ErrContractNotFound.Wrapf("%s contract %d", escrowType, contractID)
	}

	var contract types.Contract
	if err := json.Unmarshal(bz, &contract); err != nil {
		return types.Contract{}, fmt.Errorf("unmarshal contract %d: %w", contractID, err)
	}
	return contract, nil
}

// SetContract stores a contract record
func (k Keeper) SetContract(ctx context.Context, contract types.Contract) error {
	bz, err := json.Marshal(contract)
	if err != nil {
		return fmt.Errorf("marshal contract %d: %w", contract.Id, err)
	}
	k.getStore(ctx).Set(types.ContractKey(contract.EscrowType, contract.Id), bz)
	return nil
}

// GetUnit returns a sub-unit record by (shape, contract id, sub id)
func (k Keeper) GetUnit(ctx context.Context, escrowType types.EscrowType, contractID, subID uint64) (types.Unit, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.UnitKey(escrowType, contractID, subID))
	if bz == nil {
		return types.Unit{}, types.ErrUnitNotFound.Wrapf("%s unit %d/%d", escrowType, contractID, subID)
	}

	var unit types.Unit
	if err := json.Unmarshal(bz, &unit); err != nil {
		return types.Unit{}, fmt.Errorf("unmarshal unit %d/%d: %w", contractID, subID, err)
	}
	return unit, nil
}

// SetUnit stores a sub-unit record
func (k Keeper) SetUnit(ctx context.Context, unit types.Unit) error {
	bz, err := json.Marshal(unit)
	if err != nil {
		return fmt.Errorf("marshal unit %d/%d: %w", unit.ContractId, unit.SubId, err)
	}
	k.getStore(ctx).Set(types.UnitKey(unit.EscrowType, unit.ContractId, unit.SubId), bz)
	return nil
}

// nextContractID allocates a fresh contract id from the monotonic counter
func (k Keeper) nextContractID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	id := uint64(1)
	if bz := store.Get(types.NextContractIDKey); bz != nil {
		id = binary.BigEndian.Uint64(bz)
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, id+1)
	store.Set(types.NextContractIDKey, next)
	return id
}

// GetNextContractID returns the counter without consuming it
func (k Keeper) GetNextContractID(ctx context.Context) uint64 {
	if bz := k.getStore(ctx).Get(types.NextContractIDKey); bz != nil {
		return binary.BigEndian.Uint64(bz)
	}
	return 1
}

// setNextContractID seeds the counter, for genesis
func (k Keeper) setNextContractID(ctx context.Context, id uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	k.getStore(ctx).Set(types.NextContractIDKey, bz)
}

// IterateContracts walks every contract record. fn returning true stops early.
func (k Keeper) IterateContracts(ctx context.Context, fn func(contract types.Contract) bool) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ContractKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var contract types.Contract
		if err := json.Unmarshal(iterator.Value(), &contract); err != nil {
			return fmt.Errorf("unmarshal contract record: %w", err)
		}
		if fn(contract) {
			break
		}
	}
	return nil
}

// IterateUnits walks every sub-unit record. fn returning true stops early.
func (k Keeper) IterateUnits(ctx context.Context, fn func(unit types.Unit) bool) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.UnitKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var unit types.Unit
		if err := json.Unmarshal(iterator.Value(), &unit); err != nil {
			return fmt.Errorf("unmarshal unit record: %w", err)
		}
		if fn(unit) {
			break
		}
	}
	return nil
}

// iterateContractUnits walks the sub-units of one contract in sub-id order
func (k Keeper) iterateContractUnits(ctx context.Context, escrowType types.EscrowType, contractID uint64, fn func(unit types.Unit) bool) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.UnitContractPrefix(escrowType, contractID))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var unit types.Unit
		if err := json.Unmarshal(iterator.Value(), &unit); err != nil {
			return fmt.Errorf("unmarshal unit record: %w", err)
		}
		if fn(unit) {
			break
		}
	}
	return nil
}
