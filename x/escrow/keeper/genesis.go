package keeper

import (
	"context"
	"encoding/hex"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// InitGenesis initializes the escrow module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("init genesis: %w", err)
	}
	k.setNextContractID(ctx, genState.NextContractId)

	for _, contract := range genState.Contracts {
		if err := k.SetContract(ctx, contract); err != nil {
			return fmt.Errorf("init genesis: contract %d: %w", contract.Id, err)
		}
	}
	for _, unit := range genState.Units {
		if err := k.SetUnit(ctx, unit); err != nil {
			return fmt.Errorf("init genesis: unit %d/%d: %w", unit.ContractId, unit.SubId, err)
		}
	}
	for _, record := range genState.FeeRates {
		if err := k.setFeeRatesUnchecked(ctx, record); err != nil {
			return fmt.Errorf("init genesis: fee rates: %w", err)
		}
	}
	for _, record := range genState.Recoveries {
		hash, err := hex.DecodeString(record.Hash)
		if err != nil {
			return fmt.Errorf("init genesis: recovery hash %q: %w", record.Hash, err)
		}
		if err := k.setRecovery(ctx, hash, record.Recovery); err != nil {
			return fmt.Errorf("init genesis: recovery %s: %w", record.Hash, err)
		}
	}
	for _, grant := range genState.Roles {
		addr, err := sdk.AccAddressFromBech32(grant.Account)
		if err != nil {
			return fmt.Errorf("init genesis: role grant %q: %w", grant.Account, err)
		}
		k.setRoleUnchecked(ctx, addr, grant.Role)
	}

	store := k.getStore(ctx)
	for _, record := range genState.SigningKeys {
		addr, err := sdk.AccAddressFromBech32(record.Account)
		if err != nil {
			return fmt.Errorf("init genesis: signing key %q: %w", record.Account, err)
		}
		store.Set(types.SigningKeyKey(addr), record.PubKey)
	}
	return nil
}

// ExportGenesis returns the escrow module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("export genesis: %w", err)
	}

	genState := types.GenesisState{
		Params:         params,
		NextContractId: k.GetNextContractID(ctx),
		Contracts:      []types.Contract{},
		Units:          []types.Unit{},
		Roles:          []types.RoleGrant{},
		SigningKeys:    []types.SigningKeyRecord{},
	}

	if err := k.IterateContracts(ctx, func(contract types.Contract) bool {
		genState.Contracts = append(genState.Contracts, contract)
		return false
	}); err != nil {
		return nil, fmt.Errorf("export genesis: contracts: %w", err)
	}
	if err := k.IterateUnits(ctx, func(unit types.Unit) bool {
		genState.Units = append(genState.Units, unit)
		return false
	}); err != nil {
		return nil, fmt.Errorf("export genesis: units: %w", err)
	}

	genState.FeeRates, err = k.exportFeeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("export genesis: fee rates: %w", err)
	}
	genState.Recoveries, err = k.exportRecoveries(ctx)
	if err != nil {
		return nil, fmt.Errorf("export genesis: recoveries: %w", err)
	}

	for _, role := range []types.Role{types.RoleAdmin, types.RoleGuardian, types.RoleStrategist, types.RoleDao} {
		k.iterateRole(ctx, role, func(addr sdk.AccAddress) bool {
			genState.Roles = append(genState.Roles, types.RoleGrant{Account: addr.String(), Role: role})
			return false
		})
	}

	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.SigningKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(types.SigningKeyPrefix):])
		pubKey := append([]byte{}, iterator.Value()...)
		genState.SigningKeys = append(genState.SigningKeys, types.SigningKeyRecord{
			Account: addr.String(),
			PubKey:  pubKey,
		})
	}
	return &genState, nil
}
