package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// RegisterInvariants registers the escrow module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "unit-accounting", UnitAccountingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
}

// AllInvariants runs all invariants of the escrow module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if res, stop := UnitAccountingInvariant(k)(ctx); stop {
			return res, stop
		}
		return ModuleBalanceInvariant(k)(ctx)
	}
}

// UnitAccountingInvariant checks that every unit's earmarked amounts never
// exceed its remaining principal and no balance field is negative.
func UnitAccountingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		if err := k.IterateUnits(ctx, func(unit types.Unit) bool {
			if err := unit.Validate(); err != nil {
				broken = true
				msg = err.Error()
				return true
			}
			return false
		}); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "unit-accounting", err.Error()), true
		}
		return sdk.FormatInvariant(
			types.ModuleName, "unit-accounting",
			fmt.Sprintf("earmarks within principal: %s", msg),
		), broken
	}
}

// ModuleBalanceInvariant checks that the module account holds at least the
// sum of all unit principals, prefunded fees, and prepayment pools per denom.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		liabilities := map[string]math.Int{}
		addLiability := func(denom string, amount math.Int) {
			if existing, ok := liabilities[denom]; ok {
				liabilities[denom] = existing.Add(amount)
			} else {
				liabilities[denom] = amount
			}
		}

		denomByContract := map[string]string{}
		if err := k.IterateContracts(ctx, func(contract types.Contract) bool {
			denomByContract[fmt.Sprintf("%d/%d", contract.EscrowType, contract.Id)] = contract.Denom
			addLiability(contract.Denom, contract.PrepaymentBalance)
			return false
		}); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance", err.Error()), true
		}
		if err := k.IterateUnits(ctx, func(unit types.Unit) bool {
			denom, ok := denomByContract[fmt.Sprintf("%d/%d", unit.EscrowType, unit.ContractId)]
			if !ok {
				return false
			}
			addLiability(denom, unit.Amount.Add(unit.FeeBalance))
			return false
		}); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance", err.Error()), true
		}

		moduleAddr := k.GetModuleAddress()
		for denom, owed := range liabilities {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(owed) {
				return sdk.FormatInvariant(
					types.ModuleName, "module-balance",
					fmt.Sprintf("module holds %s, owes %s%s", balance, owed, denom),
				), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "module-balance", "module balance covers liabilities"), false
	}
}
