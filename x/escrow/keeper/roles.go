package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// Roles are stored as a tagged set: one store entry per (role, address)
// membership, so an account may hold any combination of roles.

// HasRole reports whether addr holds the given role
func (k Keeper) HasRole(ctx context.Context, addr sdk.AccAddress, role types.Role) bool {
	return k.getStore(ctx).Has(types.RoleKey(role, addr))
}

// IsAdmin reports whether addr holds the admin role
func (k Keeper) IsAdmin(ctx context.Context, addr sdk.AccAddress) bool {
	return k.HasRole(ctx, addr, types.RoleAdmin)
}

// IsGuardian reports whether addr holds the guardian role
func (k Keeper) IsGuardian(ctx context.Context, addr sdk.AccAddress) bool {
	return k.HasRole(ctx, addr, types.RoleGuardian)
}

// GrantRole grants a role to an account. Only the authority may do so.
func (k Keeper) GrantRole(ctx context.Context, authority string, addr sdk.AccAddress, role types.Role) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}
	if !role.IsValid() {
		return types.ErrInvalidRole.Wrapf("%q", role)
	}

	k.getStore(ctx).Set(types.RoleKey(role, addr), []byte{1})

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRoleGranted,
			sdk.NewAttribute(types.AttributeKeyAccount, addr.String()),
			sdk.NewAttribute(types.AttributeKeyRole, string(role)),
		),
	)
	return nil
}

// RevokeRole revokes a role from an account. Only the authority may do so.
// Revoking an absent role is a no-op.
func (k Keeper) RevokeRole(ctx context.Context, authority string, addr sdk.AccAddress, role types.Role) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}
	if !role.IsValid() {
		return types.ErrInvalidRole.Wrapf("%q", role)
	}

	k.getStore(ctx).Delete(types.RoleKey(role, addr))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRoleRevoked,
			sdk.NewAttribute(types.AttributeKeyAccount, addr.String()),
			sdk.NewAttribute(types.AttributeKeyRole, string(role)),
		),
	)
	return nil
}

// setRoleUnchecked writes a role grant without an authority check, for genesis
func (k Keeper) setRoleUnchecked(ctx context.Context, addr sdk.AccAddress, role types.Role) {
	k.getStore(ctx).Set(types.RoleKey(role, addr), []byte{1})
}

// iterateRole walks all accounts holding one role
func (k Keeper) iterateRole(ctx context.Context, role types.Role, fn func(addr sdk.AccAddress) bool) {
	store := k.getStore(ctx)
	prefix := types.RolePrefix(role)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(prefix):])
		if fn(addr) {
			break
		}
	}
}
