package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// Keeper of the escrow store
type Keeper struct {
	storeKey      storetypes.StoreKey
	cdc           codec.BinaryCodec
	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper
	authority     string

	// sigVerifier validates deposit co-signatures. Defaults to the
	// registered-key ed25519 verifier; replaceable at wiring time.
	sigVerifier types.SignatureVerifier
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new escrow Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	authority string,
) *Keeper {
	k := &Keeper{
		storeKey:      key,
		cdc:           cdc,
		bankKeeper:    bankKeeper,
		accountKeeper: accountKeeper,
		authority:     authority,
	}
	k.sigVerifier = ed25519Verifier{k: k}
	return k
}

// getStore returns the KVStore for the escrow module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetBankKeeper exposes the bank keeper for test fixtures
func (k Keeper) GetBankKeeper() types.BankKeeper {
	return k.bankKeeper
}

// GetModuleAddress returns the escrow module account address
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// SetSignatureVerifier replaces the deposit co-signature verifier. Intended
// for app wiring that plugs in a contract-identity verifier.
func (k *Keeper) SetSignatureVerifier(v types.SignatureVerifier) {
	k.sigVerifier = v
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
