package keeper_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/worklock-chain/worklock/x/escrow/keeper"
	"github.com/worklock-chain/worklock/x/escrow/types"
)

const testDenom = "uwork"

func newAddr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// fundAccount mints into the module account and forwards to addr
func fundAccount(t *testing.T, k *keeper.Keeper, ctx sdk.Context, addr sdk.AccAddress, amount int64) {
	t.Helper()
	coins := sdk.NewCoins(sdk.NewInt64Coin(testDenom, amount))
	bk := k.GetBankKeeper()
	require.NoError(t, bk.MintCoins(ctx, types.ModuleName, coins))
	require.NoError(t, bk.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins))
}

func balanceOf(k *keeper.Keeper, ctx sdk.Context, addr sdk.AccAddress) math.Int {
	return k.GetBankKeeper().GetBalance(ctx, addr, testDenom).Amount
}

// setupAdmin grants the admin role to a fresh account and registers an
// ed25519 signing key for it.
func setupAdmin(t *testing.T, k *keeper.Keeper, ctx sdk.Context) (sdk.AccAddress, ed25519.PrivateKey) {
	t.Helper()
	admin := newAddr()
	require.NoError(t, k.GrantRole(ctx, k.GetAuthority(), admin, types.RoleAdmin))

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	require.NoError(t, k.RegisterSigningKey(ctx, admin, pub))
	return admin, priv
}

// signDeposit builds a valid admin co-signature over the deposit's fields
func signDeposit(admin sdk.AccAddress, priv ed25519.PrivateKey, msg *types.MsgDeposit, expiration int64) *types.DepositAuthorization {
	amount := msg.Amount
	if amount.IsNil() {
		amount = math.ZeroInt()
	}
	digest := types.DepositCommitmentHash(
		msg.EscrowType,
		msg.ContractId,
		msg.Depositor,
		msg.Denom,
		msg.FeeConfig,
		amount.String(),
		msg.Milestones,
		expiration,
	)
	return &types.DepositAuthorization{
		Signer:     admin.String(),
		Expiration: expiration,
		Signature:  ed25519.Sign(priv, digest),
	}
}

// depositFixedPrice creates a fixed-price contract with a valid authorization
// and returns its id.
func depositFixedPrice(
	t *testing.T,
	k *keeper.Keeper,
	ctx sdk.Context,
	client, contractor sdk.AccAddress,
	amount int64,
	feeConfig types.FeeConfig,
) uint64 {
	t.Helper()
	admin, priv := setupAdmin(t, k, ctx)

	msg := &types.MsgDeposit{
		Depositor:  client.String(),
		EscrowType: types.ESCROW_TYPE_FIXED_PRICE,
		Denom:      testDenom,
		FeeConfig:  feeConfig,
		Amount:     math.NewInt(amount),
		Contractor: contractor.String(),
	}
	msg.Authorization = signDeposit(admin, priv, msg, ctx.BlockTime().Unix()+600)

	contractID, subID, _, err := k.Deposit(ctx, client, msg)
	require.NoError(t, err)
	require.EqualValues(t, 0, subID)
	return contractID
}

// depositHourly creates an hourly contract with a first weekly bill
func depositHourly(
	t *testing.T,
	k *keeper.Keeper,
	ctx sdk.Context,
	client, contractor sdk.AccAddress,
	amount int64,
	feeConfig types.FeeConfig,
) uint64 {
	t.Helper()
	msg := &types.MsgDeposit{
		Depositor:  client.String(),
		EscrowType: types.ESCROW_TYPE_HOURLY,
		Denom:      testDenom,
		FeeConfig:  feeConfig,
		Amount:     math.NewInt(amount),
		Contractor: contractor.String(),
	}
	contractID, _, _, err := k.Deposit(ctx, client, msg)
	require.NoError(t, err)
	return contractID
}
