package keeper

import (
	"context"
	"crypto/ed25519"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

// RegisterSigningKey stores the ed25519 public key that validates an admin's
// deposit co-signatures. Re-registering rotates the key.
func (k Keeper) RegisterSigningKey(ctx context.Context, admin sdk.AccAddress, pubKey []byte) error {
	if !k.IsAdmin(ctx, admin) {
		return types.ErrUnauthorized.Wrapf("%s lacks the admin role", admin)
	}
	if len(pubKey) != ed25519.PublicKeySize {
		return types.ErrInvalidAuthorization.Wrapf("signing key must be %d bytes, got %d", ed25519.PublicKeySize, len(pubKey))
	}

	k.getStore(ctx).Set(types.SigningKeyKey(admin), pubKey)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSigningKeyRegistered,
			sdk.NewAttribute(types.AttributeKeyAccount, admin.String()),
		),
	)
	return nil
}

// GetSigningKey returns the registered signing key for an account
func (k Keeper) GetSigningKey(ctx context.Context, addr sdk.AccAddress) ([]byte, error) {
	bz := k.getStore(ctx).Get(types.SigningKeyKey(addr))
	if bz == nil {
		return nil, types.ErrUnknownSigningKey.Wrapf("%s", addr)
	}
	return bz, nil
}

// ed25519Verifier is the default SignatureVerifier: an ed25519 check against
// the signer's registered signing key.
type ed25519Verifier struct {
	k *Keeper
}

var _ types.SignatureVerifier = ed25519Verifier{}

// IsValidSignature implements types.SignatureVerifier
func (v ed25519Verifier) IsValidSignature(ctx context.Context, signer sdk.AccAddress, digest, signature []byte) error {
	pubKey, err := v.k.GetSigningKey(ctx, signer)
	if err != nil {
		return err
	}
	if !ed25519.Verify(ed25519.PublicKey(pubKey), digest, signature) {
		return types.ErrInvalidAuthorization.Wrap("signature verification failed")
	}
	return nil
}

// VerifyDepositAuthorization checks the admin co-signature a fixed-price or
// milestone deposit must carry. The signed digest commits to the deposit's
// business fields plus the expiration, so verification failing for any reason
// rejects the deposit before any state is touched.
func (k Keeper) VerifyDepositAuthorization(ctx context.Context, msg *types.MsgDeposit) error {
	auth := msg.Authorization
	if auth == nil {
		return types.ErrInvalidAuthorization.Wrapf("%s deposit requires an authorization", msg.EscrowType)
	}
	if err := auth.Validate(); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	if auth.Expiration <= now {
		return types.ErrAuthorizationExpired.Wrapf("expired at %d, block time %d", auth.Expiration, now)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if auth.Expiration > now+params.MaxAuthorizationTTLSeconds {
		return types.ErrInvalidAuthorization.Wrapf("expiration %d exceeds max ttl of %ds", auth.Expiration, params.MaxAuthorizationTTLSeconds)
	}

	signer, err := sdk.AccAddressFromBech32(auth.Signer)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("invalid authorization signer: %v", err)
	}
	if !k.IsAdmin(ctx, signer) {
		return types.ErrUnauthorized.Wrapf("authorization signer %s lacks the admin role", signer)
	}

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
		auth.Expiration,
	)

	return k.sigVerifier.IsValidSignature(ctx, signer, digest, auth.Signature)
}
