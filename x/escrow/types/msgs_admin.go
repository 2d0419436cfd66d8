package types

import (
	"crypto/ed25519"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSetFeeRates{}
	_ sdk.Msg = &MsgRegisterSigningKey{}
	_ sdk.Msg = &MsgGrantRole{}
	_ sdk.Msg = &MsgRevokeRole{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSetFeeRates writes a coverage/claim rate pair at one resolution tier.
// The CONTRACT tier uses EscrowType+ContractId, the INSTANCE tier EscrowType
// only, and the USER tier Account only.
type MsgSetFeeRates struct {
	Admin       string     `json:"admin"`
	Tier        FeeTier    `json:"tier"`
	EscrowType  EscrowType `json:"escrow_type,omitempty"`
	ContractId  uint64     `json:"contract_id,omitempty"`
	Account     string     `json:"account,omitempty"`
	CoverageBps uint32     `json:"coverage_bps"`
	ClaimBps    uint32     `json:"claim_bps"`
}

// NewMsgSetFeeRates creates a new MsgSetFeeRates instance
func NewMsgSetFeeRates(admin string, tier FeeTier, coverageBps, claimBps uint32) *MsgSetFeeRates {
	return &MsgSetFeeRates{
		Admin:       admin,
		Tier:        tier,
		CoverageBps: coverageBps,
		ClaimBps:    claimBps,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSetFeeRates) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetFeeRates) Type() string { return "set_fee_rates" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetFeeRates) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetFeeRates) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetFeeRates) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	if !msg.Tier.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid fee tier %d", msg.Tier)
	}
	switch msg.Tier {
	case FEE_TIER_CONTRACT, FEE_TIER_INSTANCE:
		if !msg.EscrowType.IsValid() {
			return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
		}
	case FEE_TIER_USER:
		if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid account address: %s", err)
		}
	}
	return nil
}

// MsgRegisterSigningKey registers the ed25519 public key that validates an
// admin's deposit co-signatures.
type MsgRegisterSigningKey struct {
	Admin  string `json:"admin"`
	PubKey []byte `json:"pub_key"`
}

// NewMsgRegisterSigningKey creates a new MsgRegisterSigningKey instance
func NewMsgRegisterSigningKey(admin string, pubKey []byte) *MsgRegisterSigningKey {
	return &MsgRegisterSigningKey{Admin: admin, PubKey: pubKey}
}

// Route implements the sdk.Msg interface
func (msg MsgRegisterSigningKey) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRegisterSigningKey) Type() string { return "register_signing_key" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRegisterSigningKey) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRegisterSigningKey) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRegisterSigningKey) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	if len(msg.PubKey) != ed25519.PublicKeySize {
		return sdkerrors.Wrapf(ErrInvalidAuthorization, "signing key must be %d bytes, got %d", ed25519.PublicKeySize, len(msg.PubKey))
	}
	return nil
}

// MsgGrantRole grants a platform role to an account. Authority only.
type MsgGrantRole struct {
	Authority string `json:"authority"`
	Account   string `json:"account"`
	Role      Role   `json:"role"`
}

// NewMsgGrantRole creates a new MsgGrantRole instance
func NewMsgGrantRole(authority, account string, role Role) *MsgGrantRole {
	return &MsgGrantRole{Authority: authority, Account: account, Role: role}
}

// Route implements the sdk.Msg interface
func (msg MsgGrantRole) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgGrantRole) Type() string { return "grant_role" }

// GetSigners implements the sdk.Msg interface
func (msg MsgGrantRole) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgGrantRole) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgGrantRole) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid account address: %s", err)
	}
	if !msg.Role.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidRole, "%q", msg.Role)
	}
	return nil
}

// MsgRevokeRole revokes a platform role from an account. Authority only.
type MsgRevokeRole struct {
	Authority string `json:"authority"`
	Account   string `json:"account"`
	Role      Role   `json:"role"`
}

// NewMsgRevokeRole creates a new MsgRevokeRole instance
func NewMsgRevokeRole(authority, account string, role Role) *MsgRevokeRole {
	return &MsgRevokeRole{Authority: authority, Account: account, Role: role}
}

// Route implements the sdk.Msg interface
func (msg MsgRevokeRole) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRevokeRole) Type() string { return "revoke_role" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRevokeRole) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRevokeRole) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRevokeRole) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid account address: %s", err)
	}
	if !msg.Role.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidRole, "%q", msg.Role)
	}
	return nil
}

// MsgUpdateParams replaces the module parameters. Authority only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateParams) Type() string { return "update_params" }

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}
