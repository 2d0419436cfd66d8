package types

import (
	"encoding/hex"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgInitiateRecovery{}
	_ sdk.Msg = &MsgExecuteRecovery{}
	_ sdk.Msg = &MsgCancelRecovery{}
)

// MsgInitiateRecovery opens a timelocked ownership transfer for a lost
// account. Guardian only.
type MsgInitiateRecovery struct {
	Guardian    string      `json:"guardian"`
	EscrowType  EscrowType  `json:"escrow_type"`
	ContractId  uint64      `json:"contract_id"`
	SubId       uint64      `json:"sub_id"`
	OldAccount  string      `json:"old_account"`
	NewAccount  string      `json:"new_account"`
	AccountType AccountType `json:"account_type"`
}

// NewMsgInitiateRecovery creates a new MsgInitiateRecovery instance
func NewMsgInitiateRecovery(guardian string, escrowType EscrowType, contractID, subID uint64, oldAccount, newAccount string, accountType AccountType) *MsgInitiateRecovery {
	return &MsgInitiateRecovery{
		Guardian:    guardian,
		EscrowType:  escrowType,
		ContractId:  contractID,
		SubId:       subID,
		OldAccount:  oldAccount,
		NewAccount:  newAccount,
		AccountType: accountType,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgInitiateRecovery) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgInitiateRecovery) Type() string { return "initiate_recovery" }

// GetSigners implements the sdk.Msg interface
func (msg MsgInitiateRecovery) GetSigners() []sdk.AccAddress {
	guardian, err := sdk.AccAddressFromBech32(msg.Guardian)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{guardian}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgInitiateRecovery) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgInitiateRecovery) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Guardian); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid guardian address: %s", err)
	}
	return validateRecoveryTarget(msg.EscrowType, msg.OldAccount, msg.NewAccount, msg.AccountType)
}

// MsgExecuteRecovery claims an unlocked recovery. The new account sends it
// with the same parameters the guardian initiated with.
type MsgExecuteRecovery struct {
	EscrowType  EscrowType  `json:"escrow_type"`
	ContractId  uint64      `json:"contract_id"`
	SubId       uint64      `json:"sub_id"`
	OldAccount  string      `json:"old_account"`
	NewAccount  string      `json:"new_account"`
	AccountType AccountType `json:"account_type"`
}

// NewMsgExecuteRecovery creates a new MsgExecuteRecovery instance
func NewMsgExecuteRecovery(escrowType EscrowType, contractID, subID uint64, oldAccount, newAccount string, accountType AccountType) *MsgExecuteRecovery {
	return &MsgExecuteRecovery{
		EscrowType:  escrowType,
		ContractId:  contractID,
		SubId:       subID,
		OldAccount:  oldAccount,
		NewAccount:  newAccount,
		AccountType: accountType,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgExecuteRecovery) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgExecuteRecovery) Type() string { return "execute_recovery" }

// GetSigners implements the sdk.Msg interface
func (msg MsgExecuteRecovery) GetSigners() []sdk.AccAddress {
	newAccount, err := sdk.AccAddressFromBech32(msg.NewAccount)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{newAccount}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgExecuteRecovery) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgExecuteRecovery) ValidateBasic() error {
	return validateRecoveryTarget(msg.EscrowType, msg.OldAccount, msg.NewAccount, msg.AccountType)
}

// Hash returns the deterministic store key of the targeted recovery request
func (msg MsgExecuteRecovery) Hash() []byte {
	return RecoveryHash(msg.EscrowType, msg.ContractId, msg.SubId, msg.OldAccount, msg.NewAccount, msg.AccountType)
}

// MsgCancelRecovery marks a pending recovery as spent without transferring.
// Only the old account may send it.
type MsgCancelRecovery struct {
	OldAccount   string `json:"old_account"`
	RecoveryHash string `json:"recovery_hash"`
}

// NewMsgCancelRecovery creates a new MsgCancelRecovery instance
func NewMsgCancelRecovery(oldAccount, recoveryHash string) *MsgCancelRecovery {
	return &MsgCancelRecovery{OldAccount: oldAccount, RecoveryHash: recoveryHash}
}

// Route implements the sdk.Msg interface
func (msg MsgCancelRecovery) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCancelRecovery) Type() string { return "cancel_recovery" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCancelRecovery) GetSigners() []sdk.AccAddress {
	oldAccount, err := sdk.AccAddressFromBech32(msg.OldAccount)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{oldAccount}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCancelRecovery) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCancelRecovery) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.OldAccount); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid old account address: %s", err)
	}
	hash, err := hex.DecodeString(msg.RecoveryHash)
	if err != nil || len(hash) != 32 {
		return sdkerrors.Wrap(ErrRecoveryNotFound, "recovery hash must be 32 hex-encoded bytes")
	}
	return nil
}

func validateRecoveryTarget(escrowType EscrowType, oldAccount, newAccount string, accountType AccountType) error {
	if !escrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", escrowType)
	}
	if _, err := sdk.AccAddressFromBech32(oldAccount); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid old account address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(newAccount); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid new account address: %s", err)
	}
	if oldAccount == newAccount {
		return sdkerrors.Wrap(ErrInvalidAddress, "old and new accounts must differ")
	}
	if !accountType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidRole, "invalid account type %d", accountType)
	}
	return nil
}
