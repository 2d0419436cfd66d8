package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgSubmit{}
	_ sdk.Msg = &MsgApprove{}
	_ sdk.Msg = &MsgClaim{}
	_ sdk.Msg = &MsgClaimAll{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgRequestReturn{}
	_ sdk.Msg = &MsgApproveReturn{}
	_ sdk.Msg = &MsgCancelReturn{}
	_ sdk.Msg = &MsgCreateDispute{}
	_ sdk.Msg = &MsgResolveDispute{}
	_ sdk.Msg = &MsgRefill{}
)

// MsgDeposit creates a contract (ContractId 0) or adds funds to an existing
// one. Fixed-price and hourly shapes use Amount/Contractor/ContractorData;
// the milestone shape uses the Milestones batch instead. Fixed-price and
// milestone deposits must carry an admin co-signed Authorization.
type MsgDeposit struct {
	Depositor      string                `json:"depositor"`
	EscrowType     EscrowType            `json:"escrow_type"`
	ContractId     uint64                `json:"contract_id"`
	Denom          string                `json:"denom"`
	FeeConfig      FeeConfig             `json:"fee_config"`
	Amount         math.Int              `json:"amount"`
	Contractor     string                `json:"contractor,omitempty"`
	ContractorData []byte                `json:"contractor_data,omitempty"`
	Milestones     []MilestoneInput      `json:"milestones,omitempty"`
	Authorization  *DepositAuthorization `json:"authorization,omitempty"`
}

// NewMsgDeposit creates a new MsgDeposit instance
func NewMsgDeposit(depositor string, escrowType EscrowType, contractID uint64, denom string, feeConfig FeeConfig, amount math.Int) *MsgDeposit {
	return &MsgDeposit{
		Depositor:  depositor,
		EscrowType: escrowType,
		ContractId: contractID,
		Denom:      denom,
		FeeConfig:  feeConfig,
		Amount:     amount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgDeposit) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgDeposit) Type() string { return "deposit" }

// GetSigners implements the sdk.Msg interface
func (msg MsgDeposit) GetSigners() []sdk.AccAddress {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{depositor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDeposit) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid depositor address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid denom: %s", err)
	}
	if !msg.FeeConfig.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidFeeConfig, "%d", msg.FeeConfig)
	}
	if msg.Contractor != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Contractor); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid contractor address: %s", err)
		}
	}

	if msg.EscrowType == ESCROW_TYPE_MILESTONE {
		if len(msg.Milestones) == 0 {
			return sdkerrors.Wrap(ErrEmptyBatch, "milestone deposit requires at least one milestone")
		}
		for i, m := range msg.Milestones {
			if m.Amount.IsNil() || !m.Amount.IsPositive() {
				return sdkerrors.Wrapf(ErrInvalidAmount, "milestone %d amount must be positive", i)
			}
			if m.Contractor != "" {
				if _, err := sdk.AccAddressFromBech32(m.Contractor); err != nil {
					return sdkerrors.Wrapf(ErrInvalidAddress, "milestone %d contractor: %s", i, err)
				}
			}
		}
	} else {
		if len(msg.Milestones) != 0 {
			return sdkerrors.Wrapf(ErrInvalidEscrowType, "%s deposit cannot carry milestones", msg.EscrowType)
		}
		if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
			return sdkerrors.Wrap(ErrInvalidAmount, "deposit amount must be positive")
		}
	}

	if msg.Authorization != nil {
		if err := msg.Authorization.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MsgSubmit reveals the work delivery for a sub-unit. The revealed
// sha256(data||salt) must match the commitment stored at deposit time.
type MsgSubmit struct {
	Contractor string     `json:"contractor"`
	EscrowType EscrowType `json:"escrow_type"`
	ContractId uint64     `json:"contract_id"`
	SubId      uint64     `json:"sub_id"`
	Data       []byte     `json:"data"`
	Salt       []byte     `json:"salt"`
}

// NewMsgSubmit creates a new MsgSubmit instance
func NewMsgSubmit(contractor string, escrowType EscrowType, contractID, subID uint64, data, salt []byte) *MsgSubmit {
	return &MsgSubmit{
		Contractor: contractor,
		EscrowType: escrowType,
		ContractId: contractID,
		SubId:      subID,
		Data:       data,
		Salt:       salt,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSubmit) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSubmit) Type() string { return "submit" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSubmit) GetSigners() []sdk.AccAddress {
	contractor, err := sdk.AccAddressFromBech32(msg.Contractor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{contractor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSubmit) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSubmit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Contractor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid contractor address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	if len(msg.Data) == 0 {
		return sdkerrors.Wrap(ErrCommitmentMismatch, "submission data cannot be empty")
	}
	return nil
}

// MsgApprove earmarks part of a sub-unit's principal for the contractor to
// claim. Sent by the client or an admin.
type MsgApprove struct {
	Approver   string     `json:"approver"`
	EscrowType EscrowType `json:"escrow_type"`
	ContractId uint64     `json:"contract_id"`
	SubId      uint64     `json:"sub_id"`
	Amount     math.Int   `json:"amount"`
	Receiver   string     `json:"receiver"`
}

// NewMsgApprove creates a new MsgApprove instance
func NewMsgApprove(approver string, escrowType EscrowType, contractID, subID uint64, amount math.Int, receiver string) *MsgApprove {
	return &MsgApprove{
		Approver:   approver,
		EscrowType: escrowType,
		ContractId: contractID,
		SubId:      subID,
		Amount:     amount,
		Receiver:   receiver,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgApprove) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgApprove) Type() string { return "approve" }

// GetSigners implements the sdk.Msg interface
func (msg MsgApprove) GetSigners() []sdk.AccAddress {
	approver, err := sdk.AccAddressFromBech32(msg.Approver)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{approver}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgApprove) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgApprove) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Approver); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid approver address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Receiver); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid receiver address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "approve amount must be positive")
	}
	return nil
}

// MsgClaim pays out a sub-unit's earmarked claim amount to the contractor.
type MsgClaim struct {
	Contractor string     `json:"contractor"`
	EscrowType EscrowType `json:"escrow_type"`
	ContractId uint64     `json:"contract_id"`
	SubId      uint64     `json:"sub_id"`
}

// NewMsgClaim creates a new MsgClaim instance
func NewMsgClaim(contractor string, escrowType EscrowType, contractID, subID uint64) *MsgClaim {
	return &MsgClaim{
		Contractor: contractor,
		EscrowType: escrowType,
		ContractId: contractID,
		SubId:      subID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgClaim) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgClaim) Type() string { return "claim" }

// GetSigners implements the sdk.Msg interface
func (msg MsgClaim) GetSigners() []sdk.AccAddress {
	contractor, err := sdk.AccAddressFromBech32(msg.Contractor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{contractor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgClaim) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgClaim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Contractor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid contractor address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	return nil
}

// MsgClaimAll pays out every claimable sub-unit in an inclusive sub-id range
// with one combined transfer.
type MsgClaimAll struct {
	Contractor string     `json:"contractor"`
	EscrowType EscrowType `json:"escrow_type"`
	ContractId uint64     `json:"contract_id"`
	StartSubId uint64     `json:"start_sub_id"`
	EndSubId   uint64     `json:"end_sub_id"`
}

// NewMsgClaimAll creates a new MsgClaimAll instance
func NewMsgClaimAll(contractor string, escrowType EscrowType, contractID, startSubID, endSubID uint64) *MsgClaimAll {
	return &MsgClaimAll{
		Contractor: contractor,
		EscrowType: escrowType,
		ContractId: contractID,
		StartSubId: startSubID,
		EndSubId:   endSubID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgClaimAll) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgClaimAll) Type() string { return "claim_all" }

// GetSigners implements the sdk.Msg interface
func (msg MsgClaimAll) GetSigners() []sdk.AccAddress {
	contractor, err := sdk.AccAddressFromBech32(msg.Contractor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{contractor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgClaimAll) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgClaimAll) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Contractor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid contractor address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	if msg.EndSubId < msg.StartSubId {
		return sdkerrors.Wrap(ErrInvalidAmount, "end sub id below start sub id")
	}
	return nil
}

// MsgWithdraw returns a sub-unit's earmarked refund to the client.
type MsgWithdraw struct {
	Client     string     `json:"client"`
	EscrowType EscrowType `json:"escrow_type"`
	ContractId uint64     `json:"contract_id"`
	SubId      uint64     `json:"sub_id"`
}

// NewMsgWithdraw creates a new MsgWithdraw instance
func NewMsgWithdraw(client string, escrowType EscrowType, contractID, subID uint64) *MsgWithdraw {
	return &MsgWithdraw{
		Client:     client,
		EscrowType: escrowType,
		ContractId: contractID,
		SubId:      subID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdraw) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgWithdraw) Type() string { return "withdraw" }

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{client}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdraw) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid client address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	return nil
}

// MsgRequestReturn asks the contractor to hand back a sub-unit's funds.
type MsgRequestReturn struct {
	Client     string     `json:"client"`
	EscrowType EscrowType `json:"escrow_type"`
	ContractId uint64     `json:"contract_id"`
	SubId      uint64     `json:"sub_id"`
}

// NewMsgRequestReturn creates a new MsgRequestReturn instance
func NewMsgRequestReturn(client string, escrowType EscrowType, contractID, subID uint64) *MsgRequestReturn {
	return &MsgRequestReturn{
		Client:     client,
		EscrowType: escrowType,
		ContractId: contractID,
		SubId:      subID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRequestReturn) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRequestReturn) Type() string { return "request_return" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRequestReturn) GetSigners() []sdk.AccAddress {
	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{client}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRequestReturn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRequestReturn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid client address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	return nil
}

// MsgApproveReturn accepts a pending return request. Sent by the contractor
// or an admin.
type MsgApproveReturn struct {
	Approver   string     `json:"approver"`
	EscrowType EscrowType `json:"escrow_type"`
	ContractId uint64     `json:"contract_id"`
	SubId      uint64     `json:"sub_id"`
}

// NewMsgApproveReturn creates a new MsgApproveReturn instance
func NewMsgApproveReturn(approver string, escrowType EscrowType, contractID, subID uint64) *MsgApproveReturn {
	return &MsgApproveReturn{
		Approver:   approver,
		EscrowType: escrowType,
		ContractId: contractID,
		SubId:      subID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgApproveReturn) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgApproveReturn) Type() string { return "approve_return" }

// GetSigners implements the sdk.Msg interface
func (msg MsgApproveReturn) GetSigners() []sdk.AccAddress {
	approver, err := sdk.AccAddressFromBech32(msg.Approver)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{approver}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgApproveReturn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgApproveReturn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Approver); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid approver address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	return nil
}

// MsgCancelReturn withdraws a pending return request, restoring the
// memoized previous status.
type MsgCancelReturn struct {
	Client     string     `json:"client"`
	EscrowType EscrowType `json:"escrow_type"`
	ContractId uint64     `json:"contract_id"`
	SubId      uint64     `json:"sub_id"`
}

// NewMsgCancelReturn creates a new MsgCancelReturn instance
func NewMsgCancelReturn(client string, escrowType EscrowType, contractID, subID uint64) *MsgCancelReturn {
	return &MsgCancelReturn{
		Client:     client,
		EscrowType: escrowType,
		ContractId: contractID,
		SubId:      subID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCancelReturn) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCancelReturn) Type() string { return "cancel_return" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCancelReturn) GetSigners() []sdk.AccAddress {
	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{client}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCancelReturn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCancelReturn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid client address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	return nil
}

// MsgCreateDispute escalates a contested sub-unit to arbitration. Either
// party may send it.
type MsgCreateDispute struct {
	Party      string     `json:"party"`
	EscrowType EscrowType `json:"escrow_type"`
	ContractId uint64     `json:"contract_id"`
	SubId      uint64     `json:"sub_id"`
}

// NewMsgCreateDispute creates a new MsgCreateDispute instance
func NewMsgCreateDispute(party string, escrowType EscrowType, contractID, subID uint64) *MsgCreateDispute {
	return &MsgCreateDispute{
		Party:      party,
		EscrowType: escrowType,
		ContractId: contractID,
		SubId:      subID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreateDispute) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreateDispute) Type() string { return "create_dispute" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreateDispute) GetSigners() []sdk.AccAddress {
	party, err := sdk.AccAddressFromBech32(msg.Party)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{party}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreateDispute) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreateDispute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Party); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid party address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	return nil
}

// MsgResolveDispute settles a disputed sub-unit with an admin-decided split.
// ClientAmount becomes withdrawable by the client, ContractorAmount claimable
// by the contractor; together they must not exceed the remaining principal.
type MsgResolveDispute struct {
	Admin            string     `json:"admin"`
	EscrowType       EscrowType `json:"escrow_type"`
	ContractId       uint64     `json:"contract_id"`
	SubId            uint64     `json:"sub_id"`
	Winner           string     `json:"winner"`
	ClientAmount     math.Int   `json:"client_amount"`
	ContractorAmount math.Int   `json:"contractor_amount"`
}

// NewMsgResolveDispute creates a new MsgResolveDispute instance
func NewMsgResolveDispute(admin string, escrowType EscrowType, contractID, subID uint64, winner string, clientAmount, contractorAmount math.Int) *MsgResolveDispute {
	return &MsgResolveDispute{
		Admin:            admin,
		EscrowType:       escrowType,
		ContractId:       contractID,
		SubId:            subID,
		Winner:           winner,
		ClientAmount:     clientAmount,
		ContractorAmount: contractorAmount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgResolveDispute) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgResolveDispute) Type() string { return "resolve_dispute" }

// GetSigners implements the sdk.Msg interface
func (msg MsgResolveDispute) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgResolveDispute) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgResolveDispute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Winner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid winner address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	if msg.ClientAmount.IsNil() || msg.ClientAmount.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "client amount cannot be negative")
	}
	if msg.ContractorAmount.IsNil() || msg.ContractorAmount.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "contractor amount cannot be negative")
	}
	return nil
}

// MsgRefill tops up a sub-unit's principal, or an hourly contract's fee-free
// prepayment pool.
type MsgRefill struct {
	Client     string     `json:"client"`
	EscrowType EscrowType `json:"escrow_type"`
	ContractId uint64     `json:"contract_id"`
	SubId      uint64     `json:"sub_id"`
	Amount     math.Int   `json:"amount"`
	RefillType RefillType `json:"refill_type"`
}

// NewMsgRefill creates a new MsgRefill instance
func NewMsgRefill(client string, escrowType EscrowType, contractID, subID uint64, amount math.Int, refillType RefillType) *MsgRefill {
	return &MsgRefill{
		Client:     client,
		EscrowType: escrowType,
		ContractId: contractID,
		SubId:      subID,
		Amount:     amount,
		RefillType: refillType,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRefill) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRefill) Type() string { return "refill" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRefill) GetSigners() []sdk.AccAddress {
	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{client}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRefill) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRefill) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid client address: %s", err)
	}
	if !msg.EscrowType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidEscrowType, "%d", msg.EscrowType)
	}
	if !msg.RefillType.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid refill type %d", msg.RefillType)
	}
	if msg.RefillType == REFILL_TYPE_PREPAYMENT && msg.EscrowType != ESCROW_TYPE_HOURLY {
		return sdkerrors.Wrap(ErrInvalidEscrowType, "prepayment refill requires an hourly contract")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "refill amount must be positive")
	}
	return nil
}
