package types

import "fmt"

// gogoproto Message shims for the hand-written message types, required by the
// sdk.Msg interface and the interface registry.

func (msg *MsgDeposit) Reset()         { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDeposit) ProtoMessage()  {}

func (msg *MsgSubmit) Reset()         { *msg = MsgSubmit{} }
func (msg *MsgSubmit) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSubmit) ProtoMessage()  {}

func (msg *MsgApprove) Reset()         { *msg = MsgApprove{} }
func (msg *MsgApprove) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgApprove) ProtoMessage()  {}

func (msg *MsgClaim) Reset()         { *msg = MsgClaim{} }
func (msg *MsgClaim) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgClaim) ProtoMessage()  {}

func (msg *MsgClaimAll) Reset()         { *msg = MsgClaimAll{} }
func (msg *MsgClaimAll) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgClaimAll) ProtoMessage()  {}

func (msg *MsgWithdraw) Reset()         { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdraw) ProtoMessage()  {}

func (msg *MsgRequestReturn) Reset()         { *msg = MsgRequestReturn{} }
func (msg *MsgRequestReturn) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRequestReturn) ProtoMessage()  {}

func (msg *MsgApproveReturn) Reset()         { *msg = MsgApproveReturn{} }
func (msg *MsgApproveReturn) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgApproveReturn) ProtoMessage()  {}

func (msg *MsgCancelReturn) Reset()         { *msg = MsgCancelReturn{} }
func (msg *MsgCancelReturn) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCancelReturn) ProtoMessage()  {}

func (msg *MsgCreateDispute) Reset()         { *msg = MsgCreateDispute{} }
func (msg *MsgCreateDispute) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCreateDispute) ProtoMessage()  {}

func (msg *MsgResolveDispute) Reset()         { *msg = MsgResolveDispute{} }
func (msg *MsgResolveDispute) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgResolveDispute) ProtoMessage()  {}

func (msg *MsgRefill) Reset()         { *msg = MsgRefill{} }
func (msg *MsgRefill) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRefill) ProtoMessage()  {}

func (msg *MsgSetFeeRates) Reset()         { *msg = MsgSetFeeRates{} }
func (msg *MsgSetFeeRates) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetFeeRates) ProtoMessage()  {}

func (msg *MsgRegisterSigningKey) Reset()         { *msg = MsgRegisterSigningKey{} }
func (msg *MsgRegisterSigningKey) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRegisterSigningKey) ProtoMessage()  {}

func (msg *MsgGrantRole) Reset()         { *msg = MsgGrantRole{} }
func (msg *MsgGrantRole) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgGrantRole) ProtoMessage()  {}

func (msg *MsgRevokeRole) Reset()         { *msg = MsgRevokeRole{} }
func (msg *MsgRevokeRole) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRevokeRole) ProtoMessage()  {}

func (msg *MsgInitiateRecovery) Reset()         { *msg = MsgInitiateRecovery{} }
func (msg *MsgInitiateRecovery) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgInitiateRecovery) ProtoMessage()  {}

func (msg *MsgExecuteRecovery) Reset()         { *msg = MsgExecuteRecovery{} }
func (msg *MsgExecuteRecovery) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgExecuteRecovery) ProtoMessage()  {}

func (msg *MsgCancelRecovery) Reset()         { *msg = MsgCancelRecovery{} }
func (msg *MsgCancelRecovery) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCancelRecovery) ProtoMessage()  {}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParams) ProtoMessage()  {}

func (gs *GenesisState) Reset()         { *gs = GenesisState{} }
func (gs *GenesisState) String() string { return fmt.Sprintf("%+v", *gs) }
func (gs *GenesisState) ProtoMessage()  {}
