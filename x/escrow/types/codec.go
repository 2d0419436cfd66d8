package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
)

// RegisterLegacyAminoCodec registers the necessary x/escrow interfaces and concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgDeposit{}, "worklock/escrow/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgSubmit{}, "worklock/escrow/MsgSubmit", nil)
	cdc.RegisterConcrete(&MsgApprove{}, "worklock/escrow/MsgApprove", nil)
	cdc.RegisterConcrete(&MsgClaim{}, "worklock/escrow/MsgClaim", nil)
	cdc.RegisterConcrete(&MsgClaimAll{}, "worklock/escrow/MsgClaimAll", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "worklock/escrow/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgRequestReturn{}, "worklock/escrow/MsgRequestReturn", nil)
	cdc.RegisterConcrete(&MsgApproveReturn{}, "worklock/escrow/MsgApproveReturn", nil)
	cdc.RegisterConcrete(&MsgCancelReturn{}, "worklock/escrow/MsgCancelReturn", nil)
	cdc.RegisterConcrete(&MsgCreateDispute{}, "worklock/escrow/MsgCreateDispute", nil)
	cdc.RegisterConcrete(&MsgResolveDispute{}, "worklock/escrow/MsgResolveDispute", nil)
	cdc.RegisterConcrete(&MsgRefill{}, "worklock/escrow/MsgRefill", nil)
	cdc.RegisterConcrete(&MsgSetFeeRates{}, "worklock/escrow/MsgSetFeeRates", nil)
	cdc.RegisterConcrete(&MsgRegisterSigningKey{}, "worklock/escrow/MsgRegisterSigningKey", nil)
	cdc.RegisterConcrete(&MsgGrantRole{}, "worklock/escrow/MsgGrantRole", nil)
	cdc.RegisterConcrete(&MsgRevokeRole{}, "worklock/escrow/MsgRevokeRole", nil)
	cdc.RegisterConcrete(&MsgInitiateRecovery{}, "worklock/escrow/MsgInitiateRecovery", nil)
	cdc.RegisterConcrete(&MsgExecuteRecovery{}, "worklock/escrow/MsgExecuteRecovery", nil)
	cdc.RegisterConcrete(&MsgCancelRecovery{}, "worklock/escrow/MsgCancelRecovery", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "worklock/escrow/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/escrow interfaces types with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgDeposit{},
		&MsgSubmit{},
		&MsgApprove{},
		&MsgClaim{},
		&MsgClaimAll{},
		&MsgWithdraw{},
		&MsgRequestReturn{},
		&MsgApproveReturn{},
		&MsgCancelReturn{},
		&MsgCreateDispute{},
		&MsgResolveDispute{},
		&MsgRefill{},
		&MsgSetFeeRates{},
		&MsgRegisterSigningKey{},
		&MsgGrantRole{},
		&MsgRevokeRole{},
		&MsgInitiateRecovery{},
		&MsgExecuteRecovery{},
		&MsgCancelRecovery{},
		&MsgUpdateParams{},
	)
}

// ModuleCdc is the amino codec used for GetSignBytes
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)

	proto.RegisterType(&MsgDeposit{}, "worklock.escrow.MsgDeposit")
	proto.RegisterType(&MsgSubmit{}, "worklock.escrow.MsgSubmit")
	proto.RegisterType(&MsgApprove{}, "worklock.escrow.MsgApprove")
	proto.RegisterType(&MsgClaim{}, "worklock.escrow.MsgClaim")
	proto.RegisterType(&MsgClaimAll{}, "worklock.escrow.MsgClaimAll")
	proto.RegisterType(&MsgWithdraw{}, "worklock.escrow.MsgWithdraw")
	proto.RegisterType(&MsgRequestReturn{}, "worklock.escrow.MsgRequestReturn")
	proto.RegisterType(&MsgApproveReturn{}, "worklock.escrow.MsgApproveReturn")
	proto.RegisterType(&MsgCancelReturn{}, "worklock.escrow.MsgCancelReturn")
	proto.RegisterType(&MsgCreateDispute{}, "worklock.escrow.MsgCreateDispute")
	proto.RegisterType(&MsgResolveDispute{}, "worklock.escrow.MsgResolveDispute")
	proto.RegisterType(&MsgRefill{}, "worklock.escrow.MsgRefill")
	proto.RegisterType(&MsgSetFeeRates{}, "worklock.escrow.MsgSetFeeRates")
	proto.RegisterType(&MsgRegisterSigningKey{}, "worklock.escrow.MsgRegisterSigningKey")
	proto.RegisterType(&MsgGrantRole{}, "worklock.escrow.MsgGrantRole")
	proto.RegisterType(&MsgRevokeRole{}, "worklock.escrow.MsgRevokeRole")
	proto.RegisterType(&MsgInitiateRecovery{}, "worklock.escrow.MsgInitiateRecovery")
	proto.RegisterType(&MsgExecuteRecovery{}, "worklock.escrow.MsgExecuteRecovery")
	proto.RegisterType(&MsgCancelRecovery{}, "worklock.escrow.MsgCancelRecovery")
	proto.RegisterType(&MsgUpdateParams{}, "worklock.escrow.MsgUpdateParams")
}
