package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Submit(context.Context, *MsgSubmit) (*MsgSubmitResponse, error)
	Approve(context.Context, *MsgApprove) (*MsgApproveResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	ClaimAll(context.Context, *MsgClaimAll) (*MsgClaimAllResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	RequestReturn(context.Context, *MsgRequestReturn) (*MsgRequestReturnResponse, error)
	ApproveReturn(context.Context, *MsgApproveReturn) (*MsgApproveReturnResponse, error)
	CancelReturn(context.Context, *MsgCancelReturn) (*MsgCancelReturnResponse, error)
	CreateDispute(context.Context, *MsgCreateDispute) (*MsgCreateDisputeResponse, error)
	ResolveDispute(context.Context, *MsgResolveDispute) (*MsgResolveDisputeResponse, error)
	Refill(context.Context, *MsgRefill) (*MsgRefillResponse, error)
	SetFeeRates(context.Context, *MsgSetFeeRates) (*MsgSetFeeRatesResponse, error)
	RegisterSigningKey(context.Context, *MsgRegisterSigningKey) (*MsgRegisterSigningKeyResponse, error)
	GrantRole(context.Context, *MsgGrantRole) (*MsgGrantRoleResponse, error)
	RevokeRole(context.Context, *MsgRevokeRole) (*MsgRevokeRoleResponse, error)
	InitiateRecovery(context.Context, *MsgInitiateRecovery) (*MsgInitiateRecoveryResponse, error)
	ExecuteRecovery(context.Context, *MsgExecuteRecovery) (*MsgExecuteRecoveryResponse, error)
	CancelRecovery(context.Context, *MsgCancelRecovery) (*MsgCancelRecoveryResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Response types

// MsgDepositResponse defines the response for Deposit
type MsgDepositResponse struct {
	ContractId uint64   `json:"contract_id"`
	SubId      uint64   `json:"sub_id"`
	FeeCharged math.Int `json:"fee_charged"`
}

// MsgSubmitResponse defines the response for Submit
type MsgSubmitResponse struct{}

// MsgApproveResponse defines the response for Approve
type MsgApproveResponse struct {
	AmountToClaim math.Int `json:"amount_to_claim"`
}

// MsgClaimResponse defines the response for Claim
type MsgClaimResponse struct {
	NetAmount math.Int `json:"net_amount"`
	Fee       math.Int `json:"fee"`
}

// MsgClaimAllResponse defines the response for ClaimAll
type MsgClaimAllResponse struct {
	UnitsClaimed uint64   `json:"units_claimed"`
	NetAmount    math.Int `json:"net_amount"`
	Fee          math.Int `json:"fee"`
}

// MsgWithdrawResponse defines the response for Withdraw
type MsgWithdrawResponse struct {
	Amount    math.Int `json:"amount"`
	FeeRefund math.Int `json:"fee_refund"`
}

// MsgRequestReturnResponse defines the response for RequestReturn
type MsgRequestReturnResponse struct{}

// MsgApproveReturnResponse defines the response for ApproveReturn
type MsgApproveReturnResponse struct {
	AmountToWithdraw math.Int `json:"amount_to_withdraw"`
}

// MsgCancelReturnResponse defines the response for CancelReturn
type MsgCancelReturnResponse struct{}

// MsgCreateDisputeResponse defines the response for CreateDispute
type MsgCreateDisputeResponse struct{}

// MsgResolveDisputeResponse defines the response for ResolveDispute
type MsgResolveDisputeResponse struct{}

// MsgRefillResponse defines the response for Refill
type MsgRefillResponse struct {
	FeeCharged math.Int `json:"fee_charged"`
}

// MsgSetFeeRatesResponse defines the response for SetFeeRates
type MsgSetFeeRatesResponse struct{}

// MsgRegisterSigningKeyResponse defines the response for RegisterSigningKey
type MsgRegisterSigningKeyResponse struct{}

// MsgGrantRoleResponse defines the response for GrantRole
type MsgGrantRoleResponse struct{}

// MsgRevokeRoleResponse defines the response for RevokeRole
type MsgRevokeRoleResponse struct{}

// MsgInitiateRecoveryResponse defines the response for InitiateRecovery
type MsgInitiateRecoveryResponse struct {
	RecoveryHash string `json:"recovery_hash"`
	UnlockAt     int64  `json:"unlock_at"`
}

// MsgExecuteRecoveryResponse defines the response for ExecuteRecovery
type MsgExecuteRecoveryResponse struct{}

// MsgCancelRecoveryResponse defines the response for CancelRecovery
type MsgCancelRecoveryResponse struct{}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
