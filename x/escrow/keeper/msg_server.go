package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the escrow MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Deposit handles contract creation and fund top-ups
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deposit: validate: %w", err)
	}
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, fmt.Errorf("Deposit: invalid depositor address: %w", err)
	}

	contractID, subID, fee, err := ms.Keeper.Deposit(goCtx, depositor, msg)
	if err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}
	return &types.MsgDepositResponse{ContractId: contractID, SubId: subID, FeeCharged: fee}, nil
}

// Submit handles work delivery reveals
func (ms msgServer) Submit(goCtx context.Context, msg *types.MsgSubmit) (*types.MsgSubmitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Submit: validate: %w", err)
	}
	contractor, err := sdk.AccAddressFromBech32(msg.Contractor)
	if err != nil {
		return nil, fmt.Errorf("Submit: invalid contractor address: %w", err)
	}

	if err := ms.Keeper.Submit(goCtx, contractor, msg.EscrowType, msg.ContractId, msg.SubId, msg.Data, msg.Salt); err != nil {
		return nil, fmt.Errorf("Submit: %w", err)
	}
	return &types.MsgSubmitResponse{}, nil
}

// Approve handles payment approvals
func (ms msgServer) Approve(goCtx context.Context, msg *types.MsgApprove) (*types.MsgApproveResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Approve: validate: %w", err)
	}
	approver, err := sdk.AccAddressFromBech32(msg.Approver)
	if err != nil {
		return nil, fmt.Errorf("Approve: invalid approver address: %w", err)
	}

	amountToClaim, err := ms.Keeper.Approve(goCtx, approver, msg.EscrowType, msg.ContractId, msg.SubId, msg.Amount, msg.Receiver)
	if err != nil {
		return nil, fmt.Errorf("Approve: %w", err)
	}
	return &types.MsgApproveResponse{AmountToClaim: amountToClaim}, nil
}

// Claim handles contractor payouts
func (ms msgServer) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Claim: validate: %w", err)
	}
	contractor, err := sdk.AccAddressFromBech32(msg.Contractor)
	if err != nil {
		return nil, fmt.Errorf("Claim: invalid contractor address: %w", err)
	}

	net, fee, err := ms.Keeper.Claim(goCtx, contractor, msg.EscrowType, msg.ContractId, msg.SubId)
	if err != nil {
		return nil, fmt.Errorf("Claim: %w", err)
	}
	return &types.MsgClaimResponse{NetAmount: net, Fee: fee}, nil
}

// ClaimAll handles batched contractor payouts over a sub-id range
func (ms msgServer) ClaimAll(goCtx context.Context, msg *types.MsgClaimAll) (*types.MsgClaimAllResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimAll: validate: %w", err)
	}
	contractor, err := sdk.AccAddressFromBech32(msg.Contractor)
	if err != nil {
		return nil, fmt.Errorf("ClaimAll: invalid contractor address: %w", err)
	}

	units, net, fee, err := ms.Keeper.ClaimAll(goCtx, contractor, msg.EscrowType, msg.ContractId, msg.StartSubId, msg.EndSubId)
	if err != nil {
		return nil, fmt.Errorf("ClaimAll: %w", err)
	}
	return &types.MsgClaimAllResponse{UnitsClaimed: units, NetAmount: net, Fee: fee}, nil
}

// Withdraw handles client refunds
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}
	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: invalid client address: %w", err)
	}

	amount, feeRefund, err := ms.Keeper.Withdraw(goCtx, client, msg.EscrowType, msg.ContractId, msg.SubId)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}
	return &types.MsgWithdrawResponse{Amount: amount, FeeRefund: feeRefund}, nil
}

// RequestReturn handles client return requests
func (ms msgServer) RequestReturn(goCtx context.Context, msg *types.MsgRequestReturn) (*types.MsgRequestReturnResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RequestReturn: validate: %w", err)
	}
	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		return nil, fmt.Errorf("RequestReturn: invalid client address: %w", err)
	}

	if err := ms.Keeper.RequestReturn(goCtx, client, msg.EscrowType, msg.ContractId, msg.SubId); err != nil {
		return nil, fmt.Errorf("RequestReturn: %w", err)
	}
	return &types.MsgRequestReturnResponse{}, nil
}

// ApproveReturn handles return acceptances
func (ms msgServer) ApproveReturn(goCtx context.Context, msg *types.MsgApproveReturn) (*types.MsgApproveReturnResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ApproveReturn: validate: %w", err)
	}
	approver, err := sdk.AccAddressFromBech32(msg.Approver)
	if err != nil {
		return nil, fmt.Errorf("ApproveReturn: invalid approver address: %w", err)
	}

	amountToWithdraw, err := ms.Keeper.ApproveReturn(goCtx, approver, msg.EscrowType, msg.ContractId, msg.SubId)
	if err != nil {
		return nil, fmt.Errorf("ApproveReturn: %w", err)
	}
	return &types.MsgApproveReturnResponse{AmountToWithdraw: amountToWithdraw}, nil
}

// CancelReturn handles return request cancellations
func (ms msgServer) CancelReturn(goCtx context.Context, msg *types.MsgCancelReturn) (*types.MsgCancelReturnResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelReturn: validate: %w", err)
	}
	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		return nil, fmt.Errorf("CancelReturn: invalid client address: %w", err)
	}

	if err := ms.Keeper.CancelReturn(goCtx, client, msg.EscrowType, msg.ContractId, msg.SubId); err != nil {
		return nil, fmt.Errorf("CancelReturn: %w", err)
	}
	return &types.MsgCancelReturnResponse{}, nil
}

// CreateDispute handles dispute escalations
func (ms msgServer) CreateDispute(goCtx context.Context, msg *types.MsgCreateDispute) (*types.MsgCreateDisputeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateDispute: validate: %w", err)
	}
	party, err := sdk.AccAddressFromBech32(msg.Party)
	if err != nil {
		return nil, fmt.Errorf("CreateDispute: invalid party address: %w", err)
	}

	if err := ms.Keeper.CreateDispute(goCtx, party, msg.EscrowType, msg.ContractId, msg.SubId); err != nil {
		return nil, fmt.Errorf("CreateDispute: %w", err)
	}
	return &types.MsgCreateDisputeResponse{}, nil
}

// ResolveDispute handles admin dispute settlements
func (ms msgServer) ResolveDispute(goCtx context.Context, msg *types.MsgResolveDispute) (*types.MsgResolveDisputeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ResolveDispute: validate: %w", err)
	}
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("ResolveDispute: invalid admin address: %w", err)
	}

	if err := ms.Keeper.ResolveDispute(goCtx, admin, msg.EscrowType, msg.ContractId, msg.SubId, msg.Winner, msg.ClientAmount, msg.ContractorAmount); err != nil {
		return nil, fmt.Errorf("ResolveDispute: %w", err)
	}
	return &types.MsgResolveDisputeResponse{}, nil
}

// Refill handles principal and prepayment top-ups
func (ms msgServer) Refill(goCtx context.Context, msg *types.MsgRefill) (*types.MsgRefillResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Refill: validate: %w", err)
	}
	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		return nil, fmt.Errorf("Refill: invalid client address: %w", err)
	}

	fee, err := ms.Keeper.Refill(goCtx, client, msg.EscrowType, msg.ContractId, msg.SubId, msg.Amount, msg.RefillType)
	if err != nil {
		return nil, fmt.Errorf("Refill: %w", err)
	}
	return &types.MsgRefillResponse{FeeCharged: fee}, nil
}

// SetFeeRates handles admin fee tier updates
func (ms msgServer) SetFeeRates(goCtx context.Context, msg *types.MsgSetFeeRates) (*types.MsgSetFeeRatesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetFeeRates: validate: %w", err)
	}
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("SetFeeRates: invalid admin address: %w", err)
	}

	if err := ms.Keeper.SetFeeRates(goCtx, admin, msg.Tier, msg.EscrowType, msg.ContractId, msg.Account, msg.CoverageBps, msg.ClaimBps); err != nil {
		return nil, fmt.Errorf("SetFeeRates: %w", err)
	}
	return &types.MsgSetFeeRatesResponse{}, nil
}

// RegisterSigningKey handles admin signing key registration
func (ms msgServer) RegisterSigningKey(goCtx context.Context, msg *types.MsgRegisterSigningKey) (*types.MsgRegisterSigningKeyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RegisterSigningKey: validate: %w", err)
	}
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("RegisterSigningKey: invalid admin address: %w", err)
	}

	if err := ms.Keeper.RegisterSigningKey(goCtx, admin, msg.PubKey); err != nil {
		return nil, fmt.Errorf("RegisterSigningKey: %w", err)
	}
	return &types.MsgRegisterSigningKeyResponse{}, nil
}

// GrantRole handles role grants
func (ms msgServer) GrantRole(goCtx context.Context, msg *types.MsgGrantRole) (*types.MsgGrantRoleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("GrantRole: validate: %w", err)
	}
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, fmt.Errorf("GrantRole: invalid account address: %w", err)
	}

	if err := ms.Keeper.GrantRole(goCtx, msg.Authority, account, msg.Role); err != nil {
		return nil, fmt.Errorf("GrantRole: %w", err)
	}
	return &types.MsgGrantRoleResponse{}, nil
}

// RevokeRole handles role revocations
func (ms msgServer) RevokeRole(goCtx context.Context, msg *types.MsgRevokeRole) (*types.MsgRevokeRoleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RevokeRole: validate: %w", err)
	}
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, fmt.Errorf("RevokeRole: invalid account address: %w", err)
	}

	if err := ms.Keeper.RevokeRole(goCtx, msg.Authority, account, msg.Role); err != nil {
		return nil, fmt.Errorf("RevokeRole: %w", err)
	}
	return &types.MsgRevokeRoleResponse{}, nil
}

// InitiateRecovery handles guardian recovery initiations
func (ms msgServer) InitiateRecovery(goCtx context.Context, msg *types.MsgInitiateRecovery) (*types.MsgInitiateRecoveryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("InitiateRecovery: validate: %w", err)
	}
	guardian, err := sdk.AccAddressFromBech32(msg.Guardian)
	if err != nil {
		return nil, fmt.Errorf("InitiateRecovery: invalid guardian address: %w", err)
	}

	hash, unlockAt, err := ms.Keeper.InitiateRecovery(goCtx, guardian, msg)
	if err != nil {
		return nil, fmt.Errorf("InitiateRecovery: %w", err)
	}
	return &types.MsgInitiateRecoveryResponse{RecoveryHash: hash, UnlockAt: unlockAt}, nil
}

// ExecuteRecovery handles self-claimed recovery executions
func (ms msgServer) ExecuteRecovery(goCtx context.Context, msg *types.MsgExecuteRecovery) (*types.MsgExecuteRecoveryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ExecuteRecovery: validate: %w", err)
	}
	newAccount, err := sdk.AccAddressFromBech32(msg.NewAccount)
	if err != nil {
		return nil, fmt.Errorf("ExecuteRecovery: invalid new account address: %w", err)
	}

	if err := ms.Keeper.ExecuteRecovery(goCtx, newAccount, msg); err != nil {
		return nil, fmt.Errorf("ExecuteRecovery: %w", err)
	}
	return &types.MsgExecuteRecoveryResponse{}, nil
}

// CancelRecovery handles recovery cancellations by the old account
func (ms msgServer) CancelRecovery(goCtx context.Context, msg *types.MsgCancelRecovery) (*types.MsgCancelRecoveryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelRecovery: validate: %w", err)
	}
	oldAccount, err := sdk.AccAddressFromBech32(msg.OldAccount)
	if err != nil {
		return nil, fmt.Errorf("CancelRecovery: invalid old account address: %w", err)
	}

	if err := ms.Keeper.CancelRecovery(goCtx, oldAccount, msg.RecoveryHash); err != nil {
		return nil, fmt.Errorf("CancelRecovery: %w", err)
	}
	return &types.MsgCancelRecoveryResponse{}, nil
}

// UpdateParams handles governance parameter updates
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateParams: validate: %w", err)
	}

	if err := ms.Keeper.UpdateParams(goCtx, msg.Authority, msg.Params); err != nil {
		return nil, fmt.Errorf("UpdateParams: %w", err)
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
