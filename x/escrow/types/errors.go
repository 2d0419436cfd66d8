package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/escrow module sentinel errors
var (
	// Input validation errors (2-9)
	ErrInvalidAddress    = sdkerrors.Register(ModuleName, 2, "invalid address")
	ErrInvalidAmount     = sdkerrors.Register(ModuleName, 3, "invalid amount")
	ErrInvalidEscrowType = sdkerrors.Register(ModuleName, 4, "invalid escrow type")
	ErrInvalidFeeConfig  = sdkerrors.Register(ModuleName, 5, "invalid fee configuration")
	ErrDenomNotAllowed   = sdkerrors.Register(ModuleName, 6, "denomination not allowed")
	ErrInvalidRole       = sdkerrors.Register(ModuleName, 7, "invalid role")

	// Authorization errors (10-19)
	ErrUnauthorized         = sdkerrors.Register(ModuleName, 10, "unauthorized")
	ErrAuthorizationExpired = sdkerrors.Register(ModuleName, 11, "deposit authorization expired")
	ErrInvalidAuthorization = sdkerrors.Register(ModuleName, 12, "invalid deposit authorization")
	ErrUnknownSigningKey    = sdkerrors.Register(ModuleName, 13, "no signing key registered for signer")

	// State errors (20-29)
	ErrContractNotFound  = sdkerrors.Register(ModuleName, 20, "contract not found")
	ErrUnitNotFound      = sdkerrors.Register(ModuleName, 21, "contract unit not found")
	ErrInvalidStatus     = sdkerrors.Register(ModuleName, 22, "operation not allowed in current status")
	ErrNothingToClaim    = sdkerrors.Register(ModuleName, 23, "nothing to claim")
	ErrNothingToWithdraw = sdkerrors.Register(ModuleName, 24, "nothing to withdraw")

	// Bounds errors (30-39)
	ErrFeeTooHigh             = sdkerrors.Register(ModuleName, 30, "fee rate exceeds maximum")
	ErrBatchLimitExceeded     = sdkerrors.Register(ModuleName, 31, "milestone batch exceeds per-tx limit")
	ErrEmptyBatch             = sdkerrors.Register(ModuleName, 32, "milestone batch is empty")
	ErrAmountExceedsPrincipal = sdkerrors.Register(ModuleName, 33, "amount exceeds available principal")
	ErrInsufficientPrepayment = sdkerrors.Register(ModuleName, 34, "insufficient prepayment balance")

	// Integrity errors (40-49)
	ErrCommitmentMismatch = sdkerrors.Register(ModuleName, 40, "submitted data does not match commitment")
	ErrRecoveryNotFound   = sdkerrors.Register(ModuleName, 41, "recovery request not found")
	ErrRecoveryLocked     = sdkerrors.Register(ModuleName, 42, "recovery timelock has not elapsed")
	ErrRecoveryExecuted   = sdkerrors.Register(ModuleName, 43, "recovery request already executed")
	ErrOwnershipMismatch  = sdkerrors.Register(ModuleName, 44, "account is not the current owner")
)
