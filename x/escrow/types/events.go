package types

// Event types emitted by the escrow module
const (
	EventTypeDeposited            = "escrow_deposited"
	EventTypeSubmitted            = "escrow_submitted"
	EventTypeApproved             = "escrow_approved"
	EventTypeClaimed              = "escrow_claimed"
	EventTypeClaimedAll           = "escrow_claimed_all"
	EventTypeWithdrawn            = "escrow_withdrawn"
	EventTypeRefilled             = "escrow_refilled"
	EventTypeReturnRequested      = "escrow_return_requested"
	EventTypeReturnApproved       = "escrow_return_approved"
	EventTypeReturnCanceled       = "escrow_return_canceled"
	EventTypeDisputeCreated       = "escrow_dispute_created"
	EventTypeDisputeResolved      = "escrow_dispute_resolved"
	EventTypeFeeRatesUpdated      = "escrow_fee_rates_updated"
	EventTypeSigningKeyRegistered = "escrow_signing_key_registered"
	EventTypeRoleGranted          = "escrow_role_granted"
	EventTypeRoleRevoked          = "escrow_role_revoked"
	EventTypeRecoveryInitiated    = "escrow_recovery_initiated"
	EventTypeRecoveryExecuted     = "escrow_recovery_executed"
	EventTypeRecoveryCanceled     = "escrow_recovery_canceled"
	EventTypeOwnershipTransferred = "escrow_ownership_transferred"
	EventTypeParamsUpdated        = "escrow_params_updated"
)

// Event attribute keys
const (
	AttributeKeyContractID       = "contract_id"
	AttributeKeySubID            = "sub_id"
	AttributeKeyEscrowType       = "escrow_type"
	AttributeKeyClient           = "client"
	AttributeKeyContractor       = "contractor"
	AttributeKeyDenom            = "denom"
	AttributeKeyAmount           = "amount"
	AttributeKeyFee              = "fee"
	AttributeKeyNetAmount        = "net_amount"
	AttributeKeyClientFee        = "client_fee"
	AttributeKeyContractorFee    = "contractor_fee"
	AttributeKeyFeeConfig        = "fee_config"
	AttributeKeyStatus           = "status"
	AttributeKeyPrevStatus       = "prev_status"
	AttributeKeyReceiver         = "receiver"
	AttributeKeyWinner           = "winner"
	AttributeKeyClientAmount     = "client_amount"
	AttributeKeyContractorAmount = "contractor_amount"
	AttributeKeyRefillType       = "refill_type"
	AttributeKeyTier             = "tier"
	AttributeKeyCoverageBps      = "coverage_bps"
	AttributeKeyClaimBps         = "claim_bps"
	AttributeKeyAccount          = "account"
	AttributeKeyRole             = "role"
	AttributeKeyOldAccount       = "old_account"
	AttributeKeyNewAccount       = "new_account"
	AttributeKeyAccountType      = "account_type"
	AttributeKeyUnlockAt         = "unlock_at"
	AttributeKeyRecoveryHash     = "recovery_hash"
	AttributeKeySubIDRange       = "sub_id_range"
)
