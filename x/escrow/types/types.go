package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// EscrowType selects one of the three supported contract shapes.
type EscrowType int32

const (
	ESCROW_TYPE_UNSPECIFIED EscrowType = 0
	ESCROW_TYPE_FIXED_PRICE EscrowType = 1
	ESCROW_TYPE_MILESTONE   EscrowType = 2
	ESCROW_TYPE_HOURLY      EscrowType = 3
)

// String returns the string representation of the escrow type
func (t EscrowType) String() string {
	switch t {
	case ESCROW_TYPE_FIXED_PRICE:
		return "FIXED_PRICE"
	case ESCROW_TYPE_MILESTONE:
		return "MILESTONE"
	case ESCROW_TYPE_HOURLY:
		return "HOURLY"
	default:
		return "UNSPECIFIED"
	}
}

// IsValid reports whether the escrow type is one of the three contract shapes
func (t EscrowType) IsValid() bool {
	return t == ESCROW_TYPE_FIXED_PRICE || t == ESCROW_TYPE_MILESTONE || t == ESCROW_TYPE_HOURLY
}

// Status is the lifecycle status of a contract sub-unit.
type Status int32

const (
	STATUS_NONE             Status = 0
	STATUS_ACTIVE           Status = 1
	STATUS_SUBMITTED        Status = 2
	STATUS_APPROVED         Status = 3
	STATUS_COMPLETED        Status = 4
	STATUS_RETURN_REQUESTED Status = 5
	STATUS_DISPUTED         Status = 6
	STATUS_RESOLVED         Status = 7
	STATUS_REFUND_APPROVED  Status = 8
	STATUS_CANCELED         Status = 9
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case STATUS_NONE:
		return "NONE"
	case STATUS_ACTIVE:
		return "ACTIVE"
	case STATUS_SUBMITTED:
		return "SUBMITTED"
	case STATUS_APPROVED:
		return "APPROVED"
	case STATUS_COMPLETED:
		return "COMPLETED"
	case STATUS_RETURN_REQUESTED:
		return "RETURN_REQUESTED"
	case STATUS_DISPUTED:
		return "DISPUTED"
	case STATUS_RESOLVED:
		return "RESOLVED"
	case STATUS_REFUND_APPROVED:
		return "REFUND_APPROVED"
	case STATUS_CANCELED:
		return "CANCELED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(s))
	}
}

// IsTerminal reports whether no further state transitions are possible
func (s Status) IsTerminal() bool {
	return s == STATUS_COMPLETED || s == STATUS_CANCELED
}

// FeeConfig selects which party covers the platform fees of a sub-unit.
type FeeConfig int32

const (
	FEE_CONFIG_CLIENT_COVERS_ALL       FeeConfig = 0
	FEE_CONFIG_CLIENT_COVERS_ONLY      FeeConfig = 1
	FEE_CONFIG_CONTRACTOR_COVERS_CLAIM FeeConfig = 2
	FEE_CONFIG_NO_FEES                 FeeConfig = 3
)

// String returns the string representation of the fee config
func (c FeeConfig) String() string {
	switch c {
	case FEE_CONFIG_CLIENT_COVERS_ALL:
		return "CLIENT_COVERS_ALL"
	case FEE_CONFIG_CLIENT_COVERS_ONLY:
		return "CLIENT_COVERS_ONLY"
	case FEE_CONFIG_CONTRACTOR_COVERS_CLAIM:
		return "CONTRACTOR_COVERS_CLAIM"
	case FEE_CONFIG_NO_FEES:
		return "NO_FEES"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(c))
	}
}

// IsValid reports whether the fee config is a known variant
func (c FeeConfig) IsValid() bool {
	return c >= FEE_CONFIG_CLIENT_COVERS_ALL && c <= FEE_CONFIG_NO_FEES
}

// Role is a platform role grantable to an account. Roles are set-valued:
// an account may hold any combination.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleGuardian   Role = "guardian"
	RoleStrategist Role = "strategist"
	RoleDao        Role = "dao"
)

// IsValid reports whether the role is a known platform role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleGuardian, RoleStrategist, RoleDao:
		return true
	default:
		return false
	}
}

// AccountType identifies which side of a contract a recovery targets.
type AccountType int32

const (
	ACCOUNT_TYPE_CLIENT     AccountType = 1
	ACCOUNT_TYPE_CONTRACTOR AccountType = 2
)

// String returns the string representation of the account type
func (t AccountType) String() string {
	switch t {
	case ACCOUNT_TYPE_CLIENT:
		return "CLIENT"
	case ACCOUNT_TYPE_CONTRACTOR:
		return "CONTRACTOR"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(t))
	}
}

// IsValid reports whether the account type is known
func (t AccountType) IsValid() bool {
	return t == ACCOUNT_TYPE_CLIENT || t == ACCOUNT_TYPE_CONTRACTOR
}

// RefillType selects what a refill tops up.
type RefillType int32

const (
	REFILL_TYPE_PRINCIPAL  RefillType = 1
	REFILL_TYPE_PREPAYMENT RefillType = 2
)

// IsValid reports whether the refill type is known
func (t RefillType) IsValid() bool {
	return t == REFILL_TYPE_PRINCIPAL || t == REFILL_TYPE_PREPAYMENT
}

// Contract is the per-(shape, id) container shared by all sub-units.
// PrepaymentBalance is only used by hourly contracts: a fee-free pool the
// client tops up in advance, drawn on approval when a weekly bill's own
// principal falls short.
type Contract struct {
	Id                uint64     `json:"id"`
	EscrowType        EscrowType `json:"escrow_type"`
	Client            string     `json:"client"`
	Denom             string     `json:"denom"`
	PrepaymentBalance math.Int   `json:"prepayment_balance"`
	NextSubId         uint64     `json:"next_sub_id"`
}

// Unit is one payable sub-unit of a contract: the single body of a
// fixed-price contract (SubId 0), a milestone, or a weekly hourly bill.
//
// Amount is the remaining principal and is inclusive of the earmarked
// AmountToClaim and AmountToWithdraw portions. FeeBalance is the
// client-prefunded fee still held for this unit.
type Unit struct {
	ContractId       uint64     `json:"contract_id"`
	SubId            uint64     `json:"sub_id"`
	EscrowType       EscrowType `json:"escrow_type"`
	Contractor       string     `json:"contractor,omitempty"`
	Amount           math.Int   `json:"amount"`
	AmountToClaim    math.Int   `json:"amount_to_claim"`
	AmountToWithdraw math.Int   `json:"amount_to_withdraw"`
	FeeBalance       math.Int   `json:"fee_balance"`
	ContractorData   []byte     `json:"contractor_data,omitempty"`
	FeeConfig        FeeConfig  `json:"fee_config"`
	Status           Status     `json:"status"`
	PrevStatus       Status     `json:"prev_status"`
	Winner           string     `json:"winner,omitempty"`
}

// UnearmarkedAmount returns the principal not yet reserved for claim or withdrawal
func (u Unit) UnearmarkedAmount() math.Int {
	return u.Amount.Sub(u.AmountToClaim).Sub(u.AmountToWithdraw)
}

// Validate performs stateless sanity checks on a unit record
func (u Unit) Validate() error {
	if !u.EscrowType.IsValid() {
		return ErrInvalidEscrowType.Wrapf("unit %d/%d", u.ContractId, u.SubId)
	}
	if !u.FeeConfig.IsValid() {
		return ErrInvalidFeeConfig.Wrapf("unit %d/%d", u.ContractId, u.SubId)
	}
	if u.Amount.IsNil() || u.Amount.IsNegative() {
		return ErrInvalidAmount.Wrapf("unit %d/%d: negative or nil principal", u.ContractId, u.SubId)
	}
	if u.AmountToClaim.IsNil() || u.AmountToClaim.IsNegative() ||
		u.AmountToWithdraw.IsNil() || u.AmountToWithdraw.IsNegative() ||
		u.FeeBalance.IsNil() || u.FeeBalance.IsNegative() {
		return ErrInvalidAmount.Wrapf("unit %d/%d: negative or nil balance field", u.ContractId, u.SubId)
	}
	if u.UnearmarkedAmount().IsNegative() {
		return ErrInvalidAmount.Wrapf("unit %d/%d: earmarks exceed principal", u.ContractId, u.SubId)
	}
	return nil
}

// FeeRates is one tier's coverage/claim rate pair in basis points.
// Set distinguishes "tier configured" from "fall through to the next tier",
// so an explicit zero-fee override is representable at any tier.
type FeeRates struct {
	CoverageBps uint32 `json:"coverage_bps"`
	ClaimBps    uint32 `json:"claim_bps"`
	Set         bool   `json:"set,omitempty"`
}

// FeeTier identifies which resolution tier a rate write targets.
type FeeTier int32

const (
	FEE_TIER_CONTRACT FeeTier = 1
	FEE_TIER_INSTANCE FeeTier = 2
	FEE_TIER_USER     FeeTier = 3
)

// IsValid reports whether the fee tier is known
func (t FeeTier) IsValid() bool {
	return t == FEE_TIER_CONTRACT || t == FEE_TIER_INSTANCE || t == FEE_TIER_USER
}

// String returns the string representation of the fee tier
func (t FeeTier) String() string {
	switch t {
	case FEE_TIER_CONTRACT:
		return "CONTRACT"
	case FEE_TIER_INSTANCE:
		return "INSTANCE"
	case FEE_TIER_USER:
		return "USER"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(t))
	}
}

// MilestoneInput is one milestone of a batch deposit.
type MilestoneInput struct {
	Contractor     string   `json:"contractor,omitempty"`
	Amount         math.Int `json:"amount"`
	ContractorData []byte   `json:"contractor_data"`
}

// Recovery is a timelocked ownership-transfer request, keyed in the store by
// the SHA-256 hash of its parameters. Records are never physically deleted;
// Executed marks both completed and canceled requests, which makes execution
// exactly-once and replay of a spent hash impossible.
type Recovery struct {
	EscrowType  EscrowType  `json:"escrow_type"`
	ContractId  uint64      `json:"contract_id"`
	SubId       uint64      `json:"sub_id"`
	OldAccount  string      `json:"old_account"`
	NewAccount  string      `json:"new_account"`
	AccountType AccountType `json:"account_type"`
	UnlockAt    int64       `json:"unlock_at"`
	Executed    bool        `json:"executed"`
}
