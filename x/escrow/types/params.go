package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// Default parameter values
const (
	DefaultMaxFeeBps                 = uint32(5000)
	DefaultCoverageBps               = uint32(300)
	DefaultClaimBps                  = uint32(500)
	DefaultMaxMilestonesPerTx        = uint32(10)
	DefaultRecoveryPeriodSeconds     = int64(3 * 24 * 60 * 60)
	DefaultMinRecoveryPeriodSeconds  = int64(24 * 60 * 60)
	DefaultMaxRecoveryPeriodSeconds  = int64(30 * 24 * 60 * 60)
	DefaultMaxAuthorizationTTLSecond = int64(60 * 60)
	DefaultDenom                     = "uwork"
)

// Params defines the parameters for the escrow module
type Params struct {
	// MaxFeeBps bounds every configurable fee rate, hard-capped at 5000 (50%)
	MaxFeeBps uint32 `json:"max_fee_bps"`
	// DefaultCoverageBps / DefaultClaimBps are the bottom tier of fee resolution
	DefaultCoverageBps uint32 `json:"default_coverage_bps"`
	DefaultClaimBps    uint32 `json:"default_claim_bps"`
	// MaxMilestonesPerTx bounds a milestone batch deposit
	MaxMilestonesPerTx uint32 `json:"max_milestones_per_tx"`
	// RecoveryPeriodSeconds is the guardian recovery timelock, clamped to
	// [MinRecoveryPeriodSeconds, MaxRecoveryPeriodSeconds] at initiation
	RecoveryPeriodSeconds    int64 `json:"recovery_period_seconds"`
	MinRecoveryPeriodSeconds int64 `json:"min_recovery_period_seconds"`
	MaxRecoveryPeriodSeconds int64 `json:"max_recovery_period_seconds"`
	// MaxAuthorizationTTLSeconds caps how far in the future a deposit
	// authorization may expire
	MaxAuthorizationTTLSeconds int64 `json:"max_authorization_ttl_seconds"`
	// AllowedDenoms is the payment-asset allow list
	AllowedDenoms []string `json:"allowed_denoms"`
	// Treasury receives all fee proceeds
	Treasury string `json:"treasury"`
}

// DefaultParams returns default escrow module parameters
func DefaultParams() Params {
	return Params{
		MaxFeeBps:                  DefaultMaxFeeBps,
		DefaultCoverageBps:         DefaultCoverageBps,
		DefaultClaimBps:            DefaultClaimBps,
		MaxMilestonesPerTx:         DefaultMaxMilestonesPerTx,
		RecoveryPeriodSeconds:      DefaultRecoveryPeriodSeconds,
		MinRecoveryPeriodSeconds:   DefaultMinRecoveryPeriodSeconds,
		MaxRecoveryPeriodSeconds:   DefaultMaxRecoveryPeriodSeconds,
		MaxAuthorizationTTLSeconds: DefaultMaxAuthorizationTTLSecond,
		AllowedDenoms:              []string{DefaultDenom},
		Treasury:                   authtypes.NewModuleAddress(authtypes.FeeCollectorName).String(),
	}
}

// Validate performs basic validation of escrow module parameters
func (p Params) Validate() error {
	if p.MaxFeeBps > 5000 {
		return fmt.Errorf("max fee bps %d exceeds hard cap 5000", p.MaxFeeBps)
	}
	if p.DefaultCoverageBps > p.MaxFeeBps {
		return fmt.Errorf("default coverage bps %d exceeds max fee bps %d", p.DefaultCoverageBps, p.MaxFeeBps)
	}
	if p.DefaultClaimBps > p.MaxFeeBps {
		return fmt.Errorf("default claim bps %d exceeds max fee bps %d", p.DefaultClaimBps, p.MaxFeeBps)
	}
	if p.MaxMilestonesPerTx == 0 {
		return fmt.Errorf("max milestones per tx must be positive")
	}
	if p.MinRecoveryPeriodSeconds <= 0 {
		return fmt.Errorf("min recovery period must be positive")
	}
	if p.MaxRecoveryPeriodSeconds < p.MinRecoveryPeriodSeconds {
		return fmt.Errorf("max recovery period %d below min %d", p.MaxRecoveryPeriodSeconds, p.MinRecoveryPeriodSeconds)
	}
	if p.MaxAuthorizationTTLSeconds <= 0 {
		return fmt.Errorf("max authorization ttl must be positive")
	}
	if len(p.AllowedDenoms) == 0 {
		return fmt.Errorf("allowed denoms cannot be empty")
	}
	for _, denom := range p.AllowedDenoms {
		if err := sdk.ValidateDenom(denom); err != nil {
			return fmt.Errorf("invalid allowed denom %q: %w", denom, err)
		}
	}
	if _, err := sdk.AccAddressFromBech32(p.Treasury); err != nil {
		return fmt.Errorf("invalid treasury address: %w", err)
	}
	return nil
}

// DenomAllowed reports whether denom is on the payment-asset allow list
func (p Params) DenomAllowed(denom string) bool {
	for _, d := range p.AllowedDenoms {
		if d == denom {
			return true
		}
	}
	return false
}

// ClampRecoveryPeriod returns the configured recovery period bounded to the
// [min, max] window
func (p Params) ClampRecoveryPeriod() int64 {
	period := p.RecoveryPeriodSeconds
	if period < p.MinRecoveryPeriodSeconds {
		period = p.MinRecoveryPeriodSeconds
	}
	if period > p.MaxRecoveryPeriodSeconds {
		period = p.MaxRecoveryPeriodSeconds
	}
	return period
}
