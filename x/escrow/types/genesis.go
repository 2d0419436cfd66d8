package types

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FeeRatesRecord is one configured fee tier entry in genesis. The populated
// scope fields depend on the tier: CONTRACT uses EscrowType+ContractId,
// INSTANCE uses EscrowType, USER uses Account.
type FeeRatesRecord struct {
	Tier       FeeTier    `json:"tier"`
	EscrowType EscrowType `json:"escrow_type,omitempty"`
	ContractId uint64     `json:"contract_id,omitempty"`
	Account    string     `json:"account,omitempty"`
	Rates      FeeRates   `json:"rates"`
}

// RecoveryRecord pairs a recovery request with its hex-encoded store hash
type RecoveryRecord struct {
	Hash     string   `json:"hash"`
	Recovery Recovery `json:"recovery"`
}

// RoleGrant is one (account, role) membership
type RoleGrant struct {
	Account string `json:"account"`
	Role    Role   `json:"role"`
}

// SigningKeyRecord is one admin's registered ed25519 signing key
type SigningKeyRecord struct {
	Account string `json:"account"`
	PubKey  []byte `json:"pub_key"`
}

// GenesisState defines the escrow module's genesis state
type GenesisState struct {
	Params         Params             `json:"params"`
	NextContractId uint64             `json:"next_contract_id"`
	Contracts      []Contract         `json:"contracts"`
	Units          []Unit             `json:"units"`
	FeeRates       []FeeRatesRecord   `json:"fee_rates"`
	Recoveries     []RecoveryRecord   `json:"recoveries"`
	Roles          []RoleGrant        `json:"roles"`
	SigningKeys    []SigningKeyRecord `json:"signing_keys"`
}

// DefaultGenesis returns the default genesis state for the escrow module
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:         DefaultParams(),
		NextContractId: 1,
		Contracts:      []Contract{},
		Units:          []Unit{},
		FeeRates:       []FeeRatesRecord{},
		Recoveries:     []RecoveryRecord{},
		Roles:          []RoleGrant{},
		SigningKeys:    []SigningKeyRecord{},
	}
}

// Validate ensures the genesis state is well-formed
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if gs.NextContractId == 0 {
		return fmt.Errorf("next contract id must be positive")
	}

	contracts := make(map[string]Contract, len(gs.Contracts))
	for _, c := range gs.Contracts {
		if !c.EscrowType.IsValid() {
			return fmt.Errorf("contract %d: invalid escrow type %d", c.Id, c.EscrowType)
		}
		if _, err := sdk.AccAddressFromBech32(c.Client); err != nil {
			return fmt.Errorf("contract %d: invalid client: %w", c.Id, err)
		}
		if err := sdk.ValidateDenom(c.Denom); err != nil {
			return fmt.Errorf("contract %d: invalid denom: %w", c.Id, err)
		}
		if c.PrepaymentBalance.IsNil() || c.PrepaymentBalance.IsNegative() {
			return fmt.Errorf("contract %d: negative or nil prepayment balance", c.Id)
		}
		key := fmt.Sprintf("%d/%d", c.EscrowType, c.Id)
		if _, ok := contracts[key]; ok {
			return fmt.Errorf("duplicate contract %s/%d", c.EscrowType, c.Id)
		}
		contracts[key] = c
	}

	units := make(map[string]struct{}, len(gs.Units))
	for _, u := range gs.Units {
		if err := u.Validate(); err != nil {
			return err
		}
		contractKey := fmt.Sprintf("%d/%d", u.EscrowType, u.ContractId)
		if _, ok := contracts[contractKey]; !ok {
			return fmt.Errorf("unit %d/%d references unknown contract", u.ContractId, u.SubId)
		}
		unitKey := fmt.Sprintf("%s/%d", contractKey, u.SubId)
		if _, ok := units[unitKey]; ok {
			return fmt.Errorf("duplicate unit %d/%d", u.ContractId, u.SubId)
		}
		units[unitKey] = struct{}{}
	}

	for i, fr := range gs.FeeRates {
		if !fr.Tier.IsValid() {
			return fmt.Errorf("fee rates %d: invalid tier %d", i, fr.Tier)
		}
		if fr.Rates.CoverageBps > gs.Params.MaxFeeBps || fr.Rates.ClaimBps > gs.Params.MaxFeeBps {
			return fmt.Errorf("fee rates %d: rate exceeds max fee bps", i)
		}
		switch fr.Tier {
		case FEE_TIER_CONTRACT, FEE_TIER_INSTANCE:
			if !fr.EscrowType.IsValid() {
				return fmt.Errorf("fee rates %d: invalid escrow type", i)
			}
		case FEE_TIER_USER:
			if _, err := sdk.AccAddressFromBech32(fr.Account); err != nil {
				return fmt.Errorf("fee rates %d: invalid account: %w", i, err)
			}
		}
	}

	for i, r := range gs.Recoveries {
		hash, err := hex.DecodeString(r.Hash)
		if err != nil || len(hash) != 32 {
			return fmt.Errorf("recovery %d: hash must be 32 hex-encoded bytes", i)
		}
		if _, err := sdk.AccAddressFromBech32(r.Recovery.OldAccount); err != nil {
			return fmt.Errorf("recovery %d: invalid old account: %w", i, err)
		}
		if _, err := sdk.AccAddressFromBech32(r.Recovery.NewAccount); err != nil {
			return fmt.Errorf("recovery %d: invalid new account: %w", i, err)
		}
		if !r.Recovery.AccountType.IsValid() {
			return fmt.Errorf("recovery %d: invalid account type", i)
		}
	}

	for i, rg := range gs.Roles {
		if _, err := sdk.AccAddressFromBech32(rg.Account); err != nil {
			return fmt.Errorf("role grant %d: invalid account: %w", i, err)
		}
		if !rg.Role.IsValid() {
			return fmt.Errorf("role grant %d: invalid role %q", i, rg.Role)
		}
	}

	for i, sk := range gs.SigningKeys {
		if _, err := sdk.AccAddressFromBech32(sk.Account); err != nil {
			return fmt.Errorf("signing key %d: invalid account: %w", i, err)
		}
		if len(sk.PubKey) != ed25519.PublicKeySize {
			return fmt.Errorf("signing key %d: key must be %d bytes", i, ed25519.PublicKeySize)
		}
	}

	return nil
}
