package types

import (
	"crypto/sha256"
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DepositAuthorization is the admin co-signature a fixed-price or milestone
// deposit must carry. The signer commits to the business fields of the deposit
// plus an expiration, so a captured authorization cannot be replayed with
// different terms or after its window.
type DepositAuthorization struct {
	Signer     string `json:"signer"`
	Expiration int64  `json:"expiration"`
	Signature  []byte `json:"signature"`
}

// Validate performs stateless checks on the authorization envelope
func (a DepositAuthorization) Validate() error {
	if _, err := sdk.AccAddressFromBech32(a.Signer); err != nil {
		return ErrInvalidAuthorization.Wrapf("invalid signer address: %v", err)
	}
	if a.Expiration <= 0 {
		return ErrInvalidAuthorization.Wrap("expiration must be positive")
	}
	if len(a.Signature) == 0 {
		return ErrInvalidAuthorization.Wrap("signature cannot be empty")
	}
	return nil
}

// DepositCommitmentHash computes the SHA-256 digest a deposit authorization
// signs: the deposit's business fields plus the expiration, in a fixed order
// with length-prefixed variable fields.
func DepositCommitmentHash(
	escrowType EscrowType,
	contractID uint64,
	depositor string,
	denom string,
	feeConfig FeeConfig,
	amount string,
	milestones []MilestoneInput,
	expiration int64,
) []byte {
	h := sha256.New()

	writeUint64 := func(v uint64) {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeBytes := func(bz []byte) {
		writeUint64(uint64(len(bz)))
		h.Write(bz)
	}

	writeUint64(uint64(escrowType))
	writeUint64(contractID)
	writeBytes([]byte(depositor))
	writeBytes([]byte(denom))
	writeUint64(uint64(feeConfig))
	writeBytes([]byte(amount))
	writeUint64(uint64(len(milestones)))
	for _, m := range milestones {
		writeBytes([]byte(m.Contractor))
		writeBytes([]byte(m.Amount.String()))
		writeBytes(m.ContractorData)
	}
	writeUint64(uint64(expiration))

	return h.Sum(nil)
}

// ComputeSubmissionHash computes the commitment a work submission must match:
// SHA-256 over the revealed data followed by the salt.
func ComputeSubmissionHash(data, salt []byte) []byte {
	h := sha256.New()
	h.Write(data)
	h.Write(salt)
	return h.Sum(nil)
}

// RecoveryHash derives the deterministic store key of a recovery request from
// its parameters. Identical parameters always map to the same record, which is
// what makes spent requests non-replayable.
func RecoveryHash(
	escrowType EscrowType,
	contractID uint64,
	subID uint64,
	oldAccount string,
	newAccount string,
	accountType AccountType,
) []byte {
	h := sha256.New()

	writeUint64 := func(v uint64) {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeBytes := func(bz []byte) {
		writeUint64(uint64(len(bz)))
		h.Write(bz)
	}

	writeUint64(uint64(escrowType))
	writeUint64(contractID)
	writeUint64(subID)
	writeBytes([]byte(oldAccount))
	writeBytes([]byte(newAccount))
	writeUint64(uint64(accountType))

	return h.Sum(nil)
}
