package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "escrow"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for escrow
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_escrow"
)

// Storage key prefixes. Composite keys are big-endian so that prefix
// iteration walks contracts and sub-units in id order.
var (
	ParamsKey            = []byte{0x00}
	NextContractIDKey    = []byte{0x01}
	ContractKeyPrefix    = []byte{0x02}
	UnitKeyPrefix        = []byte{0x03}
	ContractFeeKeyPrefix = []byte{0x10}
	InstanceFeeKeyPrefix = []byte{0x11}
	UserFeeKeyPrefix     = []byte{0x12}
	RecoveryKeyPrefix    = []byte{0x20}
	RoleKeyPrefix        = []byte{0x30}
	SigningKeyPrefix     = []byte{0x31}
)

func uint64Bytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

// ContractKey returns the store key for a contract record
func ContractKey(escrowType EscrowType, contractID uint64) []byte {
	key := append([]byte{}, ContractKeyPrefix...)
	key = append(key, byte(escrowType))
	return append(key, uint64Bytes(contractID)...)
}

// ContractTypePrefix returns the iteration prefix for all contracts of one shape
func ContractTypePrefix(escrowType EscrowType) []byte {
	return append(append([]byte{}, ContractKeyPrefix...), byte(escrowType))
}

// UnitKey returns the store key for a contract sub-unit
func UnitKey(escrowType EscrowType, contractID, subID uint64) []byte {
	key := append([]byte{}, UnitKeyPrefix...)
	key = append(key, byte(escrowType))
	key = append(key, uint64Bytes(contractID)...)
	return append(key, uint64Bytes(subID)...)
}

// UnitContractPrefix returns the iteration prefix for all sub-units of a contract
func UnitContractPrefix(escrowType EscrowType, contractID uint64) []byte {
	key := append([]byte{}, UnitKeyPrefix...)
	key = append(key, byte(escrowType))
	return append(key, uint64Bytes(contractID)...)
}

// ContractFeeKey returns the store key for per-(shape, contract) fee rates
func ContractFeeKey(escrowType EscrowType, contractID uint64) []byte {
	key := append([]byte{}, ContractFeeKeyPrefix...)
	key = append(key, byte(escrowType))
	return append(key, uint64Bytes(contractID)...)
}

// InstanceFeeKey returns the store key for per-shape fee rates
func InstanceFeeKey(escrowType EscrowType) []byte {
	return append(append([]byte{}, InstanceFeeKeyPrefix...), byte(escrowType))
}

// UserFeeKey returns the store key for per-user fee rates
func UserFeeKey(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, UserFeeKeyPrefix...), addr.Bytes()...)
}

// RecoveryKey returns the store key for a recovery request
func RecoveryKey(hash []byte) []byte {
	return append(append([]byte{}, RecoveryKeyPrefix...), hash...)
}

// RoleKey returns the store key for a role grant
func RoleKey(role Role, addr sdk.AccAddress) []byte {
	key := append([]byte{}, RoleKeyPrefix...)
	key = append(key, []byte(role)...)
	key = append(key, '/')
	return append(key, addr.Bytes()...)
}

// RolePrefix returns the iteration prefix for all grants of one role
func RolePrefix(role Role) []byte {
	key := append([]byte{}, RoleKeyPrefix...)
	key = append(key, []byte(role)...)
	return append(key, '/')
}

// SigningKeyKey returns the store key for an admin's registered signing key
func SigningKeyKey(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, SigningKeyPrefix...), addr.Bytes()...)
}
