package keeper

import (
	"encoding/binary"
)

// KVStore key prefixes
var (
	NonceKey             = []byte{0x01}
	LockKeyPrefix        = []byte{0x02}
	ProcessedTxKeyPrefix = []byte{0x03}
	ParamsKey            = []byte{0x04}
	EscrowedKeyPrefix    = []byte{0x05}
)

// LockKey returns the store key for a lock record
func LockKey(nonce uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, nonce)
	return append(LockKeyPrefix, bz...)
}

// ProcessedTxKey returns the store key for a processed source tx hash
func ProcessedTxKey(hash string) []byte {
	return append(ProcessedTxKeyPrefix, []byte(hash)...)
}

// EscrowedKey returns the store key for a denom's outstanding escrow total
func EscrowedKey(denom string) []byte {
	return append(EscrowedKeyPrefix, []byte(denom)...)
}
