package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// KVStore key prefixes
var (
	PoolStateKey            = []byte{0x01}
	PositionKeyPrefix       = []byte{0x02}
	ParamsKey               = []byte{0x03}
	PausedKey               = []byte{0x04}
	ReentrancyLockKeyPrefix = []byte{0x05}
)

// PositionKey returns the store key for an account's stake position
func PositionKey(addr sdk.AccAddress) []byte {
	return append(PositionKeyPrefix, addr.Bytes()...)
}

// ReentrancyLockKey returns the store key for a reentrancy lock
func ReentrancyLockKey(lockKey string) []byte {
	return append(ReentrancyLockKeyPrefix, []byte(lockKey)...)
}
