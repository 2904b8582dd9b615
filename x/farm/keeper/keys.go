package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// KVStore key prefixes
var (
	FarmKeyPrefix           = []byte{0x01}
	FarmCountKey            = []byte{0x02}
	PositionKeyPrefix       = []byte{0x03}
	ParamsKey               = []byte{0x04}
	ReentrancyLockKeyPrefix = []byte{0x05}
)

// FarmKey returns the store key for a farm
func FarmKey(farmID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, farmID)
	return append(FarmKeyPrefix, bz...)
}

// PositionKey returns the store key for one account's position in one farm
func PositionKey(farmID uint64, addr sdk.AccAddress) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, farmID)
	key := append(PositionKeyPrefix, bz...)
	return append(key, addr.Bytes()...)
}

// FarmPositionsPrefix returns the iteration prefix for all positions in a farm
func FarmPositionsPrefix(farmID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, farmID)
	return append(PositionKeyPrefix, bz...)
}

// ReentrancyLockKey returns the store key for a reentrancy lock
func ReentrancyLockKey(lockKey string) []byte {
	return append(ReentrancyLockKeyPrefix, []byte(lockKey)...)
}
