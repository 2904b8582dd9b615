package keeper

// KVStore key prefixes
var (
	PriceKeyPrefix = []byte{0x01}
	ParamsKey      = []byte{0x02}
)

// PriceKey returns the store key for an asset's price record
func PriceKey(asset string) []byte {
	return append(PriceKeyPrefix, []byte(asset)...)
}
