package types

import (
	"cosmossdk.io/errors"
)

// Oracle module sentinel errors
var (
	ErrNotFeeder        = errors.Register(ModuleName, 1, "caller is not the registered price feeder")
	ErrInvalidAsset     = errors.Register(ModuleName, 2, "invalid asset identifier")
	ErrInvalidPrice     = errors.Register(ModuleName, 3, "invalid price")
	ErrPriceNotFound    = errors.Register(ModuleName, 4, "no price for asset")
	ErrStalePrice       = errors.Register(ModuleName, 5, "price is older than the freshness window")
	ErrDeadlineExceeded = errors.Register(ModuleName, 6, "deadline exceeded")
	ErrInvalidAddress   = errors.Register(ModuleName, 7, "invalid address")
	ErrInvalidParams    = errors.Register(ModuleName, 8, "invalid module parameters")
	ErrUnauthorized     = errors.Register(ModuleName, 9, "caller is not authorized")
	ErrInvalidAmount    = errors.Register(ModuleName, 10, "invalid amount")
)
