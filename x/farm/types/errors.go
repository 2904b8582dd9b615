package types

import (
	"cosmossdk.io/errors"
)

// Farm module sentinel errors
var (
	ErrInvalidFarmId     = errors.Register(ModuleName, 1, "invalid farm id")
	ErrFarmNotFound      = errors.Register(ModuleName, 2, "farm not found")
	ErrInvalidDenom      = errors.Register(ModuleName, 3, "invalid token denom")
	ErrUnknownLPShare    = errors.Register(ModuleName, 4, "lp share denom has no live pool")
	ErrZeroAmount        = errors.Register(ModuleName, 5, "amount cannot be zero")
	ErrInvalidAmount     = errors.Register(ModuleName, 6, "invalid amount")
	ErrInsufficientStake = errors.Register(ModuleName, 7, "insufficient deposited balance")
	ErrNothingToHarvest  = errors.Register(ModuleName, 8, "no accrued reward to harvest")
	ErrNothingToCompound = errors.Register(ModuleName, 9, "no accrued reward to compound")
	ErrTokenMismatch     = errors.Register(ModuleName, 10, "stake and reward tokens differ")
	ErrBoostTooHigh      = errors.Register(ModuleName, 11, "boost exceeds maximum")
	ErrUnauthorized      = errors.Register(ModuleName, 12, "caller is not authorized")
	ErrInvalidParams     = errors.Register(ModuleName, 13, "invalid module parameters")
	ErrInvalidAddress    = errors.Register(ModuleName, 14, "invalid address")
	ErrTransferFailed    = errors.Register(ModuleName, 15, "token transfer failed")
	ErrReentrancy        = errors.Register(ModuleName, 16, "reentrant call rejected")
	ErrFarmAlreadyExists = errors.Register(ModuleName, 17, "farm already exists for denom pair")
)
