package types

import (
	"cosmossdk.io/errors"
)

// Stakepool module sentinel errors
var (
	ErrZeroAmount          = errors.Register(ModuleName, 1, "amount cannot be zero")
	ErrInvalidAmount       = errors.Register(ModuleName, 2, "invalid amount")
	ErrInsufficientBalance = errors.Register(ModuleName, 3, "insufficient staked balance")
	ErrNothingToWithdraw   = errors.Register(ModuleName, 4, "nothing to withdraw")
	ErrTokenMismatch       = errors.Register(ModuleName, 5, "stake and reward tokens differ")
	ErrNothingToCompound   = errors.Register(ModuleName, 6, "no accrued reward to compound")
	ErrModulePaused        = errors.Register(ModuleName, 7, "staking pool is paused")
	ErrNotPaused           = errors.Register(ModuleName, 8, "staking pool is not paused")
	ErrUnauthorized        = errors.Register(ModuleName, 9, "caller is not authorized")
	ErrInvalidParams       = errors.Register(ModuleName, 10, "invalid module parameters")
	ErrTransferFailed      = errors.Register(ModuleName, 11, "token transfer failed")
	ErrProtectedDenom      = errors.Register(ModuleName, 12, "denom is protected from recovery")
	ErrInvalidAddress      = errors.Register(ModuleName, 13, "invalid address")
	ErrReentrancy          = errors.Register(ModuleName, 14, "reentrant call rejected")
)
