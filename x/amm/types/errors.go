package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidPoolId         = errors.Register(ModuleName, 1, "invalid pool id")
	ErrPoolNotFound          = errors.Register(ModuleName, 2, "pool not found")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 3, "pool already exists")
	ErrInvalidTokenPair      = errors.Register(ModuleName, 4, "invalid token pair")
	ErrInvalidTokenDenom     = errors.Register(ModuleName, 5, "invalid token denomination")
	ErrZeroAmount            = errors.Register(ModuleName, 6, "amount cannot be zero")
	ErrInvalidAmount         = errors.Register(ModuleName, 7, "invalid amount")
	ErrInsufficientAmount    = errors.Register(ModuleName, 8, "amount below requested minimum")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 9, "insufficient liquidity in pool")
	ErrInsufficientShares    = errors.Register(ModuleName, 10, "insufficient liquidity shares")
	ErrSlippageExceeded      = errors.Register(ModuleName, 11, "output amount less than minimum required")
	ErrTransferFailed        = errors.Register(ModuleName, 12, "token transfer failed")
	ErrInvalidAddress        = errors.Register(ModuleName, 13, "invalid address")
	ErrInvalidPoolState      = errors.Register(ModuleName, 14, "invalid pool state")
	ErrInvariantViolation    = errors.Register(ModuleName, 15, "pool invariant violation")
	ErrOverflow              = errors.Register(ModuleName, 16, "arithmetic overflow")
	ErrReentrancy            = errors.Register(ModuleName, 17, "reentrant call rejected")
	ErrInvalidParams         = errors.Register(ModuleName, 18, "invalid module parameters")
	ErrUnauthorized          = errors.Register(ModuleName, 19, "caller is not authorized")
	ErrDivisionByZero        = errors.Register(ModuleName, 20, "division by zero")
)
