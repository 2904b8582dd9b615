package types

import (
	"cosmossdk.io/errors"
)

// Bridge module sentinel errors
var (
	ErrInvalidNonce     = errors.Register(ModuleName, 1, "invalid nonce")
	ErrUnsupportedDenom = errors.Register(ModuleName, 2, "denom not supported by the bridge")
	ErrInvalidAmount    = errors.Register(ModuleName, 3, "invalid amount")
	ErrAmountTooLarge   = errors.Register(ModuleName, 4, "amount exceeds bridge limit")
	ErrNotRelayer       = errors.Register(ModuleName, 5, "caller is not the registered relayer")
	ErrAlreadyProcessed = errors.Register(ModuleName, 6, "source transaction already processed")
	ErrLockNotFound     = errors.Register(ModuleName, 7, "lock not found")
	ErrInvalidAddress   = errors.Register(ModuleName, 8, "invalid address")
	ErrInvalidParams    = errors.Register(ModuleName, 9, "invalid module parameters")
	ErrUnauthorized     = errors.Register(ModuleName, 10, "caller is not authorized")
	ErrTransferFailed   = errors.Register(ModuleName, 11, "token transfer failed")
	ErrInvalidTxHash    = errors.Register(ModuleName, 12, "invalid source transaction hash")
	ErrInvalidChain     = errors.Register(ModuleName, 13, "invalid chain identifier")
)
