package cli

// Flag names shared by the amm tx commands
const (
	FlagMinAmountA = "min-amount-a"
	FlagMinAmountB = "min-amount-b"
)
