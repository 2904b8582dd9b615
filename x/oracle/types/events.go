package types

// Event types for the oracle module
const (
	EventTypeSetPrice     = "set_price"
	EventTypeRoutedSwap   = "routed_swap"
	EventTypeSetFeeder    = "set_feeder"
	EventTypeUpdateParams = "update_oracle_params"
)

// Event attribute keys
const (
	AttributeKeyAsset     = "asset"
	AttributeKeyPrice     = "price"
	AttributeKeyFeeder    = "feeder"
	AttributeKeyTrader    = "trader"
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyTokenIn   = "token_in"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyDeadline  = "deadline"
)
