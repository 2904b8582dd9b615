package types

// Event types for the bridge module
const (
	EventTypeLock         = "bridge_lock"
	EventTypeUnlock       = "bridge_unlock"
	EventTypeUpdateParams = "update_bridge_params"
)

// Event attribute keys
const (
	AttributeKeyNonce             = "nonce"
	AttributeKeySender            = "sender"
	AttributeKeyRecipient         = "recipient"
	AttributeKeyExternalRecipient = "external_recipient"
	AttributeKeyDenom             = "denom"
	AttributeKeyAmount            = "amount"
	AttributeKeySourceTxHash      = "source_tx_hash"
	AttributeKeyRelayer           = "relayer"
	AttributeKeyDestChain         = "dest_chain"
	AttributeKeySourceChain       = "source_chain"
)
