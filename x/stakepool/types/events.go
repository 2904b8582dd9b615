package types

// Event types for the stakepool module
const (
	EventTypeStake             = "stake"
	EventTypeWithdraw          = "withdraw"
	EventTypeRewardPaid        = "reward_paid"
	EventTypeCompound          = "compound"
	EventTypeEmergencyWithdraw = "emergency_withdraw"
	EventTypePenaltyApplied    = "penalty_applied"
	EventTypeRateUpdated       = "emission_rate_updated"
	EventTypePaused            = "pool_paused"
	EventTypeUnpaused          = "pool_unpaused"
	EventTypeFunded            = "rewards_funded"
	EventTypeRecovered         = "tokens_recovered"
	EventTypeUpdateParams      = "update_stakepool_params"
)

// Event attribute keys
const (
	AttributeKeyStaker    = "staker"
	AttributeKeyAmount    = "amount"
	AttributeKeyPenalty   = "penalty"
	AttributeKeyNetAmount = "net_amount"
	AttributeKeyReward    = "reward"
	AttributeKeyFunder    = "funder"
	AttributeKeyRecipient = "recipient"
	AttributeKeyDenom     = "denom"
	AttributeKeyOldRate   = "old_rate"
	AttributeKeyNewRate   = "new_rate"
	AttributeKeyAuthority = "authority"
)
