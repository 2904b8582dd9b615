package types

// Event types for the farm module
const (
	EventTypeCreateFarm   = "create_farm"
	EventTypeDeposit      = "farm_deposit"
	EventTypeWithdraw     = "farm_withdraw"
	EventTypeHarvest      = "harvest"
	EventTypeCompound     = "farm_compound"
	EventTypeBoostSet     = "boost_set"
	EventTypeRateUpdated  = "farm_rate_updated"
	EventTypeFunded       = "farm_funded"
	EventTypeUpdateParams = "update_farm_params"
)

// Event attribute keys
const (
	AttributeKeyFarmID      = "farm_id"
	AttributeKeyCreator     = "creator"
	AttributeKeyFarmer      = "farmer"
	AttributeKeyFunder      = "funder"
	AttributeKeyStakeDenom  = "stake_denom"
	AttributeKeyRewardDenom = "reward_denom"
	AttributeKeyAmount      = "amount"
	AttributeKeyReward      = "reward"
	AttributeKeyBaseReward  = "base_reward"
	AttributeKeyBoostBps    = "boost_bps"
	AttributeKeyOldRate     = "old_rate"
	AttributeKeyNewRate     = "new_rate"
)
