package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgCreateFarm{}
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgHarvest{}
	_ sdk.Msg = &MsgCompound{}
	_ sdk.Msg = &MsgFundFarm{}
	_ sdk.Msg = &MsgSetBoost{}
	_ sdk.Msg = &MsgSetFarmRate{}
)

// MsgCreateFarm registers a new farm over a stake denom, commonly an AMM LP
// share denom.
type MsgCreateFarm struct {
	Creator     string         `json:"creator"`
	StakeDenom  string         `json:"stake_denom"`
	RewardDenom string         `json:"reward_denom"`
	RatePerSec  math.LegacyDec `json:"rate_per_sec"`
}

func NewMsgCreateFarm(creator, stakeDenom, rewardDenom string, ratePerSec math.LegacyDec) *MsgCreateFarm {
	return &MsgCreateFarm{
		Creator:     creator,
		StakeDenom:  stakeDenom,
		RewardDenom: rewardDenom,
		RatePerSec:  ratePerSec,
	}
}

func (msg *MsgCreateFarm) Reset()         { *msg = MsgCreateFarm{} }
func (msg *MsgCreateFarm) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgCreateFarm) ProtoMessage()      {}

func (msg MsgCreateFarm) Route() string { return RouterKey }
func (msg MsgCreateFarm) Type() string  { return "create_farm" }

func (msg MsgCreateFarm) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Creator)}
}

func (msg MsgCreateFarm) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgCreateFarm) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.StakeDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidDenom, "stake denom: %s", err)
	}
	if err := sdk.ValidateDenom(msg.RewardDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidDenom, "reward denom: %s", err)
	}
	if msg.RatePerSec.IsNil() || msg.RatePerSec.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidParams, "emission rate must be non-negative")
	}
	return nil
}

// MsgDeposit stakes tokens into a farm.
type MsgDeposit struct {
	Farmer string   `json:"farmer"`
	FarmId uint64   `json:"farm_id"`
	Amount math.Int `json:"amount"`
}

func NewMsgDeposit(farmer string, farmId uint64, amount math.Int) *MsgDeposit {
	return &MsgDeposit{Farmer: farmer, FarmId: farmId, Amount: amount}
}

func (msg *MsgDeposit) Reset()         { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgDeposit) ProtoMessage()      {}

func (msg MsgDeposit) Route() string { return RouterKey }
func (msg MsgDeposit) Type() string  { return "deposit" }

func (msg MsgDeposit) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Farmer)}
}

func (msg MsgDeposit) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Farmer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid farmer address: %s", err)
	}
	if msg.FarmId == 0 {
		return sdkerrors.Wrap(ErrInvalidFarmId, "farm id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "deposit amount must be positive")
	}
	return nil
}

// MsgWithdraw unstakes tokens from a farm. Farms carry no lock period.
type MsgWithdraw struct {
	Farmer string   `json:"farmer"`
	FarmId uint64   `json:"farm_id"`
	Amount math.Int `json:"amount"`
}

func NewMsgWithdraw(farmer string, farmId uint64, amount math.Int) *MsgWithdraw {
	return &MsgWithdraw{Farmer: farmer, FarmId: farmId, Amount: amount}
}

func (msg *MsgWithdraw) Reset()         { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgWithdraw) ProtoMessage()      {}

func (msg MsgWithdraw) Route() string { return RouterKey }
func (msg MsgWithdraw) Type() string  { return "withdraw" }

func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Farmer)}
}

func (msg MsgWithdraw) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Farmer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid farmer address: %s", err)
	}
	if msg.FarmId == 0 {
		return sdkerrors.Wrap(ErrInvalidFarmId, "farm id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "withdraw amount must be positive")
	}
	return nil
}

// MsgHarvest pays out accrued rewards with the position's boost applied.
type MsgHarvest struct {
	Farmer string `json:"farmer"`
	FarmId uint64 `json:"farm_id"`
}

func NewMsgHarvest(farmer string, farmId uint64) *MsgHarvest {
	return &MsgHarvest{Farmer: farmer, FarmId: farmId}
}

func (msg *MsgHarvest) Reset()         { *msg = MsgHarvest{} }
func (msg *MsgHarvest) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgHarvest) ProtoMessage()      {}

func (msg MsgHarvest) Route() string { return RouterKey }
func (msg MsgHarvest) Type() string  { return "harvest" }

func (msg MsgHarvest) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Farmer)}
}

func (msg MsgHarvest) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgHarvest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Farmer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid farmer address: %s", err)
	}
	if msg.FarmId == 0 {
		return sdkerrors.Wrap(ErrInvalidFarmId, "farm id cannot be zero")
	}
	return nil
}

// MsgCompound folds the boosted reward back into the farm stake. Only valid
// when the farm's stake and reward denoms match.
type MsgCompound struct {
	Farmer string `json:"farmer"`
	FarmId uint64 `json:"farm_id"`
}

func NewMsgCompound(farmer string, farmId uint64) *MsgCompound {
	return &MsgCompound{Farmer: farmer, FarmId: farmId}
}

func (msg *MsgCompound) Reset()         { *msg = MsgCompound{} }
func (msg *MsgCompound) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgCompound) ProtoMessage()      {}

func (msg MsgCompound) Route() string { return RouterKey }
func (msg MsgCompound) Type() string  { return "compound" }

func (msg MsgCompound) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Farmer)}
}

func (msg MsgCompound) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgCompound) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Farmer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid farmer address: %s", err)
	}
	if msg.FarmId == 0 {
		return sdkerrors.Wrap(ErrInvalidFarmId, "farm id cannot be zero")
	}
	return nil
}

// MsgFundFarm moves reward tokens into a farm's reserve. Anyone may fund.
type MsgFundFarm struct {
	Funder string   `json:"funder"`
	FarmId uint64   `json:"farm_id"`
	Amount math.Int `json:"amount"`
}

func NewMsgFundFarm(funder string, farmId uint64, amount math.Int) *MsgFundFarm {
	return &MsgFundFarm{Funder: funder, FarmId: farmId, Amount: amount}
}

func (msg *MsgFundFarm) Reset()         { *msg = MsgFundFarm{} }
func (msg *MsgFundFarm) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgFundFarm) ProtoMessage()      {}

func (msg MsgFundFarm) Route() string { return RouterKey }
func (msg MsgFundFarm) Type() string  { return "fund_farm" }

func (msg MsgFundFarm) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Funder)}
}

func (msg MsgFundFarm) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgFundFarm) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Funder); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid funder address: %s", err)
	}
	if msg.FarmId == 0 {
		return sdkerrors.Wrap(ErrInvalidFarmId, "farm id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "funding amount must be positive")
	}
	return nil
}

// MsgSetBoost assigns a payout boost to one position. Authority only.
type MsgSetBoost struct {
	Authority string `json:"authority"`
	FarmId    uint64 `json:"farm_id"`
	Farmer    string `json:"farmer"`
	BoostBps  uint64 `json:"boost_bps"`
}

func NewMsgSetBoost(authority string, farmId uint64, farmer string, boostBps uint64) *MsgSetBoost {
	return &MsgSetBoost{Authority: authority, FarmId: farmId, Farmer: farmer, BoostBps: boostBps}
}

func (msg *MsgSetBoost) Reset()         { *msg = MsgSetBoost{} }
func (msg *MsgSetBoost) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgSetBoost) ProtoMessage()      {}

func (msg MsgSetBoost) Route() string { return RouterKey }
func (msg MsgSetBoost) Type() string  { return "set_boost" }

func (msg MsgSetBoost) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgSetBoost) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSetBoost) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Farmer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid farmer address: %s", err)
	}
	if msg.FarmId == 0 {
		return sdkerrors.Wrap(ErrInvalidFarmId, "farm id cannot be zero")
	}
	if msg.BoostBps > DefaultMaxBoostBps {
		return sdkerrors.Wrapf(ErrBoostTooHigh, "%d bps exceeds hard cap %d", msg.BoostBps, DefaultMaxBoostBps)
	}
	return nil
}

// MsgSetFarmRate updates one farm's emission rate. Authority only.
type MsgSetFarmRate struct {
	Authority string         `json:"authority"`
	FarmId    uint64         `json:"farm_id"`
	Rate      math.LegacyDec `json:"rate"`
}

func NewMsgSetFarmRate(authority string, farmId uint64, rate math.LegacyDec) *MsgSetFarmRate {
	return &MsgSetFarmRate{Authority: authority, FarmId: farmId, Rate: rate}
}

func (msg *MsgSetFarmRate) Reset()         { *msg = MsgSetFarmRate{} }
func (msg *MsgSetFarmRate) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgSetFarmRate) ProtoMessage()      {}

func (msg MsgSetFarmRate) Route() string { return RouterKey }
func (msg MsgSetFarmRate) Type() string  { return "set_farm_rate" }

func (msg MsgSetFarmRate) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgSetFarmRate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSetFarmRate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.FarmId == 0 {
		return sdkerrors.Wrap(ErrInvalidFarmId, "farm id cannot be zero")
	}
	if msg.Rate.IsNil() || msg.Rate.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidParams, "emission rate must be non-negative")
	}
	return nil
}
