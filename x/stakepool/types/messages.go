package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgStake{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgClaimRewards{}
	_ sdk.Msg = &MsgCompound{}
	_ sdk.Msg = &MsgEmergencyWithdraw{}
	_ sdk.Msg = &MsgFundRewards{}
	_ sdk.Msg = &MsgSetEmissionRate{}
	_ sdk.Msg = &MsgSetPaused{}
	_ sdk.Msg = &MsgRecoverTokens{}
)

// MsgStake deposits stake tokens into the pool.
type MsgStake struct {
	Staker string   `json:"staker"`
	Amount math.Int `json:"amount"`
}

func NewMsgStake(staker string, amount math.Int) *MsgStake {
	return &MsgStake{Staker: staker, Amount: amount}
}

func (msg *MsgStake) Reset()         { *msg = MsgStake{} }
func (msg *MsgStake) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgStake) ProtoMessage()      {}

func (msg MsgStake) Route() string { return RouterKey }
func (msg MsgStake) Type() string  { return "stake" }

func (msg MsgStake) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Staker)}
}

func (msg MsgStake) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid staker address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "stake amount must be positive")
	}
	return nil
}

// MsgWithdraw removes staked tokens. Withdrawing before the lock period
// expires incurs the early-withdrawal penalty on the gross amount.
type MsgWithdraw struct {
	Staker string   `json:"staker"`
	Amount math.Int `json:"amount"`
}

func NewMsgWithdraw(staker string, amount math.Int) *MsgWithdraw {
	return &MsgWithdraw{Staker: staker, Amount: amount}
}

func (msg *MsgWithdraw) Reset()         { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgWithdraw) ProtoMessage()      {}

func (msg MsgWithdraw) Route() string { return RouterKey }
func (msg MsgWithdraw) Type() string  { return "withdraw" }

func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Staker)}
}

func (msg MsgWithdraw) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid staker address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "withdraw amount must be positive")
	}
	return nil
}

// MsgClaimRewards pays out all accrued rewards without touching the stake.
type MsgClaimRewards struct {
	Staker string `json:"staker"`
}

func NewMsgClaimRewards(staker string) *MsgClaimRewards {
	return &MsgClaimRewards{Staker: staker}
}

func (msg *MsgClaimRewards) Reset()         { *msg = MsgClaimRewards{} }
func (msg *MsgClaimRewards) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgClaimRewards) ProtoMessage()      {}

func (msg MsgClaimRewards) Route() string { return RouterKey }
func (msg MsgClaimRewards) Type() string  { return "claim_rewards" }

func (msg MsgClaimRewards) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Staker)}
}

func (msg MsgClaimRewards) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgClaimRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid staker address: %s", err)
	}
	return nil
}

// MsgCompound folds accrued rewards back into the stake. Only valid when the
// stake and reward denoms are the same token. Restarts the lock clock.
type MsgCompound struct {
	Staker string `json:"staker"`
}

func NewMsgCompound(staker string) *MsgCompound {
	return &MsgCompound{Staker: staker}
}

func (msg *MsgCompound) Reset()         { *msg = MsgCompound{} }
func (msg *MsgCompound) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgCompound) ProtoMessage()      {}

func (msg MsgCompound) Route() string { return RouterKey }
func (msg MsgCompound) Type() string  { return "compound" }

func (msg MsgCompound) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Staker)}
}

func (msg MsgCompound) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgCompound) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid staker address: %s", err)
	}
	return nil
}

// MsgEmergencyWithdraw returns the full stake immediately, forfeiting all
// accrued rewards. Works even while the pool is paused.
type MsgEmergencyWithdraw struct {
	Staker string `json:"staker"`
}

func NewMsgEmergencyWithdraw(staker string) *MsgEmergencyWithdraw {
	return &MsgEmergencyWithdraw{Staker: staker}
}

func (msg *MsgEmergencyWithdraw) Reset()         { *msg = MsgEmergencyWithdraw{} }
func (msg *MsgEmergencyWithdraw) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgEmergencyWithdraw) ProtoMessage()      {}

func (msg MsgEmergencyWithdraw) Route() string { return RouterKey }
func (msg MsgEmergencyWithdraw) Type() string  { return "emergency_withdraw" }

func (msg MsgEmergencyWithdraw) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Staker)}
}

func (msg MsgEmergencyWithdraw) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgEmergencyWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid staker address: %s", err)
	}
	return nil
}

// MsgFundRewards transfers reward tokens into the pool's reward reserve.
// Anyone may fund.
type MsgFundRewards struct {
	Funder string   `json:"funder"`
	Amount math.Int `json:"amount"`
}

func NewMsgFundRewards(funder string, amount math.Int) *MsgFundRewards {
	return &MsgFundRewards{Funder: funder, Amount: amount}
}

func (msg *MsgFundRewards) Reset()         { *msg = MsgFundRewards{} }
func (msg *MsgFundRewards) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgFundRewards) ProtoMessage()      {}

func (msg MsgFundRewards) Route() string { return RouterKey }
func (msg MsgFundRewards) Type() string  { return "fund_rewards" }

func (msg MsgFundRewards) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Funder)}
}

func (msg MsgFundRewards) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgFundRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Funder); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid funder address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "funding amount must be positive")
	}
	return nil
}

// MsgSetEmissionRate updates the per-second reward emission. Authority only.
type MsgSetEmissionRate struct {
	Authority string         `json:"authority"`
	Rate      math.LegacyDec `json:"rate"`
}

func NewMsgSetEmissionRate(authority string, rate math.LegacyDec) *MsgSetEmissionRate {
	return &MsgSetEmissionRate{Authority: authority, Rate: rate}
}

func (msg *MsgSetEmissionRate) Reset()         { *msg = MsgSetEmissionRate{} }
func (msg *MsgSetEmissionRate) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgSetEmissionRate) ProtoMessage()      {}

func (msg MsgSetEmissionRate) Route() string { return RouterKey }
func (msg MsgSetEmissionRate) Type() string  { return "set_emission_rate" }

func (msg MsgSetEmissionRate) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgSetEmissionRate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSetEmissionRate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.Rate.IsNil() || msg.Rate.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidParams, "emission rate must be non-negative")
	}
	return nil
}

// MsgSetPaused pauses or resumes deposits and ordinary withdrawals.
// Authority only. Emergency withdrawals are never blocked.
type MsgSetPaused struct {
	Authority string `json:"authority"`
	Paused    bool   `json:"paused"`
}

func NewMsgSetPaused(authority string, paused bool) *MsgSetPaused {
	return &MsgSetPaused{Authority: authority, Paused: paused}
}

func (msg *MsgSetPaused) Reset()         { *msg = MsgSetPaused{} }
func (msg *MsgSetPaused) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgSetPaused) ProtoMessage()      {}

func (msg MsgSetPaused) Route() string { return RouterKey }
func (msg MsgSetPaused) Type() string  { return "set_paused" }

func (msg MsgSetPaused) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgSetPaused) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSetPaused) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

// MsgRecoverTokens sweeps stray tokens out of the module account. The stake
// and reward denoms are protected. Authority only.
type MsgRecoverTokens struct {
	Authority string   `json:"authority"`
	Denom     string   `json:"denom"`
	Amount    math.Int `json:"amount"`
	Recipient string   `json:"recipient"`
}

func NewMsgRecoverTokens(authority, denom string, amount math.Int, recipient string) *MsgRecoverTokens {
	return &MsgRecoverTokens{Authority: authority, Denom: denom, Amount: amount, Recipient: recipient}
}

func (msg *MsgRecoverTokens) Reset()         { *msg = MsgRecoverTokens{} }
func (msg *MsgRecoverTokens) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgRecoverTokens) ProtoMessage()      {}

func (msg MsgRecoverTokens) Route() string { return RouterKey }
func (msg MsgRecoverTokens) Type() string  { return "recover_tokens" }

func (msg MsgRecoverTokens) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgRecoverTokens) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgRecoverTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParams, "invalid denom: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "recovery amount must be positive")
	}
	return nil
}
