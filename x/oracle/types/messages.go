package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSetPrice{}
	_ sdk.Msg = &MsgSetFeeder{}
	_ sdk.Msg = &MsgSwapWithDeadline{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSetPrice posts a quote for one asset. Feeder only.
type MsgSetPrice struct {
	Feeder string         `json:"feeder"`
	Asset  string         `json:"asset"`
	Price  math.LegacyDec `json:"price"`
}

func NewMsgSetPrice(feeder, asset string, price math.LegacyDec) *MsgSetPrice {
	return &MsgSetPrice{Feeder: feeder, Asset: asset, Price: price}
}

func (msg *MsgSetPrice) Reset()         { *msg = MsgSetPrice{} }
func (msg *MsgSetPrice) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgSetPrice) ProtoMessage()      {}

func (msg MsgSetPrice) Route() string { return RouterKey }
func (msg MsgSetPrice) Type() string  { return "set_price" }

func (msg MsgSetPrice) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Feeder)}
}

func (msg MsgSetPrice) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSetPrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Feeder); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid feeder address: %s", err)
	}
	if msg.Asset == "" || len(msg.Asset) > MaxAssetLen {
		return sdkerrors.Wrapf(ErrInvalidAsset, "asset %q", msg.Asset)
	}
	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidPrice, "price must be positive")
	}
	return nil
}

// MsgSetFeeder registers the trusted price feeder. Authority only.
type MsgSetFeeder struct {
	Authority string `json:"authority"`
	Feeder    string `json:"feeder"`
}

func NewMsgSetFeeder(authority, feeder string) *MsgSetFeeder {
	return &MsgSetFeeder{Authority: authority, Feeder: feeder}
}

func (msg *MsgSetFeeder) Reset()         { *msg = MsgSetFeeder{} }
func (msg *MsgSetFeeder) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgSetFeeder) ProtoMessage()      {}

func (msg MsgSetFeeder) Route() string { return RouterKey }
func (msg MsgSetFeeder) Type() string  { return "set_feeder" }

func (msg MsgSetFeeder) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgSetFeeder) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSetFeeder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.Feeder != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Feeder); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid feeder address: %s", err)
		}
	}
	return nil
}

// MsgSwapWithDeadline routes a swap through the AMM after checking the
// caller-supplied deadline against block time.
type MsgSwapWithDeadline struct {
	Trader       string   `json:"trader"`
	PoolId       uint64   `json:"pool_id"`
	TokenIn      string   `json:"token_in"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	DeadlineUnix int64    `json:"deadline_unix"`
}

func NewMsgSwapWithDeadline(trader string, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int, deadlineUnix int64) *MsgSwapWithDeadline {
	return &MsgSwapWithDeadline{
		Trader:       trader,
		PoolId:       poolID,
		TokenIn:      tokenIn,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		DeadlineUnix: deadlineUnix,
	}
}

func (msg *MsgSwapWithDeadline) Reset()         { *msg = MsgSwapWithDeadline{} }
func (msg *MsgSwapWithDeadline) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgSwapWithDeadline) ProtoMessage()      {}

func (msg MsgSwapWithDeadline) Route() string { return RouterKey }
func (msg MsgSwapWithDeadline) Type() string  { return "swap_with_deadline" }

func (msg MsgSwapWithDeadline) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Trader)}
}

func (msg MsgSwapWithDeadline) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgSwapWithDeadline) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.TokenIn); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAsset, "token in: %s", err)
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount out must be non-negative")
	}
	if msg.DeadlineUnix < 0 {
		return sdkerrors.Wrap(ErrDeadlineExceeded, "deadline cannot be negative")
	}
	return nil
}

// MsgUpdateParams replaces the oracle parameters. Authority only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgUpdateParams) ProtoMessage()      {}

func (msg MsgUpdateParams) Route() string { return RouterKey }
func (msg MsgUpdateParams) Type() string  { return "update_params" }

func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgUpdateParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}
