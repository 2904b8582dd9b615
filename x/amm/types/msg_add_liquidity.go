package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity defines a message to add liquidity to an existing pool.
// DesiredA/DesiredB are upper bounds; the keeper clamps one side to the pool
// ratio. MinA/MinB are the provider's slippage protection.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	DesiredA math.Int `json:"desired_a"`
	DesiredB math.Int `json:"desired_b"`
	MinA     math.Int `json:"min_a"`
	MinB     math.Int `json:"min_b"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, poolId uint64, desiredA, desiredB, minA, minB math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		PoolId:   poolId,
		DesiredA: desiredA,
		DesiredB: desiredB,
		MinA:     minA,
		MinB:     minB,
	}
}

func (msg *MsgAddLiquidity) Reset()         { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgAddLiquidity) ProtoMessage()      {}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}

	if msg.DesiredA.IsNil() || !msg.DesiredA.IsPositive() || msg.DesiredB.IsNil() || !msg.DesiredB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amounts must be positive")
	}

	if msg.MinA.IsNil() || msg.MinA.IsNegative() || msg.MinB.IsNil() || msg.MinB.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amounts cannot be negative")
	}

	if msg.MinA.GT(msg.DesiredA) || msg.MinB.GT(msg.DesiredB) {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amounts cannot exceed desired amounts")
	}

	return nil
}
