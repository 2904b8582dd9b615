package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgLock{}
	_ sdk.Msg = &MsgUnlock{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgLock escrows tokens for an outbound transfer to another chain.
type MsgLock struct {
	Sender            string   `json:"sender"`
	DestChain         string   `json:"dest_chain"`
	ExternalRecipient string   `json:"external_recipient"`
	Denom             string   `json:"denom"`
	Amount            math.Int `json:"amount"`
}

func NewMsgLock(sender, destChain, externalRecipient, denom string, amount math.Int) *MsgLock {
	return &MsgLock{
		Sender:            sender,
		DestChain:         destChain,
		ExternalRecipient: externalRecipient,
		Denom:             denom,
		Amount:            amount,
	}
}

func (msg *MsgLock) Reset()         { *msg = MsgLock{} }
func (msg *MsgLock) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgLock) ProtoMessage()      {}

func (msg MsgLock) Route() string { return RouterKey }
func (msg MsgLock) Type() string  { return "lock" }

func (msg MsgLock) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Sender)}
}

func (msg MsgLock) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgLock) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if msg.DestChain == "" {
		return sdkerrors.Wrap(ErrInvalidChain, "destination chain cannot be empty")
	}
	if msg.ExternalRecipient == "" || len(msg.ExternalRecipient) > MaxExternalAddressLen {
		return sdkerrors.Wrap(ErrInvalidAddress, "invalid external recipient")
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrUnsupportedDenom, "denom: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount must be positive")
	}
	return nil
}

// MsgUnlock releases escrowed tokens for an attested inbound transfer.
// Relayer only; SourceTxHash is the replay-protection key.
type MsgUnlock struct {
	Relayer      string   `json:"relayer"`
	Recipient    string   `json:"recipient"`
	Denom        string   `json:"denom"`
	Amount       math.Int `json:"amount"`
	SourceChain  string   `json:"source_chain"`
	SourceTxHash string   `json:"source_tx_hash"`
}

func NewMsgUnlock(relayer, recipient, denom string, amount math.Int, sourceChain, sourceTxHash string) *MsgUnlock {
	return &MsgUnlock{
		Relayer:      relayer,
		Recipient:    recipient,
		Denom:        denom,
		Amount:       amount,
		SourceChain:  sourceChain,
		SourceTxHash: sourceTxHash,
	}
}

func (msg *MsgUnlock) Reset()         { *msg = MsgUnlock{} }
func (msg *MsgUnlock) String() string { return fmt.Sprintf("%#v", msg) }
func (*MsgUnlock) ProtoMessage()      {}

func (msg MsgUnlock) Route() string { return RouterKey }
func (msg MsgUnlock) Type() string  { return "unlock" }

func (msg MsgUnlock) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Relayer)}
}

func (msg MsgUnlock) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgUnlock) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid relayer address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrUnsupportedDenom, "denom: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount must be positive")
	}
	if msg.SourceChain == "" {
		return sdkerrors.Wrap(ErrInvalidChain, "source chain cannot be empty")
	}
	if msg.SourceTxHash == "" {
		return sdkerrors.Wrap(ErrInvalidTxHash, "source tx hash cannot be empty")
	}
	return nil
}

// MsgUpdateParams replaces the bridge parameters. Authority only.
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
