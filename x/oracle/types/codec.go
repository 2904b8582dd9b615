package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSetPrice{}, "oracle/MsgSetPrice", nil)
	cdc.RegisterConcrete(&MsgSetFeeder{}, "oracle/MsgSetFeeder", nil)
	cdc.RegisterConcrete(&MsgSwapWithDeadline{}, "oracle/MsgSwapWithDeadline", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "oracle/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSetPrice{},
		&MsgSetFeeder{},
		&MsgSwapWithDeadline{},
		&MsgUpdateParams{},
	)
}

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc is the module codec used for message sign bytes and for
	// persisting hand-written state types as canonical JSON.
	ModuleCdc = amino
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
