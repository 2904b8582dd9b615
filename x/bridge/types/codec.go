package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgLock{}, "bridge/MsgLock", nil)
	cdc.RegisterConcrete(&MsgUnlock{}, "bridge/MsgUnlock", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "bridge/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgLock{},
		&MsgUnlock{},
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
