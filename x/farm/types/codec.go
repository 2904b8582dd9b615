package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateFarm{}, "farm/MsgCreateFarm", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "farm/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "farm/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgHarvest{}, "farm/MsgHarvest", nil)
	cdc.RegisterConcrete(&MsgCompound{}, "farm/MsgCompound", nil)
	cdc.RegisterConcrete(&MsgFundFarm{}, "farm/MsgFundFarm", nil)
	cdc.RegisterConcrete(&MsgSetBoost{}, "farm/MsgSetBoost", nil)
	cdc.RegisterConcrete(&MsgSetFarmRate{}, "farm/MsgSetFarmRate", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateFarm{},
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgHarvest{},
		&MsgCompound{},
		&MsgFundFarm{},
		&MsgSetBoost{},
		&MsgSetFarmRate{},
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
