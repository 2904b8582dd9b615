package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgStake{}, "stakepool/MsgStake", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "stakepool/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgClaimRewards{}, "stakepool/MsgClaimRewards", nil)
	cdc.RegisterConcrete(&MsgCompound{}, "stakepool/MsgCompound", nil)
	cdc.RegisterConcrete(&MsgEmergencyWithdraw{}, "stakepool/MsgEmergencyWithdraw", nil)
	cdc.RegisterConcrete(&MsgFundRewards{}, "stakepool/MsgFundRewards", nil)
	cdc.RegisterConcrete(&MsgSetEmissionRate{}, "stakepool/MsgSetEmissionRate", nil)
	cdc.RegisterConcrete(&MsgSetPaused{}, "stakepool/MsgSetPaused", nil)
	cdc.RegisterConcrete(&MsgRecoverTokens{}, "stakepool/MsgRecoverTokens", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgStake{},
		&MsgWithdraw{},
		&MsgClaimRewards{},
		&MsgCompound{},
		&MsgEmergencyWithdraw{},
		&MsgFundRewards{},
		&MsgSetEmissionRate{},
		&MsgSetPaused{},
		&MsgRecoverTokens{},
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
