package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/helix-protocol/helix/testutil/keeper"
	"github.com/helix-protocol/helix/x/bridge/keeper"
	"github.com/helix-protocol/helix/x/bridge/types"
)

var (
	depositor = sdk.AccAddress("depositor___________")
	receiver  = sdk.AccAddress("receiver____________")
	relayer   = sdk.AccAddress("relayer_____________")
	intruder  = sdk.AccAddress("intruder____________")
)

const externalAddr = "0x00000000000000000000000000000000deadbeef"

// setupOpenBridge returns a bridge with uatom bridgeable and relayer set.
func setupOpenBridge(t *testing.T) (keeper.Keeper, *testkeeper.MockBankKeeper, sdk.Context) {
	k, bank, ctx := testkeeper.BridgeKeeper(t)
	params := types.Params{
		RelayerAddress:  relayer.String(),
		SupportedDenoms: []string{"uatom"},
		MaxLockAmount:   math.NewInt(1_000_000),
	}
	require.NoError(t, k.UpdateParams(ctx, testkeeper.TestAuthority, params))
	return k, bank, ctx
}

func TestLockEscrowsAndSequencesNonces(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	ctx = ctx.WithBlockTime(time.Unix(1_000, 0))
	nonce, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(4_000))
	require.NoError(t, err)
	require.Equal(t, uint64(1), nonce)

	nonce, err = k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(6_000))
	require.NoError(t, err)
	require.Equal(t, uint64(2), nonce)

	// Both transfers sit in the module escrow.
	require.True(t, bank.GetBalance(ctx, depositor, "uatom").Amount.IsZero())
	require.Equal(t, math.NewInt(10_000),
		bank.GetBalance(ctx, k.GetModuleAddress(), "uatom").Amount)
	require.Equal(t, math.NewInt(10_000), k.GetEscrowed(ctx, "uatom"))

	lock, err := k.GetLock(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, depositor.String(), lock.Sender)
	require.Equal(t, "ethereum", lock.DestChain)
	require.Equal(t, externalAddr, lock.ExternalRecipient)
	require.Equal(t, math.NewInt(4_000), lock.Amount)
	require.Equal(t, int64(1_000), lock.CreatedUnix)

	_, err = k.GetLock(ctx, 3)
	require.ErrorIs(t, err, types.ErrLockNotFound)
}

func TestLockAndUnlockRejectNilAmounts(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000))))

	// A zero-value math.Int errors instead of panicking in the cap check.
	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.Int{})
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	err = k.Unlock(ctx, relayer, receiver, "uatom", math.Int{}, "ethereum", "srctx-nil")
	require.ErrorIs(t, err, types.ErrInvalidAmount)
	require.False(t, k.IsProcessed(ctx, "ethereum", "srctx-nil"))
}

func TestLockRejectsUnsupportedDenom(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(1_000))))

	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uusdc", math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrUnsupportedDenom)
}

func TestLockEnforcesMaxAmount(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(2_000_000))))

	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(1_000_001))
	require.ErrorIs(t, err, types.ErrAmountTooLarge)

	// Exactly at the cap is fine.
	_, err = k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(1_000_000))
	require.NoError(t, err)
}

func TestLockZeroCapMeansUncapped(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	params := types.Params{
		RelayerAddress:  relayer.String(),
		SupportedDenoms: []string{"uatom"},
		MaxLockAmount:   math.ZeroInt(),
	}
	require.NoError(t, k.UpdateParams(ctx, testkeeper.TestAuthority, params))

	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(5_000_000))))
	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(5_000_000))
	require.NoError(t, err)
}

func TestLockInsufficientBalance(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100))))

	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(200))
	require.ErrorIs(t, err, types.ErrTransferFailed)

	// Nothing moved and no nonce was consumed.
	require.Equal(t, math.NewInt(100), bank.GetBalance(ctx, depositor, "uatom").Amount)
	require.Equal(t, uint64(1), k.GetNextNonce(ctx))
}

func TestUnlockReleasesEscrow(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))
	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(10_000))
	require.NoError(t, err)

	err = k.Unlock(ctx, relayer, receiver, "uatom", math.NewInt(7_000), "ethereum", "srctx-1")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(7_000), bank.GetBalance(ctx, receiver, "uatom").Amount)
	require.Equal(t, math.NewInt(3_000), k.GetEscrowed(ctx, "uatom"))
	require.True(t, k.IsProcessed(ctx, "ethereum", "srctx-1"))

	_, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken)
}

func TestUnlockRejectsReplay(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))
	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(10_000))
	require.NoError(t, err)

	require.NoError(t, k.Unlock(ctx, relayer, receiver, "uatom", math.NewInt(1_000), "ethereum", "srctx-1"))

	err = k.Unlock(ctx, relayer, receiver, "uatom", math.NewInt(1_000), "ethereum", "srctx-1")
	require.ErrorIs(t, err, types.ErrAlreadyProcessed)
	require.Equal(t, math.NewInt(1_000), bank.GetBalance(ctx, receiver, "uatom").Amount)
}

func TestUnlockRelayerOnly(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))
	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(10_000))
	require.NoError(t, err)

	err = k.Unlock(ctx, intruder, receiver, "uatom", math.NewInt(1_000), "ethereum", "srctx-1")
	require.ErrorIs(t, err, types.ErrNotRelayer)
	require.False(t, k.IsProcessed(ctx, "ethereum", "srctx-1"))
}

func TestUnlockDisabledWithoutRelayer(t *testing.T) {
	k, bank, ctx := testkeeper.BridgeKeeper(t)
	params := types.Params{
		RelayerAddress:  "",
		SupportedDenoms: []string{"uatom"},
		MaxLockAmount:   math.ZeroInt(),
	}
	require.NoError(t, k.UpdateParams(ctx, testkeeper.TestAuthority, params))

	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000))))
	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(1_000))
	require.NoError(t, err)

	err = k.Unlock(ctx, relayer, receiver, "uatom", math.NewInt(1_000), "ethereum", "srctx-1")
	require.ErrorIs(t, err, types.ErrNotRelayer)
}

func TestUnlockCannotExceedEscrow(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(5_000))))
	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(5_000))
	require.NoError(t, err)

	err = k.Unlock(ctx, relayer, receiver, "uatom", math.NewInt(5_001), "ethereum", "srctx-1")
	require.ErrorIs(t, err, types.ErrAmountTooLarge)

	// Draining it exactly is fine and clears the counter.
	require.NoError(t, k.Unlock(ctx, relayer, receiver, "uatom", math.NewInt(5_000), "ethereum", "srctx-2"))
	require.True(t, k.GetEscrowed(ctx, "uatom").IsZero())
}

func TestUpdateParamsAuthorityGated(t *testing.T) {
	k, _, ctx := testkeeper.BridgeKeeper(t)
	params := types.Params{
		RelayerAddress:  relayer.String(),
		SupportedDenoms: []string{"uatom"},
		MaxLockAmount:   math.ZeroInt(),
	}

	err := k.UpdateParams(ctx, intruder.String(), params)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, k.UpdateParams(ctx, testkeeper.TestAuthority, params))
	got, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, relayer.String(), got.RelayerAddress)
}

func TestBridgeGenesisRoundTrip(t *testing.T) {
	k, bank, ctx := setupOpenBridge(t)
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))
	_, err := k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(4_000))
	require.NoError(t, err)
	_, err = k.Lock(ctx, depositor, "ethereum", externalAddr, "uatom", math.NewInt(6_000))
	require.NoError(t, err)
	require.NoError(t, k.Unlock(ctx, relayer, receiver, "uatom", math.NewInt(2_500), "ethereum", "srctx-1"))

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Locks, 2)
	require.Equal(t, []string{"ethereum/srctx-1"}, exported.ProcessedTxs)
	require.Equal(t, uint64(3), exported.NextNonce)
	require.Len(t, exported.Escrowed, 1)
	require.Equal(t, math.NewInt(7_500), exported.Escrowed[0].Amount)

	// Reload into a fresh keeper and compare the re-export.
	k2, _, ctx2 := testkeeper.BridgeKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))
	reexported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)
}
