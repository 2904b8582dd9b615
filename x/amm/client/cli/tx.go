package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/helix-protocol/helix/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
	)

	return ammTxCmd
}

func parseAmount(name, raw string) (math.Int, error) {
	amount, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, raw)
	}
	if !amount.IsPositive() {
		return math.Int{}, fmt.Errorf("%s must be positive", name)
	}
	return amount, nil
}

func parseMinAmount(name, raw string) (math.Int, error) {
	amount, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, raw)
	}
	if amount.IsNegative() {
		return math.Int{}, fmt.Errorf("%s cannot be negative", name)
	}
	return amount, nil
}

// CmdCreatePool returns a CLI command handler for creating a liquidity pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [token-a] [amount-a] [token-b] [amount-b]",
		Short: "Create a new liquidity pool",
		Long: `Create a new liquidity pool with an initial deposit of both tokens.

Example:
  $ helixd tx amm create-pool uhlx 1000000 uusdc 2000000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenA := args[0]
			tokenB := args[2]
			if tokenA == tokenB {
				return fmt.Errorf("tokens must be different")
			}

			amountA, err := parseAmount("amount-a", args[1])
			if err != nil {
				return err
			}
			amountB, err := parseAmount("amount-b", args[3])
			if err != nil {
				return err
			}

			msg := types.NewMsgCreatePool(
				clientCtx.GetFromAddress().String(), tokenA, tokenB, amountA, amountB,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for adding liquidity to a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [amount-a] [amount-b]",
		Short: "Add liquidity to an existing pool",
		Long: `Add liquidity to an existing pool by depositing both tokens.

Deposits are clamped to the current pool ratio; the unused remainder of the
more generous side stays in your wallet. Use --min-amount-a/--min-amount-b to
bound how far the clamp may cut into each side.

Example:
  $ helixd tx amm add-liquidity 1 1000000 2000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amountA, err := parseAmount("amount-a", args[1])
			if err != nil {
				return err
			}
			amountB, err := parseAmount("amount-b", args[2])
			if err != nil {
				return err
			}

			minARaw, err := cmd.Flags().GetString(FlagMinAmountA)
			if err != nil {
				return err
			}
			minA, err := parseMinAmount("min-amount-a", minARaw)
			if err != nil {
				return err
			}
			minBRaw, err := cmd.Flags().GetString(FlagMinAmountB)
			if err != nil {
				return err
			}
			minB, err := parseMinAmount("min-amount-b", minBRaw)
			if err != nil {
				return err
			}

			msg := types.NewMsgAddLiquidity(
				clientCtx.GetFromAddress().String(), poolID, amountA, amountB, minA, minB,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinAmountA, "0", "Minimum accepted deposit of token A after ratio clamping")
	cmd.Flags().String(FlagMinAmountB, "0", "Minimum accepted deposit of token B after ratio clamping")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for burning LP shares
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [shares]",
		Short: "Burn LP shares and withdraw both tokens",
		Long: `Burn LP shares and withdraw the proportional amount of both reserves.

Example:
  $ helixd tx amm remove-liquidity 1 500000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			shares, err := parseAmount("shares", args[1])
			if err != nil {
				return err
			}

			minARaw, err := cmd.Flags().GetString(FlagMinAmountA)
			if err != nil {
				return err
			}
			minA, err := parseMinAmount("min-amount-a", minARaw)
			if err != nil {
				return err
			}
			minBRaw, err := cmd.Flags().GetString(FlagMinAmountB)
			if err != nil {
				return err
			}
			minB, err := parseMinAmount("min-amount-b", minBRaw)
			if err != nil {
				return err
			}

			msg := types.NewMsgRemoveLiquidity(
				clientCtx.GetFromAddress().String(), poolID, shares, minA, minB,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinAmountA, "0", "Minimum accepted payout of token A")
	cmd.Flags().String(FlagMinAmountB, "0", "Minimum accepted payout of token B")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping against a pool
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [token-in] [amount-in] [min-amount-out]",
		Short: "Swap tokens against a pool",
		Long: `Swap an exact input amount against a pool's reserves.

The swap fails if the computed output falls below min-amount-out.

Example:
  $ helixd tx amm swap 1 uhlx 100000 90000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amountIn, err := parseAmount("amount-in", args[2])
			if err != nil {
				return err
			}
			minOut, err := parseMinAmount("min-amount-out", args[3])
			if err != nil {
				return err
			}

			msg := types.NewMsgSwap(
				clientCtx.GetFromAddress().String(), poolID, args[1], amountIn, minOut,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
