// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/referendum/client"
	commandtypes "github.com/33cn/referendum/system/dapp/commands/types"
	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Send system coins transactions",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateTransferCmd(),
	)
	return cmd
}

// CreateTransferCmd transfer coins
func CreateTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to an address",
		Run:   createTransfer,
	}
	addCreateTransferFlags(cmd)
	return cmd
}

func addCreateTransferFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "sender private key (hex)")
	cmd.MarkFlagRequired("key")

	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")

	cmd.Flags().StringP("amount", "m", "", "transaction amount, e.g. 1.5")
	cmd.MarkFlagRequired("amount")

	cmd.Flags().StringP("note", "n", "", "transaction note info")
}

func createTransfer(cmd *cobra.Command, args []string) {
	toAddr, _ := cmd.Flags().GetString("to")
	note, _ := cmd.Flags().GetString("note")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		printErr(err)
		return
	}
	priv, err := commandtypes.GetPrivKey(cmd, "key")
	if err != nil {
		printErr(err)
		return
	}
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		return c.SignAndSend(cty.CreateTransfer(toAddr, amount, note, 0, 0), priv)
	})
}
