// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/referendum/client"
	commandtypes "github.com/33cn/referendum/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// TxCmd transaction command
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		QueryTxCmd(),
	)
	return cmd
}

// QueryTxCmd  get tx by hash
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query transaction result by hash",
		Run:   queryTx,
	}
	addQueryTxFlags(cmd)
	return cmd
}

func addQueryTxFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
}

func queryTx(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		res, err := c.GetTx(hash)
		if err != nil {
			return nil, err
		}
		return commandtypes.DecodeTxResult(res), nil
	})
}
