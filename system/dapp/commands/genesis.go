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

// GenesisCmd 执行创世区块, 只能在还没有任何区块时执行
// 地址和金额不指定时使用配置文件中的 [coins]
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Execute the genesis block",
		Run:   genesis,
	}
	cmd.Flags().StringP("addr", "a", "", "genesis address, default coins.genesis in config")
	cmd.Flags().StringP("amount", "m", "", "genesis amount, default coins.genesisAmount in config")
	return cmd
}

func genesis(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	amountStr, _ := cmd.Flags().GetString("amount")
	var amount uint64
	if amountStr != "" {
		var err error
		amount, err = commandtypes.FormatAmountDisplay2Value(amountStr)
		if err != nil {
			printErr(err)
			return
		}
	}
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		if addr == "" {
			addr = c.Config().Coins.Genesis
		}
		if amountStr == "" {
			amount = c.Config().Coins.GenesisAmount
		}
		if _, err := c.LastHeader(); err == nil {
			return nil, errGenesisDone
		}
		return c.SendTx(cty.CreateGenesis(addr, amount))
	})
}
