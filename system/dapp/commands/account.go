// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/referendum/client"
	commandtypes "github.com/33cn/referendum/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		NewAccountCmd(),
		GetBalanceCmd(),
	)
	return cmd
}

// NewAccountCmd 生成新的私钥和地址, 不需要打开数据库
func NewAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new secp256k1 key and its address",
		Run:   createAccount,
	}
	return cmd
}

func createAccount(cmd *cobra.Command, args []string) {
	key, err := commandtypes.NewKey()
	if err != nil {
		printErr(err)
		return
	}
	printJSON(key)
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		acc, err := c.GetBalance(addr)
		if err != nil {
			return nil, err
		}
		return commandtypes.DecodeAccount(acc), nil
	})
}
