// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli referendum-cli 的根命令
package cli

import (
	"fmt"
	"os"

	"github.com/33cn/referendum/common/log"
	"github.com/33cn/referendum/pluginmgr"
	"github.com/33cn/referendum/system/dapp/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "referendum-cli",
	Short: "referendum client tools",
}

func init() {
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.CoinsCmd(),
		commands.GenesisCmd(),
		commands.TxCmd(),
		commands.VersionCmd(),
	)
}

// Run 插件的命令按名称顺序加在系统命令之后
func Run(conf string) {
	pluginmgr.AddCmd(rootCmd)
	log.SetLogLevel("error")
	rootCmd.PersistentFlags().String("conf", conf, "config file")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
