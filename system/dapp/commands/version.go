// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统级dapp相关命令包
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/33cn/referendum/client"
	"github.com/33cn/referendum/common"
	"github.com/33cn/referendum/system/dapp"
	"github.com/33cn/referendum/types"
	"github.com/spf13/cobra"
)

var errGenesisDone = errors.New("genesis block already executed")

// VersionCmd version command
func VersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Get version and last block",
		Run:   version,
	}
	return cmd
}

type versionResult struct {
	Version   string   `json:"version"`
	Executors []string `json:"executors"`
	Height    int64    `json:"height"`
	BlockTime int64    `json:"blocktime"`
	StateHash string   `json:"stateHash,omitempty"`
}

func version(cmd *cobra.Command, args []string) {
	client.Run(cmd, func(c *client.Client) (interface{}, error) {
		res := &versionResult{Version: types.Version, Executors: dapp.DriverNames(), Height: -1}
		header, err := c.LastHeader()
		if err == types.ErrNotFound {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res.Height = header.Height
		res.BlockTime = header.BlockTime
		res.StateHash = common.ToHex(header.StateHash)
		return res, nil
	})
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		printErr(err)
		return
	}
	fmt.Println(string(data))
}

func printErr(err error) {
	fmt.Fprintln(os.Stderr, err)
}
