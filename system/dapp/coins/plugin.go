// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 原生币插件
package coins

import (
	"github.com/33cn/referendum/pluginmgr"
	"github.com/33cn/referendum/system/dapp/coins/executor"
	ty "github.com/33cn/referendum/system/dapp/coins/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "coins",
		ExecName: ty.CoinsX,
		Exec:     executor.Init,
		Cmd:      nil,
	})
}
