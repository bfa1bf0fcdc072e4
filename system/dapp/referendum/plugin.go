// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package referendum 二元预测市场插件
package referendum

import (
	"github.com/33cn/referendum/pluginmgr"
	"github.com/33cn/referendum/system/dapp/referendum/commands"
	"github.com/33cn/referendum/system/dapp/referendum/executor"
	ty "github.com/33cn/referendum/system/dapp/referendum/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "referendum",
		ExecName: ty.ReferendumX,
		Exec:     executor.Init,
		Cmd:      commands.ReferendumCmd,
	})
}
