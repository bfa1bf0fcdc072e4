// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/spf13/cobra"
)

// PluginBase 插件的通用实现
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func()
	Cmd      func() *cobra.Command
}

// GetName 插件名称
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName 执行器名称
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// InitExec 注册执行器
func (p *PluginBase) InitExec() {
	if p.Exec != nil {
		p.Exec()
	}
}

// AddCmd 添加命令行
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}
