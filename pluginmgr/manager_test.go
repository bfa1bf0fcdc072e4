// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	inited := 0
	Register(&PluginBase{
		Name:     "plugintest",
		ExecName: "plugintestexec",
		Exec:     func() { inited++ },
		Cmd: func() *cobra.Command {
			return &cobra.Command{Use: "plugintest"}
		},
	})
	assert.True(t, HasExec("plugintestexec"))
	assert.False(t, HasExec("plugintest"))
	assert.Panics(t, func() { Register(&PluginBase{Name: "plugintest"}) })
	assert.Panics(t, func() { Register(&PluginBase{}) })

	InitExec()
	InitExec()
	assert.Equal(t, 1, inited)

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	assert.Len(t, root.Commands(), 1)
	assert.Equal(t, "plugintest", root.Commands()[0].Use)
}
