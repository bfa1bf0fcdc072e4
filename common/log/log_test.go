// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/referendum/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlError, getLevel("nosuchlevel"))
}

func TestFillDefault(t *testing.T) {
	cfg := &types.Log{}
	fillDefaultValue(cfg)
	assert.Equal(t, "eror", cfg.Loglevel)
	assert.Equal(t, "eror", cfg.LogConsoleLevel)
}

func TestSetFileLog(t *testing.T) {
	dir, err := ioutil.TempDir("", "referendumlog")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	defer SetLogLevel("crit")

	file := filepath.Join(dir, "test.log")
	SetFileLog(&types.Log{Loglevel: "info", LogConsoleLevel: "crit", LogFile: file})
	New("module", "test").Info("hello", "k", 1)

	data, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "module=test")
}
