// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = `
title = "test"

[log]
loglevel = "debug"
logFile = "logs/test.log"

[store]
driver = "gobadgerdb"
dbPath = "datadir/state"

[exec]
minFee = 100000
checkSign = false

[coins]
symbol = "ref"
genesis = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
genesisAmount = 1000000000000
`

func TestInitString(t *testing.T) {
	cfg, err := InitString(testCfg)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Title)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	//文件里没有的项保持默认
	assert.Equal(t, "error", cfg.Log.LogConsoleLevel)
	assert.Equal(t, "gobadgerdb", cfg.Store.Driver)
	assert.Equal(t, "memdb", cfg.LocalStore.Driver)
	assert.Equal(t, uint64(100000), cfg.Exec.MinFee)
	assert.False(t, cfg.Exec.CheckSign)
	assert.Equal(t, "ref", cfg.Coins.Symbol)
	assert.Equal(t, uint64(1000000000000), cfg.Coins.GenesisAmount)
}

func TestInitFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "referendumcfg")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "referendum.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(testCfg), 0600))

	cfg, err := Init(path)
	require.NoError(t, err)
	assert.Equal(t, "datadir/state", cfg.Store.DbPath)

	_, err = Init(filepath.Join(dir, "nofile.toml"))
	assert.Error(t, err)
}

func TestInitDefault(t *testing.T) {
	cfg, err := Init("")
	require.NoError(t, err)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.True(t, cfg.Exec.CheckSign)
}

func TestEnvOverride(t *testing.T) {
	os.Setenv("REFERENDUM_EXEC_MIN_FEE", "7")
	os.Setenv("REFERENDUM_STORE_DRIVER", "goleveldb")
	os.Setenv("REFERENDUM_EXEC_CHECK_SIGN", "true")
	defer os.Unsetenv("REFERENDUM_EXEC_MIN_FEE")
	defer os.Unsetenv("REFERENDUM_STORE_DRIVER")
	defer os.Unsetenv("REFERENDUM_EXEC_CHECK_SIGN")

	cfg, err := InitString(testCfg)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Exec.MinFee)
	assert.Equal(t, "goleveldb", cfg.Store.Driver)
	assert.True(t, cfg.Exec.CheckSign)

	os.Setenv("REFERENDUM_EXEC_MIN_FEE", "-1")
	_, err = InitString(testCfg)
	assert.Error(t, err)
}

func TestBadToml(t *testing.T) {
	_, err := InitString("title = ")
	assert.Error(t, err)
}
