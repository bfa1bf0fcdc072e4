// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config 读取 toml 配置文件, 环境变量可以覆盖其中的部分配置
package config

import (
	"os"
	"strconv"

	"github.com/33cn/referendum/types"
	tml "github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "REFERENDUM_"

// Init 读取配置文件, 文件中没有的项使用默认值
func Init(path string) (*types.Config, error) {
	cfg := types.DefaultConfig()
	if path != "" {
		if _, err := tml.DecodeFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "decode config %s", path)
		}
	}
	// .env 文件不存在时忽略
	_ = godotenv.Load()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitString 从字符串读取配置, 测试和嵌入使用
func InitString(data string) (*types.Config, error) {
	cfg := types.DefaultConfig()
	if _, err := tml.Decode(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustInit 出错时panic
func MustInit(path string) *types.Config {
	cfg, err := Init(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func applyEnvOverrides(cfg *types.Config) error {
	if cfg.Log == nil {
		cfg.Log = &types.Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &types.Store{}
	}
	if cfg.LocalStore == nil {
		cfg.LocalStore = &types.Store{}
	}
	if cfg.Exec == nil {
		cfg.Exec = &types.Exec{}
	}
	if cfg.Coins == nil {
		cfg.Coins = &types.Coins{}
	}
	setStr(&cfg.Title, "TITLE")
	setStr(&cfg.Log.Loglevel, "LOG_LEVEL")
	setStr(&cfg.Log.LogConsoleLevel, "LOG_CONSOLE_LEVEL")
	setStr(&cfg.Log.LogFile, "LOG_FILE")
	setStr(&cfg.Store.Driver, "STORE_DRIVER")
	setStr(&cfg.Store.DbPath, "STORE_DB_PATH")
	setStr(&cfg.LocalStore.Driver, "LOCAL_STORE_DRIVER")
	setStr(&cfg.LocalStore.DbPath, "LOCAL_STORE_DB_PATH")
	setStr(&cfg.Coins.Symbol, "COINS_SYMBOL")
	setStr(&cfg.Coins.Genesis, "COINS_GENESIS")
	if err := setUint64(&cfg.Coins.GenesisAmount, "COINS_GENESIS_AMOUNT"); err != nil {
		return err
	}
	if err := setUint64(&cfg.Exec.MinFee, "EXEC_MIN_FEE"); err != nil {
		return err
	}
	if err := setBool(&cfg.Exec.CheckSign, "EXEC_CHECK_SIGN"); err != nil {
		return err
	}
	return setBool(&cfg.Exec.EnableMetrics, "EXEC_ENABLE_METRICS")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		*dst = v
	}
}

func setUint64(dst *uint64, key string) error {
	v := os.Getenv(EnvPrefix + key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "env %s%s", EnvPrefix, key)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(EnvPrefix + key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return errors.Wrapf(err, "env %s%s", EnvPrefix, key)
	}
	*dst = b
	return nil
}
