// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供两种操作：
Transfer -> 转移资产
Genesis  -> 创世发行, 只能在高度0
*/

import (
	drivers "github.com/33cn/referendum/system/dapp"
	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/33cn/referendum/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")

var driverName = cty.CoinsX

// Init 注册 coins 执行器
func Init() {
	drivers.Register(driverName, newCoins, 0)
}

// GetName 执行器名称
func GetName() string {
	return newCoins().GetName()
}

// Coins 原生币执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetName(driverName)
	c.SetExecutorType(cty.NewType())
	return c
}

// GetDriverName 驱动名称
func (c *Coins) GetDriverName() string {
	return driverName
}

// CheckTx 检查接收地址
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	if err := c.DriverBase.CheckTx(tx, index); err != nil {
		return err
	}
	if err := drivers.CheckAddress(tx.To); err != nil {
		clog.Debug("CheckTx", "to", tx.To, "err", err)
		return types.ErrInvalidAddress
	}
	return nil
}
