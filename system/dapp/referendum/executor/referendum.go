// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
referendum 二元预测市场

InitVault    -> 初始化全局 vault, 发送方成为 authority, 只能执行一次
CreateMarket -> authority 创建市场
Vote         -> 任何人在截止时间之前投票, 金额转入市场的托管账户, 每个地址每个市场只能投一次
Settle       -> authority 结算市场, 只能结算一次

所有状态都保存在派生地址上, 地址冲突即表示记录已经存在
*/

import (
	drivers "github.com/33cn/referendum/system/dapp"
	rty "github.com/33cn/referendum/system/dapp/referendum/types"
	log "github.com/inconshreveable/log15"
)

var rlog = log.New("module", "execs.referendum")

var driverName = rty.ReferendumX

// Init 注册 referendum 执行器
func Init() {
	drivers.Register(driverName, newReferendum, 0)
}

// Referendum 预测市场执行器
type Referendum struct {
	drivers.DriverBase
}

func newReferendum() drivers.Driver {
	r := &Referendum{}
	r.SetChild(r)
	r.SetName(driverName)
	r.SetExecutorType(rty.NewType())
	return r
}

// GetDriverName 驱动名称
func (r *Referendum) GetDriverName() string {
	return driverName
}
