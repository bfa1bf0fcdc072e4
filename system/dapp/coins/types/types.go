// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的 action 定义
package types

import (
	"github.com/33cn/referendum/system/dapp"
	"github.com/33cn/referendum/types"
)

// action 类型
const (
	CoinsActionTransfer = 1
	CoinsActionGenesis  = 2
)

var (
	// CoinsX 执行器名称
	CoinsX = "coins"
	// ExecerCoins []byte 形式的名称
	ExecerCoins = []byte(CoinsX)
	actionName  = map[string]int32{
		"Transfer": CoinsActionTransfer,
		"Genesis":  CoinsActionGenesis,
	}
)

// NewType coins 的 action 编解码
func NewType() *dapp.ExecTypeBase {
	return dapp.NewExecType(CoinsX, &CoinsAction{}, actionName)
}

// CreateTransfer 构造转账交易
func CreateTransfer(to string, amount uint64, note string, fee uint64, nonce int64) *types.Transaction {
	action := &CoinsAction{
		Ty:    CoinsActionTransfer,
		Value: &CoinsAction_Transfer{Transfer: &CoinsTransfer{Amount: amount, Note: note}},
	}
	tx := types.CreateTx(CoinsX, action, fee, nonce)
	tx.To = to
	return tx
}

// CreateGenesis 构造创世交易
func CreateGenesis(to string, amount uint64) *types.Transaction {
	action := &CoinsAction{
		Ty:    CoinsActionGenesis,
		Value: &CoinsAction_Genesis{Genesis: &CoinsGenesis{Amount: amount}},
	}
	tx := types.CreateTx(CoinsX, action, 0, 0)
	tx.To = to
	return tx
}
