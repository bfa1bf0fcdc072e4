// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/33cn/referendum/types"
)

// Exec_Transfer 普通转账, 也可以转给执行器地址
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	return c.GetCoinsAccount().Transfer(tx.From(), tx.To, transfer.Amount)
}

// Exec_Genesis 只能在高度0执行
func (c *Coins) Exec_Genesis(genesis *cty.CoinsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	if c.GetHeight() != 0 {
		return nil, types.ErrReRunGenesis
	}
	return c.GetCoinsAccount().GenesisInit(tx.To, genesis.Amount)
}
