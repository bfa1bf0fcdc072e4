// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rty "github.com/33cn/referendum/system/dapp/referendum/types"
	"github.com/33cn/referendum/types"
)

// Exec_InitVault 初始化 vault
func (r *Referendum) Exec_InitVault(payload *rty.ReferendumInitVault, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(r, tx, index).InitVault(payload)
}

// Exec_CreateMarket 创建市场
func (r *Referendum) Exec_CreateMarket(payload *rty.ReferendumCreateMarket, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(r, tx, index).CreateMarket(payload)
}

// Exec_Vote 投票
func (r *Referendum) Exec_Vote(payload *rty.ReferendumVote, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(r, tx, index).Vote(payload)
}

// Exec_Settle 结算
func (r *Referendum) Exec_Settle(payload *rty.ReferendumSettle, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(r, tx, index).Settle(payload)
}

// CheckTx 所有 action 都需要签名, 发送方身份只来自签名
func (r *Referendum) CheckTx(tx *types.Transaction, index int) error {
	if tx.From() == "" {
		return types.ErrNoSignature
	}
	return r.DriverBase.CheckTx(tx, index)
}
