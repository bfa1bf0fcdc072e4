// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/referendum/system/dapp"
	rty "github.com/33cn/referendum/system/dapp/referendum/types"
	"github.com/33cn/referendum/types"
)

// InitVault 全局只能初始化一次, 第二次返回 ErrAlreadyExists
func (a *action) InitVault(init *rty.ReferendumInitVault) (*types.Receipt, error) {
	addr, nonce, err := rty.VaultAddress()
	if err != nil {
		return nil, err
	}
	found, err := exists(a.db, addr)
	if err != nil {
		return nil, err
	}
	if found {
		rlog.Debug("InitVault", "from", a.fromaddr, "err", types.ErrAlreadyExists)
		return nil, types.ErrAlreadyExists
	}
	vault := &rty.VaultAccount{
		Authority:    a.fromaddr,
		TotalMarkets: 0,
		Nonce:        nonce,
	}
	kvc := dapp.NewKVCreator(a.db)
	kvc.AddMsg(stateKey(addr), vault)
	rlog.Info("InitVault", "vault", addr, "authority", a.fromaddr)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kvc.KVList(),
		Logs: []*types.ReceiptLog{vaultLog(rty.TyLogReferendumInitVault, addr, vault)},
	}, nil
}
