// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/referendum/account"
	dbm "github.com/33cn/referendum/common/db"
	rty "github.com/33cn/referendum/system/dapp/referendum/types"
	"github.com/33cn/referendum/types"
)

// action 一笔交易的执行上下文, 发送方身份只来自交易签名
type action struct {
	coinsAccount *account.DB
	db           dbm.KV
	fromaddr     string
	blocktime    int64
	height       int64
	index        int
}

func newAction(r *Referendum, tx *types.Transaction, index int) *action {
	return &action{
		coinsAccount: r.GetCoinsAccount(),
		db:           r.GetStateDB(),
		fromaddr:     tx.From(),
		blocktime:    r.GetBlockTime(),
		height:       r.GetHeight(),
		index:        index,
	}
}

// getRecord 读取派生地址上的记录, 不存在时返回 types.ErrNotFound
func getRecord(db dbm.KV, addr string, msg types.Message) error {
	value, err := db.Get(stateKey(addr))
	if err != nil {
		return err
	}
	return types.Decode(value, msg)
}

// exists 派生地址是否已经分配
func exists(db dbm.KV, addr string) (bool, error) {
	_, err := db.Get(stateKey(addr))
	if err == nil {
		return true, nil
	}
	if err == types.ErrNotFound {
		return false, nil
	}
	return false, err
}

func loadVault(db dbm.KV) (*rty.VaultAccount, string, error) {
	addr, _, err := rty.VaultAddress()
	if err != nil {
		return nil, "", err
	}
	var vault rty.VaultAccount
	err = getRecord(db, addr, &vault)
	if err == types.ErrNotFound {
		return nil, addr, rty.ErrVaultNotFound
	}
	if err != nil {
		return nil, addr, err
	}
	return &vault, addr, nil
}

// loadMarket 读取市场, 并校验它保存在自己的派生地址上
func loadMarket(db dbm.KV, addr string) (*rty.MarketAccount, error) {
	var market rty.MarketAccount
	err := getRecord(db, addr, &market)
	if err == types.ErrNotFound {
		return nil, rty.ErrMarketNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := rty.CheckMarketAddress(addr, &market); err != nil {
		return nil, err
	}
	return &market, nil
}

func loadVote(db dbm.KV, addr string) (*rty.VoteAccount, error) {
	var vote rty.VoteAccount
	if err := getRecord(db, addr, &vote); err != nil {
		return nil, err
	}
	return &vote, nil
}

// checkAuthority vault 必须存在, 并且发送方是 authority
func (a *action) checkAuthority() (*rty.VaultAccount, string, error) {
	vault, addr, err := loadVault(a.db)
	if err != nil {
		return nil, "", err
	}
	if a.fromaddr != vault.Authority {
		rlog.Debug("checkAuthority", "from", a.fromaddr, "authority", vault.Authority)
		return nil, "", rty.ErrUnauthorized
	}
	return vault, addr, nil
}

func vaultLog(ty int32, addr string, vault *rty.VaultAccount) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(&rty.ReceiptVault{Addr: addr, Vault: vault})}
}

func marketLog(ty int32, addr string, market *rty.MarketAccount, prev int32) *types.ReceiptLog {
	r := &rty.ReceiptMarket{Addr: addr, Market: market, PrevOutcome: prev}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}
