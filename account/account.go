// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 原生币账户的读写, 转账, 手续费销毁
*/
package account

//package for account manger
//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. Burn
//6. Account balance query

import (
	"fmt"
	"strings"

	dbm "github.com/33cn/referendum/common/db"
	cmath "github.com/33cn/referendum/common/math"
	"github.com/33cn/referendum/types"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	execer           string
	symbol           string
}

// NewCoinsAccount 原生币账户, key = mavl-coins-<symbol>-<addr>
func NewCoinsAccount(symbol string, db dbm.KV) (*DB, error) {
	return NewAccountDB("coins", symbol, db)
}

// NewAccountDB execer 和 symbol 中不能有 "-"
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	if execer == "" || strings.ContainsRune(execer, '-') {
		return nil, types.ErrInvalidParam
	}
	if symbol == "" || strings.ContainsRune(symbol, '-') {
		return nil, types.ErrInvalidParam
	}
	acc := &DB{
		accountKeyPerfix: []byte(SymbolPrefix(execer, symbol)),
		execer:           execer,
		symbol:           symbol,
	}
	acc.SetDB(db)
	return acc, nil
}

// SetDB 执行每个区块时, 账户数据库指向当前的 StateDB
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// Symbol 币种
func (acc *DB) Symbol() string {
	return acc.symbol
}

// LoadAccount 不存在的账户余额为0
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// LoadAccounts 批量读取
func (acc *DB) LoadAccounts(addrs []string) []*types.Account {
	accs := make([]*types.Account, 0, len(addrs))
	for _, addr := range addrs {
		accs = append(accs, acc.LoadAccount(addr))
	}
	return accs
}

// CheckTransfer 只检查, 不修改余额
func (acc *DB) CheckTransfer(from, to string, amount uint64) error {
	if amount == 0 {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	if acc.LoadAccount(from).GetBalance() < amount {
		return types.ErrNoBalance
	}
	if _, err := cmath.SafeAdd(acc.LoadAccount(to).GetBalance(), amount); err != nil {
		return types.ErrOverflow
	}
	return nil
}

// Transfer from 余额不足时返回 ErrNoBalance, 不修改任何数据
func (acc *DB) Transfer(from, to string, amount uint64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		alog.Debug("Transfer", "from", from, "to", to, "amount", amount, "err", err)
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance -= amount
	accTo.Balance += amount

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

// Burn 销毁 addr 的 amount, 用于交易手续费
func (acc *DB) Burn(addr string, amount uint64) (*types.Receipt, error) {
	if amount == 0 {
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	acc1 := acc.LoadAccount(addr)
	if acc1.GetBalance() < amount {
		return nil, types.ErrNoBalance
	}
	copyacc := *acc1
	acc1.Balance -= amount
	receiptBalance := &types.ReceiptAccountTransfer{
		Prev:    &copyacc,
		Current: acc1,
	}
	acc.SaveAccount(acc1)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{{Ty: types.TyLogFee, Log: types.Encode(receiptBalance)}},
	}, nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo proto.Message) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount 写入当前数据库
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].Key, set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet 账户对应的kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+len(address))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// SymbolPrefix mavl-<execer>-<symbol>-
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}
