// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/33cn/referendum/account"
	"github.com/33cn/referendum/common"
	"github.com/33cn/referendum/common/merkle"
	drivers "github.com/33cn/referendum/system/dapp"
	"github.com/33cn/referendum/types"
	gometrics "github.com/rcrowley/go-metrics"
)

// execEnv 一个区块(或者一次查询)的执行环境
type execEnv struct {
	height    int64
	blocktime int64
	cfg       *types.Exec
	stateDB   *StateDB
	localDB   *LocalDB
	coins     *account.DB
	registry  gometrics.Registry
}

func newExecEnv(exec *Executor, height, blocktime int64) (*execEnv, error) {
	stateDB := NewStateDB(exec.statedb)
	coins, err := account.NewCoinsAccount(exec.cfg.Coins.Symbol, stateDB)
	if err != nil {
		return nil, err
	}
	return &execEnv{
		height:    height,
		blocktime: blocktime,
		cfg:       exec.cfg.Exec,
		stateDB:   stateDB,
		localDB:   NewLocalDB(exec.localdb),
		coins:     coins,
		registry:  exec.registry,
	}, nil
}

func (e *execEnv) loadDriver(execer string) (drivers.Driver, error) {
	d, err := drivers.LoadDriver(execer, e.height)
	if err != nil {
		return nil, err
	}
	d.SetStateDB(e.stateDB)
	d.SetLocalDB(e.localDB)
	d.SetCoinsAccount(e.coins)
	d.SetEnv(e.height, e.blocktime)
	return d, nil
}

func (e *execEnv) checkTx(d drivers.Driver, tx *types.Transaction, index int) error {
	if _, err := e.localDB.Get(calcTxKey(tx.Hash())); err == nil {
		return types.ErrTxDup
	}
	//创世区块的交易不需要签名和手续费
	if e.height > 0 {
		if err := tx.Check(e.cfg.MinFee); err != nil {
			return err
		}
		if e.cfg.CheckSign && !tx.CheckSign() {
			return types.ErrSign
		}
	}
	return d.CheckTx(tx, index)
}

// execTx 执行一笔交易, 失败时状态数据库回滚, 返回只包含错误信息的回执
func (e *execEnv) execTx(tx *types.Transaction, index int) (*types.ReceiptData, error) {
	execer := string(tx.Execer)
	d, err := e.loadDriver(execer)
	if err != nil {
		return e.failed(tx, index, execer, "unknown", err)
	}
	action := d.GetActionName(tx)
	if err := e.checkTx(d, tx, index); err != nil {
		return e.failed(tx, index, execer, action, err)
	}
	e.stateDB.Begin()
	receipt, err := e.execTxOne(d, tx, index)
	if err != nil {
		e.stateDB.Rollback()
		return e.failed(tx, index, execer, action, err)
	}
	if err := e.stateDB.Commit(); err != nil {
		return e.failed(tx, index, execer, action, err)
	}
	data := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	e.execLocal(d, tx, data, index)
	e.saveTxResult(tx, data, index)
	gometrics.GetOrRegisterCounter("executor.tx.ok", e.registry).Inc(1)
	gometrics.GetOrRegisterCounter(fmt.Sprintf("executor.%s.%s.ok", execer, action), e.registry).Inc(1)
	return data, nil
}

func (e *execEnv) failed(tx *types.Transaction, index int, execer, action string, err error) (*types.ReceiptData, error) {
	elog.Debug("execTx failed", "execer", execer, "action", action, "index", index, "err", err)
	gometrics.GetOrRegisterCounter("executor.tx.err", e.registry).Inc(1)
	gometrics.GetOrRegisterCounter(fmt.Sprintf("executor.%s.%s.err", execer, action), e.registry).Inc(1)
	data := types.NewErrReceipt(err)
	if err != types.ErrTxDup {
		e.saveTxResult(tx, data, index)
	}
	return data, err
}

// execTxOne 手续费和执行器的修改在同一个交易中, 任何一步失败都会整体回滚
func (e *execEnv) execTxOne(d drivers.Driver, tx *types.Transaction, index int) (*types.Receipt, error) {
	result := &types.Receipt{Ty: types.ExecOk}
	if e.height > 0 && tx.Fee > 0 {
		feelog, err := e.coins.Burn(tx.From(), tx.Fee)
		if err != nil {
			return nil, err
		}
		types.MergeReceipt(result, feelog)
	}
	receipt, err := d.Exec(tx, index)
	if err != nil {
		return nil, err
	}
	types.MergeReceipt(result, receipt)
	if !checkKV(e.stateDB.GetSetKeys(), result.KV) {
		return nil, types.ErrNotAllowMemSetKey
	}
	for _, kv := range result.KV {
		if !isAllowKeyWrite(kv.Key, tx.Execer) {
			elog.Error("execTxOne key not allow", "execer", string(tx.Execer), "key", string(kv.Key))
			return nil, types.ErrNotAllowKey
		}
	}
	return result, nil
}

// checkKV statedb 中修改过的key都要出现在回执中
func checkKV(memset []string, kvs []*types.KeyValue) bool {
	keys := make(map[string]bool)
	for _, kv := range kvs {
		keys[string(kv.Key)] = true
	}
	for _, key := range memset {
		if !keys[key] {
			elog.Error("err memset key", "key", key)
			return false
		}
	}
	return true
}

// execLocal 本地索引不影响交易结果, 出错只记录日志
func (e *execEnv) execLocal(d drivers.Driver, tx *types.Transaction, data *types.ReceiptData, index int) {
	e.localDB.Begin()
	set, err := d.ExecLocal(tx, data, index)
	if err != nil {
		elog.Error("execLocal", "execer", string(tx.Execer), "index", index, "err", err)
		e.localDB.Rollback()
		return
	}
	for _, kv := range set.KV {
		if err := isAllowLocalKey(tx.Execer, kv.Key); err != nil {
			e.localDB.Rollback()
			return
		}
		if err := e.localDB.Set(kv.Key, kv.Value); err != nil {
			elog.Error("execLocal set", "key", string(kv.Key), "err", err)
			e.localDB.Rollback()
			return
		}
	}
	if err := e.localDB.Commit(); err != nil {
		elog.Error("execLocal commit", "err", err)
	}
}

func (e *execEnv) saveTxResult(tx *types.Transaction, data *types.ReceiptData, index int) {
	result := &types.TxResult{
		Height:    e.height,
		Index:     int32(index),
		Tx:        tx,
		Receipt:   data,
		BlockTime: e.blocktime,
	}
	if err := e.localDB.Set(calcTxKey(tx.Hash()), types.Encode(result)); err != nil {
		elog.Error("saveTxResult", "err", err)
	}
}

func calcTxKey(hash []byte) []byte {
	return []byte(fmt.Sprintf("%sexecutor-tx:%s", types.LocalPrefix, common.ToHex(hash)))
}

// calcStateHash 上一个状态hash和本区块所有修改的merkle根
func calcStateHash(prev []byte, kvs []*types.KeyValue) []byte {
	if len(prev) == 0 {
		prev = make([]byte, 32)
	}
	leaves := make([][]byte, 0, len(kvs)+1)
	leaves = append(leaves, prev)
	for _, kv := range kvs {
		leaves = append(leaves, common.Sha256(types.Encode(kv)))
	}
	return merkle.GetMerkleRoot(leaves)
}
