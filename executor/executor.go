// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 执行器
// 按区块顺序执行交易, 每笔交易有独立的 Begin/Commit/Rollback,
// 区块执行完成后状态数据库和本地数据库一次性落盘
package executor

import (
	"bytes"
	"sync"
	"time"

	dbm "github.com/33cn/referendum/common/db"
	"github.com/33cn/referendum/metrics"
	"github.com/33cn/referendum/pluginmgr"
	drivers "github.com/33cn/referendum/system/dapp"
	"github.com/33cn/referendum/types"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	gometrics "github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs")

var lastHeaderKey = []byte("ReferendumLastHeader")

// Executor 执行器, ExecBlock 和 Query 串行执行
type Executor struct {
	mu       sync.Mutex
	cfg      *types.Config
	statedb  dbm.DB
	localdb  dbm.DB
	last     *types.Header
	registry gometrics.Registry
	quit     chan struct{}
}

// BlockResult 区块执行结果, Receipts 和 Errs 按交易顺序一一对应
type BlockResult struct {
	Header   *types.Header
	Receipts []*types.ReceiptData
	Errs     []error
	KV       []*types.KeyValue
}

// New 打开状态数据库和本地数据库, 注册所有插件的执行器
func New(cfg *types.Config) (*Executor, error) {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	pluginmgr.InitExec()
	statedb, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, errors.Wrap(err, "open state db")
	}
	localdb, err := dbm.NewDB(cfg.LocalStore.Name, cfg.LocalStore.Driver, cfg.LocalStore.DbPath, cfg.LocalStore.DbCache)
	if err != nil {
		statedb.Close()
		return nil, errors.Wrap(err, "open local db")
	}
	exec := &Executor{
		cfg:      cfg,
		statedb:  statedb,
		localdb:  localdb,
		registry: gometrics.NewRegistry(),
		quit:     make(chan struct{}),
	}
	if err := exec.loadLastHeader(); err != nil {
		exec.Close()
		return nil, err
	}
	metrics.StartMetrics(cfg.Exec, exec.registry, exec.quit)
	return exec, nil
}

func (exec *Executor) loadLastHeader() error {
	value, err := exec.statedb.Get(lastHeaderKey)
	if err == dbm.ErrNotFoundInDb {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "load last header")
	}
	var header types.Header
	if err := types.Decode(value, &header); err != nil {
		return errors.Wrap(err, "decode last header")
	}
	exec.last = &header
	elog.Info("loadLastHeader", "height", header.Height, "blocktime", header.BlockTime)
	return nil
}

// Close 关闭数据库
func (exec *Executor) Close() {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	select {
	case <-exec.quit:
		return
	default:
	}
	close(exec.quit)
	exec.statedb.Close()
	exec.localdb.Close()
}

// Config 配置
func (exec *Executor) Config() *types.Config {
	return exec.cfg
}

// Metrics 执行统计
func (exec *Executor) Metrics() gometrics.Registry {
	return exec.registry
}

// LastHeader 最后一个区块头, 还没有区块时返回 nil
func (exec *Executor) LastHeader() *types.Header {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.last == nil {
		return nil
	}
	return proto.Clone(exec.last).(*types.Header)
}

// NewBlock 在最后一个区块之后构造新区块
func (exec *Executor) NewBlock(blocktime int64, txs ...*types.Transaction) *types.Block {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	block := &types.Block{BlockTime: blocktime, Txs: txs}
	if exec.last != nil {
		block.ParentHash = exec.last.Hash()
		block.Height = exec.last.Height + 1
	}
	return block
}

func (exec *Executor) checkBlock(block *types.Block) error {
	if len(block.Txs) > types.MaxTxsPerBlock {
		return types.ErrTooManyTxs
	}
	if exec.last == nil {
		if block.Height != 0 {
			return types.ErrBlockHeight
		}
		return nil
	}
	if block.Height != exec.last.Height+1 {
		return types.ErrBlockHeight
	}
	if block.BlockTime < exec.last.BlockTime {
		return types.ErrBlockTime
	}
	if !bytes.Equal(block.ParentHash, exec.last.Hash()) {
		return types.ErrParentHash
	}
	return nil
}

// ExecBlock 执行一个区块
// 单笔交易失败不影响区块, 对应的回执 Ty 为 ExecErr, 错误在 Errs 中;
// 创世区块中任何交易失败, 整个区块都不会写入
func (exec *Executor) ExecBlock(block *types.Block) (*BlockResult, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	defer gometrics.GetOrRegisterTimer("executor.block", exec.registry).UpdateSince(time.Now())

	if err := exec.checkBlock(block); err != nil {
		elog.Error("ExecBlock", "height", block.Height, "err", err)
		return nil, err
	}
	env, err := newExecEnv(exec, block.Height, block.BlockTime)
	if err != nil {
		return nil, err
	}
	result := &BlockResult{
		Receipts: make([]*types.ReceiptData, 0, len(block.Txs)),
		Errs:     make([]error, 0, len(block.Txs)),
	}
	for i, tx := range block.Txs {
		receipt, err := env.execTx(tx, i)
		if err != nil && block.Height == 0 {
			return nil, errors.Wrapf(err, "genesis tx %d", i)
		}
		result.Receipts = append(result.Receipts, receipt)
		result.Errs = append(result.Errs, err)
	}

	header := &types.Header{
		ParentHash: block.ParentHash,
		TxHash:     block.TxHash(),
		Height:     block.Height,
		BlockTime:  block.BlockTime,
		TxCount:    int64(len(block.Txs)),
	}
	batch := exec.statedb.NewBatch(true)
	result.KV = env.stateDB.writeTo(batch)
	var prev []byte
	if exec.last != nil {
		prev = exec.last.StateHash
	}
	header.StateHash = calcStateHash(prev, result.KV)
	batch.Set(lastHeaderKey, types.Encode(header))
	if err := batch.Write(); err != nil {
		return nil, errors.Wrap(err, "write state db")
	}
	exec.last = header
	result.Header = header

	lbatch := exec.localdb.NewBatch(true)
	env.localDB.writeTo(lbatch)
	if err := lbatch.Write(); err != nil {
		return result, errors.Wrap(err, "write local db")
	}
	elog.Debug("ExecBlock", "height", header.Height, "txs", header.TxCount, "kvs", len(result.KV))
	return result, nil
}

func (exec *Executor) queryEnv() (*execEnv, error) {
	var height, blocktime int64
	if exec.last != nil {
		height, blocktime = exec.last.Height, exec.last.BlockTime
	}
	return newExecEnv(exec, height, blocktime)
}

// Query 调用执行器的 Query_<funcName>, 只读
func (exec *Executor) Query(driver, funcName string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	env, err := exec.queryEnv()
	if err != nil {
		return nil, err
	}
	d, err := env.loadDriver(driver)
	if err != nil {
		return nil, err
	}
	return d.Query(funcName, types.Encode(param))
}

// GetBalance 原生币余额
func (exec *Executor) GetBalance(addr string) (*types.Account, error) {
	if err := drivers.CheckAddress(addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	exec.mu.Lock()
	defer exec.mu.Unlock()
	env, err := exec.queryEnv()
	if err != nil {
		return nil, err
	}
	return env.coins.LoadAccount(addr), nil
}

// GetTx 交易的执行结果
func (exec *Executor) GetTx(hash []byte) (*types.TxResult, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	value, err := NewLocalDB(exec.localdb).Get(calcTxKey(hash))
	if err != nil {
		return nil, err
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
