// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testnode 提供一个内存中的执行器, 用于单元测试和集成测试
package testnode

import (
	"math/rand"
	"time"

	"github.com/33cn/referendum/executor"
	_ "github.com/33cn/referendum/system" //register dapps
	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/33cn/referendum/types"
	"github.com/33cn/referendum/util"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/inconshreveable/log15"
)

var chainlog = log15.New("module", "testnode")

// TestPrivkeyHex 测试私钥, 创世区块给每个地址 cfg.Coins.GenesisAmount
var TestPrivkeyHex = []string{
	"CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944",
	"4257D8692EF7FE13C68B65D6A52F03933DB2FA5CE8FAF210B5B8B80C721CED01",
	"B0BB75BC49A787A71F4834DA18614763B53A18291ECE6B5EDEC3AD19D150C3E7",
	"56942AD84CCF4788ED6DACBC005A1D0C4F91B63BCF0C99A02BE03C8DEAE71138",
}

// Mock 内存数据库上的执行器, 每次 ExecTxs 产生一个新区块
type Mock struct {
	random    *rand.Rand
	exec      *executor.Executor
	cfg       *types.Config
	keys      []*btcec.PrivateKey
	blocktime int64
}

// New 创建执行器并执行创世区块, cfg 为 nil 时使用默认配置
func New(cfg *types.Config) *Mock {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	exec, err := executor.New(cfg)
	if err != nil {
		panic(err)
	}
	mock := &Mock{
		random:    rand.New(rand.NewSource(time.Now().UnixNano())),
		exec:      exec,
		cfg:       cfg,
		blocktime: time.Now().Unix(),
	}
	var txs []*types.Transaction
	for _, hex := range TestPrivkeyHex {
		priv := util.HexToPrivkey(hex)
		mock.keys = append(mock.keys, priv)
		txs = append(txs, cty.CreateGenesis(util.PrivkeyAddr(priv), cfg.Coins.GenesisAmount))
	}
	if _, err := exec.ExecBlock(exec.NewBlock(mock.blocktime, txs...)); err != nil {
		exec.Close()
		panic(err)
	}
	chainlog.Debug("New", "genesis", len(txs), "blocktime", mock.blocktime)
	return mock
}

// Close 关闭执行器
func (m *Mock) Close() {
	m.exec.Close()
}

// GetExec 执行器
func (m *Mock) GetExec() *executor.Executor {
	return m.exec
}

// GetCfg 配置
func (m *Mock) GetCfg() *types.Config {
	return m.cfg
}

// GetKey 第 i 个测试私钥
func (m *Mock) GetKey(i int) *btcec.PrivateKey {
	return m.keys[i]
}

// GetAddr 第 i 个测试地址
func (m *Mock) GetAddr(i int) string {
	return util.PrivkeyAddr(m.keys[i])
}

// GetGenesisKey 第一个测试私钥
func (m *Mock) GetGenesisKey() *btcec.PrivateKey {
	return m.keys[0]
}

// Genaddress 新的随机地址, 没有余额
func (m *Mock) Genaddress() (string, *btcec.PrivateKey) {
	return util.Genaddress()
}

// BlockTime 最后一个区块的时间
func (m *Mock) BlockTime() int64 {
	return m.blocktime
}

// Advance 下一个区块的时间向后推移
func (m *Mock) Advance(seconds int64) {
	m.blocktime += seconds
}

// SignTx 设置手续费和随机 nonce, 然后签名
func (m *Mock) SignTx(tx *types.Transaction, priv *btcec.PrivateKey) *types.Transaction {
	tx.Fee = m.cfg.Exec.MinFee
	tx.Nonce = m.random.Int63()
	tx.Sign(priv)
	return tx
}

// CreateCoinsTx 签名的转账交易
func (m *Mock) CreateCoinsTx(priv *btcec.PrivateKey, to string, amount uint64) *types.Transaction {
	return util.CreateCoinsTx(priv, to, amount, m.cfg.Exec.MinFee, m.random.Int63())
}

// ExecTxs 在新区块中执行交易, 区块时间加一秒
func (m *Mock) ExecTxs(txs ...*types.Transaction) (*executor.BlockResult, error) {
	m.blocktime++
	return m.exec.ExecBlock(m.exec.NewBlock(m.blocktime, txs...))
}

// ExecTx 单笔交易的区块, 返回回执和交易的错误
func (m *Mock) ExecTx(tx *types.Transaction) (*types.ReceiptData, error) {
	result, err := m.ExecTxs(tx)
	if err != nil {
		return nil, err
	}
	return result.Receipts[0], result.Errs[0]
}

// Query 执行器查询
func (m *Mock) Query(driver, funcName string, param types.Message) (types.Message, error) {
	return m.exec.Query(driver, funcName, param)
}

// GetBalance 余额
func (m *Mock) GetBalance(addr string) uint64 {
	acc, err := m.exec.GetBalance(addr)
	if err != nil {
		panic(err)
	}
	return acc.Balance
}
