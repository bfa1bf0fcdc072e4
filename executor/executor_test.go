// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/referendum/common/address"
	_ "github.com/33cn/referendum/system/dapp/coins"
	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/33cn/referendum/types"
	"github.com/btcsuite/btcd/btcec/v2"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blockTime = int64(1600000000)

func genaddress(t *testing.T) (string, *btcec.PrivateKey) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	return address.PubKeyToAddress(priv.PubKey().SerializeCompressed()).String(), priv
}

func transferTx(priv *btcec.PrivateKey, to string, amount, fee uint64, nonce int64) *types.Transaction {
	tx := cty.CreateTransfer(to, amount, "", fee, nonce)
	tx.Sign(priv)
	return tx
}

// newTestExecutor 内存数据库, 创世地址拥有 1000 个币
func newTestExecutor(t *testing.T, minFee uint64) (*Executor, string, *btcec.PrivateKey) {
	cfg := types.DefaultConfig()
	cfg.Exec.MinFee = minFee
	exec, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(exec.Close)

	addr, priv := genaddress(t)
	result, err := exec.ExecBlock(exec.NewBlock(blockTime, cty.CreateGenesis(addr, 1000*types.Coin)))
	require.NoError(t, err)
	require.Nil(t, result.Errs[0])
	return exec, addr, priv
}

func balance(t *testing.T, exec *Executor, addr string) uint64 {
	acc, err := exec.GetBalance(addr)
	require.NoError(t, err)
	return acc.Balance
}

func TestExecGenesisAndTransfer(t *testing.T) {
	exec, genesis, priv := newTestExecutor(t, 0)
	assert.Equal(t, 1000*types.Coin, balance(t, exec, genesis))
	head0 := exec.LastHeader()
	require.NotNil(t, head0)
	assert.Equal(t, int64(0), head0.Height)

	to, _ := genaddress(t)
	block := exec.NewBlock(blockTime+1, transferTx(priv, to, 10*types.Coin, 0, 1))
	result, err := exec.ExecBlock(block)
	require.NoError(t, err)
	require.Len(t, result.Receipts, 1)
	assert.Nil(t, result.Errs[0])
	assert.Equal(t, int32(types.ExecOk), result.Receipts[0].Ty)
	assert.Equal(t, int64(1), result.Header.Height)
	assert.Equal(t, block.TxHash(), result.Header.TxHash)
	assert.NotEqual(t, head0.StateHash, result.Header.StateHash)
	assert.Len(t, result.KV, 2)

	assert.Equal(t, 990*types.Coin, balance(t, exec, genesis))
	assert.Equal(t, 10*types.Coin, balance(t, exec, to))

	//没有状态修改的区块, 状态hash不变
	result2, err := exec.ExecBlock(exec.NewBlock(blockTime + 2))
	require.NoError(t, err)
	assert.Equal(t, result.Header.StateHash, result2.Header.StateHash)

	ok := gometrics.GetOrRegisterCounter("executor.tx.ok", exec.Metrics())
	assert.Equal(t, int64(2), ok.Count())
	transfers := gometrics.GetOrRegisterCounter("executor.coins.Transfer.ok", exec.Metrics())
	assert.Equal(t, int64(1), transfers.Count())
}

func TestExecBlockCheck(t *testing.T) {
	exec, _, _ := newTestExecutor(t, 0)

	block := exec.NewBlock(blockTime)
	block.Height = 5
	_, err := exec.ExecBlock(block)
	assert.Equal(t, types.ErrBlockHeight, err)

	_, err = exec.ExecBlock(exec.NewBlock(blockTime - 1))
	assert.Equal(t, types.ErrBlockTime, err)

	block = exec.NewBlock(blockTime)
	block.ParentHash = []byte("bad")
	_, err = exec.ExecBlock(block)
	assert.Equal(t, types.ErrParentHash, err)

	//同一个时间可以出多个区块
	_, err = exec.ExecBlock(exec.NewBlock(blockTime))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), exec.LastHeader().Height)
}

func TestExecFirstBlockMustBeGenesis(t *testing.T) {
	exec, err := New(types.DefaultConfig())
	require.NoError(t, err)
	defer exec.Close()
	_, err = exec.ExecBlock(&types.Block{Height: 1, BlockTime: blockTime})
	assert.Equal(t, types.ErrBlockHeight, err)
	assert.Nil(t, exec.LastHeader())

	//创世交易失败时整个区块不写入
	_, err = exec.ExecBlock(exec.NewBlock(blockTime, cty.CreateGenesis("bad address", 1)))
	assert.Error(t, err)
	assert.Nil(t, exec.LastHeader())
}

func TestExecTxFailRollback(t *testing.T) {
	exec, genesis, priv := newTestExecutor(t, 100000)
	to, _ := genaddress(t)

	//余额不足, 手续费也不扣除
	tx1 := transferTx(priv, to, 2000*types.Coin, 100000, 1)
	//手续费不足
	tx2 := transferTx(priv, to, types.Coin, 1, 2)
	//没有签名
	tx3 := cty.CreateTransfer(to, types.Coin, "", 100000, 3)
	//未注册的执行器
	tx4 := types.CreateTx("nosuchexec", &types.ReqString{Data: "x"}, 100000, 4)
	tx4.Sign(priv)
	//只能在创世区块执行
	tx5 := cty.CreateGenesis(to, types.Coin)
	tx5.Fee = 100000
	tx5.Sign(priv)
	//成功, 扣除手续费
	tx6 := transferTx(priv, to, types.Coin, 100000, 6)

	result, err := exec.ExecBlock(exec.NewBlock(blockTime+1, tx1, tx2, tx3, tx4, tx5, tx6))
	require.NoError(t, err)
	assert.Equal(t, types.ErrNoBalance, result.Errs[0])
	assert.Equal(t, types.ErrTxFeeTooLow, result.Errs[1])
	assert.Equal(t, types.ErrSign, result.Errs[2])
	assert.Equal(t, types.ErrUnRegistedDriver, result.Errs[3])
	assert.Equal(t, types.ErrReRunGenesis, result.Errs[4])
	assert.Nil(t, result.Errs[5])
	for i := 0; i < 5; i++ {
		assert.Equal(t, int32(types.ExecErr), result.Receipts[i].Ty)
		assert.Equal(t, int32(types.TyLogErr), result.Receipts[i].Logs[0].Ty)
		assert.Equal(t, result.Errs[i].Error(), string(result.Receipts[i].Logs[0].Log))
	}
	assert.Equal(t, int32(types.TyLogFee), result.Receipts[5].Logs[0].Ty)

	assert.Equal(t, 999*types.Coin-100000, balance(t, exec, genesis))
	assert.Equal(t, types.Coin, balance(t, exec, to))
	assert.Equal(t, int64(5), gometrics.GetOrRegisterCounter("executor.tx.err", exec.Metrics()).Count())
}

func TestExecTxDup(t *testing.T) {
	exec, genesis, priv := newTestExecutor(t, 0)
	to, _ := genaddress(t)
	tx := transferTx(priv, to, types.Coin, 0, 1)

	result, err := exec.ExecBlock(exec.NewBlock(blockTime+1, tx, tx))
	require.NoError(t, err)
	assert.Nil(t, result.Errs[0])
	assert.Equal(t, types.ErrTxDup, result.Errs[1])

	result, err = exec.ExecBlock(exec.NewBlock(blockTime+2, tx))
	require.NoError(t, err)
	assert.Equal(t, types.ErrTxDup, result.Errs[0])
	assert.Equal(t, 999*types.Coin, balance(t, exec, genesis))

	txres, err := exec.GetTx(tx.Hash())
	require.NoError(t, err)
	assert.Equal(t, int64(1), txres.Height)
	assert.Equal(t, int32(0), txres.Index)
	assert.Equal(t, int32(types.ExecOk), txres.Receipt.Ty)
	assert.Equal(t, tx.Hash(), txres.Tx.Hash())

	_, err = exec.GetTx([]byte("nosuchtx"))
	assert.Equal(t, types.ErrNotFound, err)
}

func TestExecCoinsQuery(t *testing.T) {
	exec, genesis, priv := newTestExecutor(t, 0)
	to, _ := genaddress(t)
	tx1 := transferTx(priv, to, types.Coin, 0, 1)
	tx2 := transferTx(priv, to, 2*types.Coin, 0, 2)
	_, err := exec.ExecBlock(exec.NewBlock(blockTime+1, tx1, tx2))
	require.NoError(t, err)

	reply, err := exec.Query(cty.CoinsX, "GetAddrReciver", &types.ReqString{Data: to})
	require.NoError(t, err)
	assert.Equal(t, 3*types.Coin, reply.(*cty.AddrReciver).Amount)

	reply, err = exec.Query(cty.CoinsX, "GetTxsByAddr", &cty.ReqAddrTxs{Addr: genesis, Direction: 1})
	require.NoError(t, err)
	infos := reply.(*cty.AddrTxInfos).TxInfos
	//创世交易 + 两笔转账
	require.Len(t, infos, 3)
	assert.Equal(t, int64(0), infos[0].Height)
	assert.Equal(t, tx1.Hash(), infos[1].Hash)
	assert.Equal(t, tx2.Hash(), infos[2].Hash)

	reply, err = exec.Query(cty.CoinsX, "GetTxsByAddr", &cty.ReqAddrTxs{Addr: to, Count: 1, Direction: 0})
	require.NoError(t, err)
	infos = reply.(*cty.AddrTxInfos).TxInfos
	require.Len(t, infos, 1)
	assert.Equal(t, tx2.Hash(), infos[0].Hash)

	reply, err = exec.Query(cty.CoinsX, "GetBalance", &types.ReqBalance{Addresses: []string{genesis, to}})
	require.NoError(t, err)
	accs := reply.(*types.Accounts).Acc
	assert.Equal(t, 997*types.Coin, accs[0].Balance)
	assert.Equal(t, 3*types.Coin, accs[1].Balance)

	_, err = exec.Query(cty.CoinsX, "NoSuchFunc", &types.ReqString{})
	assert.Equal(t, types.ErrActionNotSupport, err)
	_, err = exec.Query("nosuchexec", "GetBalance", &types.ReqString{})
	assert.Equal(t, types.ErrUnRegistedDriver, err)
	_, err = exec.GetBalance("bad address")
	assert.Equal(t, types.ErrInvalidAddress, err)
}

func TestExecReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.DefaultConfig()
	cfg.Store.Driver = "leveldb"
	cfg.Store.DbPath = dir
	cfg.LocalStore.Driver = "leveldb"
	cfg.LocalStore.DbPath = dir

	exec, err := New(cfg)
	require.NoError(t, err)
	addr, _ := genaddress(t)
	result, err := exec.ExecBlock(exec.NewBlock(blockTime, cty.CreateGenesis(addr, types.Coin)))
	require.NoError(t, err)
	exec.Close()
	exec.Close()

	exec, err = New(cfg)
	require.NoError(t, err)
	defer exec.Close()
	head := exec.LastHeader()
	require.NotNil(t, head)
	assert.Equal(t, result.Header.Hash(), head.Hash())
	assert.Equal(t, types.Coin, balance(t, exec, addr))
	assert.Equal(t, int64(1), exec.NewBlock(blockTime).Height)
}
